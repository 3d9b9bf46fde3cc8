package engine

import (
	"github.com/kotaroooo0/kanakanji/build"
	"github.com/kotaroooo0/kanakanji/corpus"
	"github.com/kotaroooo0/kanakanji/lattice"
	"github.com/kotaroooo0/kanakanji/search"
)

// Engine holds immutable references to a built dictionary bundle and
// performs conversions against it. Multiple Engine values may share the
// same Dictionaries concurrently, since queries never mutate them
// (spec §5).
type Engine struct {
	dicts       *build.Dictionaries
	decoder     corpus.Decoder
	filters     []ReadingFilter
	independent *search.IndependentWordSet
}

// Option configures an Engine.
type Option func(*Engine)

// WithReadingFilters installs the normalization chain run over a raw
// reading before decoding, applied in order.
func WithReadingFilters(filters ...ReadingFilter) Option {
	return func(e *Engine) { e.filters = append(e.filters, filters...) }
}

// New returns an Engine over dicts, decoding input readings with
// decoder.
func New(dicts *build.Dictionaries, decoder corpus.Decoder, options ...Option) *Engine {
	e := &Engine{
		dicts:       dicts,
		decoder:     decoder,
		independent: search.NewIndependentWordSet(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Convert builds a lattice over reading, runs forward DP and backward
// A*, and returns up to nBest candidates plus the 1-best path's
// bunsetsu boundary positions (spec §6's produced collaborator
// contract). beamWidth <= 0 disables pruning; nBest <= 0 yields an
// empty, non-error result without decoding the reading (spec §8's
// boundary cases). A decoding error from the decoder is returned as is.
func (e *Engine) Convert(reading string, nBest, beamWidth int) ([]lattice.Candidate, []int, error) {
	if nBest <= 0 {
		return nil, nil, nil
	}
	for _, f := range e.filters {
		reading = f.Filter(reading)
	}

	units, err := e.decoder.Decode(reading)
	if err != nil {
		return nil, nil, err
	}

	g := lattice.Build(units, e.dicts)
	search.ForwardDP(g, e.dicts.Connection, beamWidth)
	candidates, bunsetsu := search.BackwardAStar(g, e.dicts.Connection, e.independent, nBest)
	return candidates, bunsetsu, nil
}
