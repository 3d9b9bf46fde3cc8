// Package engine exposes the single collaborator-facing operation the
// core produces: converting a reading into N-best candidates (spec §6).
package engine

import "strings"

// ReadingFilter normalizes a raw reading string before it reaches the
// decoder/lattice builder, the same role char_filter.go's CharFilter
// plays ahead of tokenization.
type ReadingFilter interface {
	Filter(string) string
}

// MappingReadingFilter replaces every occurrence of each mapping key
// with its value, in map iteration order; used for normalizations like
// collapsing full-width spaces or legacy kana spellings before decoding.
type MappingReadingFilter struct {
	mapper map[string]string
}

// NewMappingReadingFilter returns a filter applying mapper's
// replacements.
func NewMappingReadingFilter(mapper map[string]string) *MappingReadingFilter {
	return &MappingReadingFilter{mapper: mapper}
}

// Filter applies every mapping in turn.
func (f *MappingReadingFilter) Filter(s string) string {
	for k, v := range f.mapper {
		s = strings.Replace(s, k, v, -1)
	}
	return s
}
