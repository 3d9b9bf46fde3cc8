// Package dict holds the build-once, read-many dictionary stores consulted
// during lattice construction: the token array posting-list store, the POS
// table, and the connection-cost matrix.
package dict

import (
	"sort"

	"github.com/kotaroooo0/kanakanji/bitvector"
)

// Sentinel values for TokenArray.NodeIndex. A non-negative value is a real
// surface-trie LBS position; the two negative values below are tagged
// discriminators resolved against the reading instead.
const (
	// HiraganaSentinel marks a token whose surface equals the reading,
	// or is hiragana-only.
	HiraganaSentinel int32 = -2
	// KatakanaSentinel marks a token whose surface is the katakana
	// rendering of the reading.
	KatakanaSentinel int32 = -1
)

// Token is one posting-list entry: a POS reference, a linguistic cost, and
// a surface resolution.
type Token struct {
	PosIndex  uint16
	WordCost  int16
	NodeIndex int32
}

// TokenArray stores, per termId, a posting list of tokens. The three
// payload arrays are parallel and flat across all termIds; postingsBits
// delimits the per-termId slices (spec §3, §4.5).
type TokenArray struct {
	posIndex     []uint16
	wordCost     []int16
	nodeIndex    []int32
	postingsBits *bitvector.SuccinctBitVector
}

// SourceToken is one row of build input for a single termId: a POS pair
// reference plus cost and resolved surface.
type SourceToken struct {
	PosIndex  uint16
	WordCost  int16
	NodeIndex int32
}

// TokenArrayBuilder accumulates postings termId by termId, in ascending
// termId order, then bakes them into an immutable TokenArray.
type TokenArrayBuilder struct {
	posIndex  []uint16
	wordCost  []int16
	nodeIndex []int32
	bits      *bitvector.BitVector
}

// NewTokenArrayBuilder returns an empty builder.
func NewTokenArrayBuilder() *TokenArrayBuilder {
	return &TokenArrayBuilder{bits: bitvector.New()}
}

// AddTermTokens appends one zero delimiter followed by one 1-bit and one
// payload entry per token, for the next termId in sequence. Callers must
// call this once per termId, in ascending termId order, including for
// termIds with zero tokens.
func (b *TokenArrayBuilder) AddTermTokens(tokens []SourceToken) {
	b.bits.PushBack(false)
	for _, tok := range tokens {
		b.bits.PushBack(true)
		b.posIndex = append(b.posIndex, tok.PosIndex)
		b.wordCost = append(b.wordCost, tok.WordCost)
		b.nodeIndex = append(b.nodeIndex, tok.NodeIndex)
	}
}

// Build finalizes the token array. An extra trailing delimiter is emitted
// so that select0(t+2) is always valid for the last termId K-1.
func (b *TokenArrayBuilder) Build() *TokenArray {
	b.bits.PushBack(false)
	return &TokenArray{
		posIndex:     b.posIndex,
		wordCost:     b.wordCost,
		nodeIndex:    b.nodeIndex,
		postingsBits: bitvector.Build(b.bits),
	}
}

// TokensFor returns the slice of tokens posted for termId t, per the
// select/rank formula of spec §3: begin = rank1(select0(t+1)), end =
// rank1(select0(t+2)).
func (t *TokenArray) TokensFor(termID int) []Token {
	if termID < 0 {
		return nil
	}
	beginZero := t.postingsBits.Select0(termID + 1)
	endZero := t.postingsBits.Select0(termID + 2)
	if beginZero < 0 || endZero < 0 {
		return nil
	}
	begin := t.postingsBits.Rank1(beginZero)
	end := t.postingsBits.Rank1(endZero)
	if begin < 0 || end < begin || end > len(t.posIndex) {
		return nil
	}
	var out []Token // nil when the termId has no postings
	for i := begin; i < end; i++ {
		out = append(out, Token{
			PosIndex:  t.posIndex[i],
			WordCost:  t.wordCost[i],
			NodeIndex: t.nodeIndex[i],
		})
	}
	return out
}

// Len returns the total number of posted tokens across all termIds.
func (t *TokenArray) Len() int {
	return len(t.posIndex)
}

// SortedTermIDs is a small helper for builders that assemble token lists
// out of an unordered termId->tokens map, so AddTermTokens can be called
// in strict ascending termId order.
func SortedTermIDs(m map[int][]SourceToken) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
