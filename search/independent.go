// Package search implements the lattice shortest-path conversion:
// forward dynamic programming with beam pruning, backward A* for N-best
// enumeration, and bunsetsu boundary extraction (spec §4.8-§4.10).
package search

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// independentWordRanges are the fixed POS-id ranges the dictionary
// contract assigns to adverbs, conjunctions, interjections, prefixes,
// adnominals, independent verbs, independent adjectives, and common
// nouns (excluding suffixes), per spec §4.10.
var independentWordRanges = [][2]uint32{
	{12, 28},
	{2590, 2670},
	{577, 856},
	{2390, 2471},
	{1842, 1936}, // common nouns, excluding the suffix sub-range below
	{2041, 2195}, // common nouns, continuing past the suffix sub-range
}

// IndependentWordSet is a membership test for "independent word" leftIds
// (spec §4.10's isIndependentWord), backed by a RoaringBitmap for
// constant-time membership over the fixed ranges.
type IndependentWordSet struct {
	bitmap *roaring.Bitmap
}

// NewIndependentWordSet builds the fixed independent-word membership set.
func NewIndependentWordSet() *IndependentWordSet {
	bm := roaring.New()
	for _, r := range independentWordRanges {
		bm.AddRange(uint64(r[0]), uint64(r[1]+1))
	}
	return &IndependentWordSet{bitmap: bm}
}

// IsIndependentWord reports whether leftID falls in one of the fixed
// independent-word ranges.
func (s *IndependentWordSet) IsIndependentWord(leftID int16) bool {
	if leftID < 0 {
		return false
	}
	return s.bitmap.Contains(uint32(leftID))
}
