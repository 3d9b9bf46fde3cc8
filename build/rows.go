// Package build assembles the four immutable dictionaries (reading trie,
// surface trie, token array, POS table) from flat source rows, the
// offline half of the system described in spec §2's build path.
package build

import (
	"sort"

	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/kana"
)

// SourceRow is one build-input record: a dictionary entry before any
// term/posIndex assignment.
type SourceRow struct {
	Reading []uint16
	LeftID  int16
	RightID int16
	Cost    int16
	Surface []uint16
}

// ReadingGroup is every row sharing one reading, after dense termId
// assignment.
type ReadingGroup struct {
	TermID  int
	Reading []uint16
	Rows    []SourceRow
}

// GroupAndAssignTermIDs groups rows by reading, sorts the distinct
// readings by length ascending then lexicographically on code units, and
// assigns dense termIds 0..K-1 in that order (spec §2 step 2).
func GroupAndAssignTermIDs(rows []SourceRow) []ReadingGroup {
	byReading := make(map[string][]SourceRow)
	order := make(map[string][]uint16)
	for _, row := range rows {
		key := string(runesOf(row.Reading))
		byReading[key] = append(byReading[key], row)
		order[key] = row.Reading
	}

	keys := make([]string, 0, len(byReading))
	for k := range byReading {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := order[keys[i]], order[keys[j]]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	groups := make([]ReadingGroup, 0, len(keys))
	for termID, key := range keys {
		groups = append(groups, ReadingGroup{
			TermID:  termID,
			Reading: order[key],
			Rows:    byReading[key],
		})
	}
	return groups
}

// ResolveNodeIndex implements spec §4.5's surface-to-nodeIndex rule: a
// row's surface maps to HiraganaSentinel when it equals the reading or is
// hiragana-only, KatakanaSentinel when it's katakana-only, else a lookup
// in the surface trie (which must succeed).
func ResolveNodeIndex(reading, surface []uint16, surfaceNodeIndex func([]uint16) int32) int32 {
	surfaceStr := string(runesOf(surface))
	if surfaceStr == string(runesOf(reading)) || kana.IsAllHiragana(surfaceStr) {
		return dict.HiraganaSentinel
	}
	if kana.IsAllKatakana(surfaceStr) {
		return dict.KatakanaSentinel
	}
	return surfaceNodeIndex(surface)
}

func runesOf(u []uint16) []rune {
	r := make([]rune, len(u))
	for i, c := range u {
		r[i] = rune(c)
	}
	return r
}
