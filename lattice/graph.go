package lattice

import (
	"github.com/kotaroooo0/kanakanji/build"
	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/kana"
	"github.com/kotaroooo0/kanakanji/louds"
)

// unknownWordCost is the fallback cost assigned to an arc synthesized
// when no dictionary entry starts at a position at all (spec §4.7).
const unknownWordCost = 10000

// Graph is a built lattice: Columns[endPos] holds every arc whose span
// ends at endPos (exclusive), for endPos in [0, n+1]. Columns[0] holds
// only BOS; Columns[n+1] holds only EOS.
type Graph struct {
	Columns [][]*Node
	Length  int // input length in code units
}

// Build constructs the lattice for reading s over dicts, following spec
// §4.7's procedure: common-prefix search at every start position, one
// arc per posted token, with de-duplication by (leftId, rightId,
// surface) keeping the lower-cost copy; positions with no dictionary hit
// at all get a single fallback unknown-word arc of length 1.
func Build(s []uint16, dicts *build.Dictionaries) *Graph {
	n := len(s)
	g := &Graph{Columns: make([][]*Node, n+2), Length: n}
	g.Columns[0] = []*Node{NewBOS()}
	g.Columns[n+1] = []*Node{NewEOS(n)}

	for i := 0; i < n; i++ {
		hits := dicts.ReadingTrie.CommonPrefixSearch(s[i:])
		any := false
		for _, hit := range hits {
			if hit.TermID < 0 {
				continue
			}
			tokens := dicts.Tokens.TokensFor(int(hit.TermID))
			if len(tokens) == 0 {
				continue
			}
			any = true
			hitLen := len(hit.Key)
			for _, tok := range tokens {
				surface := resolveSurface(s[i:i+hitLen], dicts.SurfaceTrie, tok.NodeIndex)
				arc := &Node{
					LeftID:   dicts.PosTable.LeftID(int(tok.PosIndex)),
					RightID:  dicts.PosTable.RightID(int(tok.PosIndex)),
					WordCost: tok.WordCost,
					F:        int64(tok.WordCost),
					G:        int64(tok.WordCost),
					Surface:  surface,
					Len:      hitLen,
					StartPos: i,
				}
				g.insertDedup(i+hitLen, arc)
			}
		}
		if !any {
			g.insertDedup(i+1, &Node{
				LeftID:   0,
				RightID:  0,
				WordCost: unknownWordCost,
				F:        unknownWordCost,
				G:        unknownWordCost,
				Surface:  s[i : i+1],
				Len:      1,
				StartPos: i,
			})
		}
	}
	return g
}

// insertDedup appends arc to Columns[endPos], unless an existing arc at
// that column shares (LeftID, RightID, Surface) and already has a
// lower-or-equal cost, in which case the cheaper copy is kept.
func (g *Graph) insertDedup(endPos int, arc *Node) {
	col := g.Columns[endPos]
	surfaceKey := unitsKey(arc.Surface)
	for idx, existing := range col {
		if existing.LeftID == arc.LeftID && existing.RightID == arc.RightID && unitsKey(existing.Surface) == surfaceKey {
			if arc.WordCost < existing.WordCost {
				col[idx] = arc
			}
			return
		}
	}
	g.Columns[endPos] = append(col, arc)
}

// unitsKey renders a code-unit slice as a comparable map/string key.
func unitsKey(units []uint16) string {
	runes := make([]rune, len(units))
	for i, u := range units {
		runes[i] = rune(u)
	}
	return string(runes)
}

// resolveSurface implements spec §4.5's sentinel cases: HiraganaSentinel
// yields the reading itself (rendered as hiragana), KatakanaSentinel the
// katakana conversion, otherwise a surface-trie label lookup.
func resolveSurface(reading []uint16, surfaceTrie *louds.Louds, nodeIndex int32) []uint16 {
	switch nodeIndex {
	case dict.HiraganaSentinel:
		return reading
	case dict.KatakanaSentinel:
		return toKatakanaUnits(reading)
	default:
		return surfaceTrie.LabelOfNode(int(nodeIndex))
	}
}

func toKatakanaUnits(reading []uint16) []uint16 {
	r := make([]rune, len(reading))
	for i, c := range reading {
		r[i] = rune(c)
	}
	converted := kana.ToKatakana(string(r))
	out := make([]uint16, 0, len(converted))
	for _, c := range converted {
		out = append(out, uint16(c))
	}
	return out
}
