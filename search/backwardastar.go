package search

import (
	"container/heap"

	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/kana"
	"github.com/kotaroooo0/kanakanji/lattice"
)

// digitScorePenalty is added to a candidate's score when its surface
// contains any digit (spec §4.9).
const digitScorePenalty = 2000

// astarState is one search frontier entry: Node is the lattice node
// reached so far walking backward from EOS, G is the accumulated cost
// from Node to EOS, Total is the A* priority (G + Node.F), and Next
// links toward EOS for surface reconstruction.
type astarState struct {
	node     *lattice.Node
	g        int64
	total    int64
	next     *astarState
	seq      int // insertion order, for deterministic tie-breaking
}

type astarHeap []*astarState

func (h astarHeap) Len() int { return len(h) }
func (h astarHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.total != b.total {
		return a.total < b.total
	}
	if a.node.StartPos != b.node.StartPos {
		return a.node.StartPos < b.node.StartPos
	}
	if a.node.Len != b.node.Len {
		return a.node.Len < b.node.Len
	}
	return a.seq < b.seq
}
func (h astarHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x any)        { *h = append(*h, x.(*astarState)) }
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BackwardAStar enumerates up to nBest candidates by searching backward
// from EOS, using the already-computed forward-DP values as an
// admissible heuristic (spec §4.9). g must have had ForwardDP run over
// it first. It also returns the bunsetsu boundary positions of the
// first (1-best) emitted path (spec §4.9-§4.10).
func BackwardAStar(g *lattice.Graph, conn *dict.ConnectionMatrix, independent *IndependentWordSet, nBest int) ([]lattice.Candidate, []int) {
	if nBest <= 0 || len(g.Columns) < 2 || g.Length == 0 {
		return nil, nil
	}
	columnCount := len(g.Columns)
	eos := g.Columns[columnCount-1][0]

	h := &astarHeap{}
	heap.Init(h)
	seq := 0
	heap.Push(h, &astarState{node: eos, g: 0, total: 0, next: nil, seq: seq})
	seq++

	seen := make(map[string]bool)
	var candidates []lattice.Candidate
	var firstPath *astarState

	for h.Len() > 0 && len(candidates) < nBest {
		s := heap.Pop(h).(*astarState)

		if s.node.IsBOS() {
			surface, leftID, rightID, hasPOS := reconstructSurface(s)
			if seen[surface] {
				continue
			}
			seen[surface] = true

			score := s.total
			if kana.AnyDigit(surface) {
				score += digitScorePenalty
			}
			candType := lattice.CandidateGeneral
			switch {
			case kana.IsAllFullwidthNumericSymbol(surface):
				candType = lattice.CandidateFullwidthNumeric
			case kana.IsAllHalfwidthNumericSymbol(surface):
				candType = lattice.CandidateHalfwidthNumeric
			}

			candidates = append(candidates, lattice.Candidate{
				Surface: surface,
				Type:    candType,
				Length:  len([]rune(surface)),
				Score:   score,
				LeftID:  leftID,
				RightID: rightID,
				HasPOS:  hasPOS,
			})
			if firstPath == nil {
				firstPath = s
			}
			continue
		}

		predColumn := g.Columns[predecessorIndex(s.node, columnCount)]
		for _, p := range predColumn {
			gPrime := s.g + int64(conn.Get(int(p.RightID), int(s.node.LeftID))) + int64(s.node.WordCost)
			heap.Push(h, &astarState{
				node:  p,
				g:     gPrime,
				total: gPrime + p.F,
				next:  s,
				seq:   seq,
			})
			seq++
		}
	}

	var bunsetsu []int
	if firstPath != nil {
		bunsetsu = extractBunsetsu(firstPath, independent)
	}
	return candidates, bunsetsu
}

// reconstructSurface concatenates node surfaces from the BOS-popped
// state s forward to EOS via Next, and returns the (leftId, rightId)
// pair from the first non-EOS arc after BOS.
func reconstructSurface(s *astarState) (surface string, leftID, rightID int16, hasPOS bool) {
	var buf []rune
	cur := s.next
	first := true
	for cur != nil && !cur.node.IsBOS() {
		if cur.node.Len > 0 { // skip EOS, which carries no surface
			for _, u := range cur.node.Surface {
				buf = append(buf, rune(u))
			}
			if first {
				leftID = cur.node.LeftID
				rightID = cur.node.RightID
				hasPOS = true
				first = false
			}
		}
		cur = cur.next
	}
	return string(buf), leftID, rightID, hasPOS
}
