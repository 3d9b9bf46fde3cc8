package search

import (
	"sort"

	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/lattice"
)

// predecessorIndex returns the column a node's predecessors live in:
// the last real column (n) for EOS, otherwise the node's own StartPos
// (spec §4.8).
func predecessorIndex(n *lattice.Node, columnCount int) int {
	lastRealColumn := columnCount - 2 // EOS lives at columnCount-1
	if n.StartPos == lastRealColumn+1 {
		return lastRealColumn
	}
	return n.StartPos
}

// ForwardDP computes, for every arc in g, the minimum cumulative cost
// from BOS (spec §4.8), recording back-pointers in Node.Prev. beamWidth
// <= 0 disables pruning (spec §8's boundary behavior).
func ForwardDP(g *lattice.Graph, conn *dict.ConnectionMatrix, beamWidth int) {
	columnCount := len(g.Columns)
	g.Columns[0][0].F = 0

	for i := 1; i < columnCount; i++ {
		col := g.Columns[i]
		for _, arc := range col {
			predColumn := g.Columns[predecessorIndex(arc, columnCount)]
			best := int64(0)
			var bestPrev *lattice.Node
			first := true
			for _, p := range predColumn {
				cost := p.F + int64(conn.Get(int(p.RightID), int(arc.LeftID))) + int64(arc.WordCost)
				if first || cost < best {
					best = cost
					bestPrev = p
					first = false
				}
			}
			if !first {
				arc.F = best
				arc.Prev = bestPrev
			}
		}
		if i < columnCount-1 && beamWidth > 0 && len(col) > beamWidth {
			g.Columns[i] = prune(col, beamWidth)
		}
	}
}

// prune keeps the beamWidth arcs with smallest F, stable on ties
// (original relative order preserved among equal-F arcs).
func prune(col []*lattice.Node, beamWidth int) []*lattice.Node {
	idx := make([]int, len(col))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return col[idx[a]].F < col[idx[b]].F
	})
	keep := idx[:beamWidth]
	sort.Ints(keep)
	out := make([]*lattice.Node, len(keep))
	for i, k := range keep {
		out[i] = col[k]
	}
	return out
}
