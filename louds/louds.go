// Package louds implements the LOUDS (Level-Order Unary Degree Sequence)
// succinct trie, its reader primitives, and the LOUDS-with-termId variant,
// per spec §3-4.
package louds

import (
	"github.com/kotaroooo0/kanakanji/bitvector"
	"github.com/kotaroooo0/kanakanji/prefixtree"
)

// Louds is a read-only succinct trie: an ordered labeled tree encoded as
// a bit sequence in BFS order, with an aligned label array and a
// terminal-marker bit per LBS position.
type Louds struct {
	lbs    *bitvector.SuccinctBitVector
	isLeaf *bitvector.BitVector
	labels []uint16
}

// rootPos is the LBS position of the tree's root, always 0 by
// construction (the two dummy bits prepended in Build make it
// addressable).
const rootPos = 0

// Build converts a build-time prefix tree into a LOUDS trie via BFS,
// visiting each node's children in label-sorted order (per spec §4.2).
func Build(root *prefixtree.Node) *Louds {
	lbs := bitvector.New()
	isLeaf := bitvector.New()
	labels := []uint16{0, 0} // two dummy label slots, per spec §3/§4.2

	// Two dummy bits make the root addressable at position 0.
	lbs.PushBack(true)
	isLeaf.PushBack(false)
	lbs.PushBack(false)
	isLeaf.PushBack(false)

	queue := []*prefixtree.Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, child := range node.SortedChildren() {
			lbs.PushBack(true)
			isLeaf.PushBack(child.IsTerminal)
			labels = append(labels, child.Label)
			queue = append(queue, child)
		}
		lbs.PushBack(false)
		isLeaf.PushBack(false)
	}

	return &Louds{
		lbs:    bitvector.Build(lbs),
		isLeaf: isLeaf,
		labels: labels,
	}
}

// FirstChildPos returns the LBS position of pos's first child, or -1 if
// pos is out of range or has no children (spec §4.2).
func (l *Louds) FirstChildPos(pos int) int {
	if pos < 0 || pos >= l.lbs.Len() {
		return -1
	}
	childPos := l.lbs.Select0(l.lbs.Rank1(pos)) + 1
	if childPos <= 0 || childPos >= l.lbs.Len() {
		return -1
	}
	if !l.lbs.Get(childPos) {
		return -1
	}
	return childPos
}

// Traverse scans pos's children for one labeled c, returning its LBS
// position or -1 if absent.
func (l *Louds) Traverse(pos int, c uint16) int {
	child := l.FirstChildPos(pos)
	if child < 0 {
		return -1
	}
	for child < l.lbs.Len() && l.lbs.Get(child) {
		if l.labels[l.lbs.Rank1(child)] == c {
			return child
		}
		child++
	}
	return -1
}

// NodeIndex returns the LBS position of the node reached by following
// key from the root, whether or not that node terminates a stored key,
// or -1 if key is not present as a path in the trie (or is empty).
func (l *Louds) NodeIndex(key []uint16) int {
	pos := rootPos
	for _, c := range key {
		next := l.Traverse(pos, c)
		if next < 0 {
			return -1
		}
		pos = next
	}
	if pos == rootPos {
		return -1
	}
	return pos
}

// NodeId returns rank0(pos) for a node at LBS position pos, or -1 if pos
// is not a valid node position. The value counts the 0-bits up to pos,
// so all children of one parent share the same NodeId.
func (l *Louds) NodeId(pos int) int {
	if pos <= rootPos || pos >= l.lbs.Len() || !l.lbs.Get(pos) {
		return -1
	}
	return l.lbs.Rank0(pos)
}

// IsLeaf reports whether the node at pos terminates a stored key.
func (l *Louds) IsLeaf(pos int) bool {
	if pos < 0 || pos >= l.isLeaf.Len() {
		return false
	}
	return l.isLeaf.Get(pos)
}

// LabelOfNode reconstructs the full key reaching pos by walking toward
// the root, per spec §4.2.
func (l *Louds) LabelOfNode(pos int) []uint16 {
	var rev []uint16
	cur := pos
	for steps := 0; cur != rootPos && cur >= 0 && steps <= l.lbs.Len(); steps++ {
		rev = append(rev, l.labels[l.lbs.Rank1(cur)])
		cur = l.lbs.Select1(l.lbs.Rank0(cur))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
