package louds

import (
	"github.com/kotaroooo0/kanakanji/bitvector"
	"github.com/kotaroooo0/kanakanji/prefixtree"
)

// TermIDLouds is a LOUDS trie whose terminal nodes each carry a dense
// termId, used for the reading trie (spec §4.3).
type TermIDLouds struct {
	lbs            *bitvector.SuccinctBitVector
	isLeaf         *bitvector.BitVector
	labels         []uint16
	termIdByNodeID []int32
}

// BuildWithTermID converts a build-time prefix tree (with termId at each
// terminal) into a LOUDS-with-termId trie.
func BuildWithTermID(root *prefixtree.NodeWithTermID) *TermIDLouds {
	lbs := bitvector.New()
	isLeaf := bitvector.New()
	labels := []uint16{0, 0}
	var termIDs []int32

	lbs.PushBack(true)
	isLeaf.PushBack(false)
	lbs.PushBack(false)
	isLeaf.PushBack(false)

	queue := []*prefixtree.NodeWithTermID{root}
	first := true
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if !first {
			if node.IsTerminal {
				termIDs = append(termIDs, node.TermID)
			} else {
				termIDs = append(termIDs, -1)
			}
		}
		first = false
		for _, child := range node.SortedChildren() {
			lbs.PushBack(true)
			isLeaf.PushBack(child.IsTerminal)
			labels = append(labels, child.Label)
			queue = append(queue, child)
		}
		lbs.PushBack(false)
		isLeaf.PushBack(false)
	}

	return &TermIDLouds{
		lbs:            bitvector.Build(lbs),
		isLeaf:         isLeaf,
		labels:         labels,
		termIdByNodeID: termIDs,
	}
}

// FirstChildPos mirrors Louds.FirstChildPos.
func (l *TermIDLouds) FirstChildPos(pos int) int {
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

// Traverse mirrors Louds.Traverse.
func (l *TermIDLouds) Traverse(pos int, c uint16) int {
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

// NodeIndex mirrors Louds.NodeIndex.
func (l *TermIDLouds) NodeIndex(key []uint16) int {
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

// IsLeaf mirrors Louds.IsLeaf.
func (l *TermIDLouds) IsLeaf(pos int) bool {
	if pos < 0 || pos >= l.isLeaf.Len() {
		return false
	}
	return l.isLeaf.Get(pos)
}

// GetTermId returns the termId stored at LBS position pos, or -1 if pos
// is out of range or carries no terminal (spec §4.3: "nodeId = rank1(pos)
// − 2 to skip the two dummy label slots").
func (l *TermIDLouds) GetTermId(pos int) int32 {
	if pos <= rootPos || pos >= l.lbs.Len() || !l.lbs.Get(pos) {
		return -1
	}
	nodeID := l.lbs.Rank1(pos) - 2
	if nodeID < 0 || nodeID >= len(l.termIdByNodeID) {
		return -1
	}
	v := l.termIdByNodeID[nodeID]
	if v < 0 {
		return -1
	}
	return v
}

// LongestPrefixTermId walks s from the root and returns the termId of the
// longest prefix of s whose node carries a valid termId, or -1 if none
// does.
func (l *TermIDLouds) LongestPrefixTermId(s []uint16) int32 {
	pos := rootPos
	best := int32(-1)
	for _, c := range s {
		next := l.Traverse(pos, c)
		if next < 0 {
			break
		}
		pos = next
		if id := l.GetTermId(pos); id >= 0 {
			best = id
		}
	}
	return best
}

// Match is one hit of CommonPrefixSearch: the matched prefix of the query
// and the termId assigned to it.
type Match struct {
	Key    []uint16
	TermID int32
}

// CommonPrefixSearch walks s one code unit at a time from the root,
// recording every prefix of s that is itself a stored key with a valid
// termId. Results are ordered shortest to longest (spec §4.2, §8
// scenario 6).
func (l *TermIDLouds) CommonPrefixSearch(s []uint16) []Match {
	var matches []Match
	pos := rootPos
	accumulated := make([]uint16, 0, len(s))
	for _, c := range s {
		next := l.Traverse(pos, c)
		if next < 0 {
			break
		}
		accumulated = append(accumulated, c)
		pos = next
		if id := l.GetTermId(pos); id >= 0 {
			key := make([]uint16, len(accumulated))
			copy(key, accumulated)
			matches = append(matches, Match{Key: key, TermID: id})
		}
	}
	return matches
}
