// Package lattice builds the word lattice a reading is segmented into:
// one column of candidate arcs per input code-unit position, bracketed
// by BOS/EOS sentinels (spec §3's Lattice node/graph, §4.7).
package lattice

// Node is one lattice arc: a candidate word spanning [StartPos,
// StartPos+Len) of the input, carrying its POS connection ids and
// linguistic cost.
type Node struct {
	LeftID   int16
	RightID  int16
	WordCost int16
	F        int64 // best cumulative cost BOS->this node, set by forward DP
	G        int64 // transient backward-search accumulator
	Surface  []uint16
	Len      int
	StartPos int
	Prev     *Node // forward-DP back-pointer
}

// CandidateType classifies a finished candidate surface by script
// composition (spec §3).
type CandidateType int

const (
	// CandidateGeneral is any surface not purely numeric/symbolic.
	CandidateGeneral CandidateType = 1
	// CandidateFullwidthNumeric is a surface made entirely of fullwidth
	// numeric/symbol characters.
	CandidateFullwidthNumeric CandidateType = 30
	// CandidateHalfwidthNumeric is a surface made entirely of halfwidth
	// numeric/symbol characters.
	CandidateHalfwidthNumeric CandidateType = 31
)

// Candidate is one emitted conversion result.
type Candidate struct {
	Surface string
	Type    CandidateType
	Length  int
	Score   int64
	LeftID  int16
	RightID int16
	HasPOS  bool
}

// bosStartPos is the reserved StartPos of the sentence-start sentinel:
// BOS lives at column 0 with StartPos -1 (no real span). EOS, for input
// length n, lives at column n+1 with StartPos n+1 (see NewEOS) (spec
// §3's Lattice graph).
const (
	bosStartPos = -1
)

// NewBOS returns the sentence-start sentinel node.
func NewBOS() *Node {
	return &Node{StartPos: bosStartPos, Len: 0}
}

// NewEOS returns the sentence-end sentinel node positioned at n+1, where
// n is the input length in code units.
func NewEOS(n int) *Node {
	return &Node{StartPos: n + 1, Len: 0}
}

// IsBOS reports whether n is the sentence-start sentinel.
func (n *Node) IsBOS() bool {
	return n.StartPos == bosStartPos
}

// EndPos returns the lattice column this node's arc ends at:
// StartPos+Len for a real arc, or the node's own StartPos for a
// sentinel (whose Len is always 0).
func (n *Node) EndPos() int {
	return n.StartPos + n.Len
}
