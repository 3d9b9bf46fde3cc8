package dict

// PosPair is a (leftId, rightId) connection-id pair, the unit the POS
// table assigns dense posIndexes to.
type PosPair struct {
	LeftID  int16
	RightID int16
}

// PosTable holds the parallel leftIds/rightIds arrays indexed by
// posIndex (spec §3).
type PosTable struct {
	leftIDs  []int16
	rightIDs []int16
}

// LeftID returns the leftId stored at posIndex p, or 0 if p is out of
// range.
func (t *PosTable) LeftID(p int) int16 {
	if p < 0 || p >= len(t.leftIDs) {
		return 0
	}
	return t.leftIDs[p]
}

// RightID returns the rightId stored at posIndex p, or 0 if p is out of
// range.
func (t *PosTable) RightID(p int) int16 {
	if p < 0 || p >= len(t.rightIDs) {
		return 0
	}
	return t.rightIDs[p]
}

// Len returns the number of distinct (leftId, rightId) pairs.
func (t *PosTable) Len() int {
	return len(t.leftIDs)
}

// PosTableBuilder assigns dense posIndexes to (leftId,rightId) pairs as
// they're observed in canonical row order, then re-labels them per spec
// §3's descending-observation-order rule before baking an immutable
// PosTable.
type PosTableBuilder struct {
	indexOf map[PosPair]int
	order   []PosPair // pairs in first-observed order; index == first-assigned posIndex
}

// NewPosTableBuilder returns an empty builder.
func NewPosTableBuilder() *PosTableBuilder {
	return &PosTableBuilder{indexOf: make(map[PosPair]int)}
}

// Assign returns the posIndex for pair, assigning a fresh one the first
// time it's seen. Callers must feed rows in the same canonical (by
// termId) order used to build the token array, since re-labeling depends
// on first-observation order.
func (b *PosTableBuilder) Assign(pair PosPair) uint16 {
	if idx, ok := b.indexOf[pair]; ok {
		return uint16(idx)
	}
	idx := len(b.order)
	b.indexOf[pair] = idx
	b.order = append(b.order, pair)
	return uint16(idx)
}

// Build finalizes the table. Per spec §3, after enumeration the pairs are
// sorted by assignment order descending and re-labeled so the
// highest-first-observed pair becomes posIndex 0; this changes only the
// numeric identity of posIndex, never correctness, so every index
// returned by Assign must be mapped through the returned old->new map
// before it is stored in a TokenArray alongside this table.
func (b *PosTableBuilder) Build() (*PosTable, map[uint16]uint16) {
	n := len(b.order)
	leftIDs := make([]int16, n)
	rightIDs := make([]int16, n)
	remap := make(map[uint16]uint16, n)
	for oldIdx := 0; oldIdx < n; oldIdx++ {
		newIdx := n - 1 - oldIdx
		pair := b.order[oldIdx]
		leftIDs[newIdx] = pair.LeftID
		rightIDs[newIdx] = pair.RightID
		remap[uint16(oldIdx)] = uint16(newIdx)
	}
	return &PosTable{leftIDs: leftIDs, rightIDs: rightIDs}, remap
}
