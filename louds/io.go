package louds

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kotaroooo0/kanakanji/bitvector"
)

// WriteTo serializes l per spec §6's LOUDS file format: bitvec(LBS),
// bitvec(isLeaf), u64 labelCount, u16[labelCount] labels.
func (l *Louds) WriteTo(w io.Writer) (int64, error) {
	return writeLoudsCore(w, l.lbs.Raw(), l.isLeaf, l.labels)
}

// ReadLouds deserializes a LOUDS trie written by WriteTo.
func ReadLouds(r io.Reader) (*Louds, error) {
	lbs, isLeaf, labels, err := readLoudsCore(r)
	if err != nil {
		return nil, err
	}
	return &Louds{lbs: bitvector.Build(lbs), isLeaf: isLeaf, labels: labels}, nil
}

// WriteTo serializes l per spec §6's LOUDS-with-termId file format: the
// LOUDS file format, plus u64 termCount, i32[termCount] termIdByNodeId.
func (l *TermIDLouds) WriteTo(w io.Writer) (int64, error) {
	n, err := writeLoudsCore(w, l.lbs.Raw(), l.isLeaf, l.labels)
	if err != nil {
		return n, err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(l.termIdByNodeID))); err != nil {
		return n, err
	}
	n += 8
	if err := binary.Write(w, binary.LittleEndian, l.termIdByNodeID); err != nil {
		return n, err
	}
	n += int64(4 * len(l.termIdByNodeID))
	return n, nil
}

// ReadTermIDLouds deserializes a LOUDS-with-termId trie written by
// WriteTo.
func ReadTermIDLouds(r io.Reader) (*TermIDLouds, error) {
	lbs, isLeaf, labels, err := readLoudsCore(r)
	if err != nil {
		return nil, err
	}
	var termCount uint64
	if err := binary.Read(r, binary.LittleEndian, &termCount); err != nil {
		return nil, fmt.Errorf("louds: read termCount: %w", err)
	}
	termIDs := make([]int32, termCount)
	if termCount > 0 {
		if err := binary.Read(r, binary.LittleEndian, termIDs); err != nil {
			return nil, fmt.Errorf("louds: read termIdByNodeId: %w", err)
		}
	}
	return &TermIDLouds{
		lbs:            bitvector.Build(lbs),
		isLeaf:         isLeaf,
		labels:         labels,
		termIdByNodeID: termIDs,
	}, nil
}

func writeLoudsCore(w io.Writer, lbs, isLeaf *bitvector.BitVector, labels []uint16) (int64, error) {
	var written int64
	n, err := lbs.WriteTo(w)
	written += n
	if err != nil {
		return written, err
	}
	n, err = isLeaf.WriteTo(w)
	written += n
	if err != nil {
		return written, err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(labels))); err != nil {
		return written, err
	}
	written += 8
	if err := binary.Write(w, binary.LittleEndian, labels); err != nil {
		return written, err
	}
	written += int64(2 * len(labels))
	return written, nil
}

func readLoudsCore(r io.Reader) (lbs, isLeaf *bitvector.BitVector, labels []uint16, err error) {
	lbs, err = bitvector.ReadBitVector(r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("louds: read LBS: %w", err)
	}
	isLeaf, err = bitvector.ReadBitVector(r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("louds: read isLeaf: %w", err)
	}
	if isLeaf.Len() != lbs.Len() {
		return nil, nil, nil, fmt.Errorf("louds: format error: len(isLeaf)=%d != len(LBS)=%d", isLeaf.Len(), lbs.Len())
	}
	var labelCount uint64
	if err = binary.Read(r, binary.LittleEndian, &labelCount); err != nil {
		return nil, nil, nil, fmt.Errorf("louds: read labelCount: %w", err)
	}
	labels = make([]uint16, labelCount)
	if labelCount > 0 {
		if err = binary.Read(r, binary.LittleEndian, labels); err != nil {
			return nil, nil, nil, fmt.Errorf("louds: read labels: %w", err)
		}
	}
	return lbs, isLeaf, labels, nil
}
