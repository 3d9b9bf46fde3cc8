package dict

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kotaroooo0/kanakanji/bitvector"
)

// WriteTo serializes t per spec §6's token-array file format: u32 n1,
// u16[n1] posIndex; u32 n2, i16[n2] wordCost; u32 n3, i32[n3] nodeIndex;
// then a bitvec(postingsBits).
func (t *TokenArray) WriteTo(w io.Writer) (int64, error) {
	var written int64

	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.posIndex))); err != nil {
		return written, err
	}
	written += 4
	if err := binary.Write(w, binary.LittleEndian, t.posIndex); err != nil {
		return written, err
	}
	written += int64(2 * len(t.posIndex))

	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.wordCost))); err != nil {
		return written, err
	}
	written += 4
	if err := binary.Write(w, binary.LittleEndian, t.wordCost); err != nil {
		return written, err
	}
	written += int64(2 * len(t.wordCost))

	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.nodeIndex))); err != nil {
		return written, err
	}
	written += 4
	if err := binary.Write(w, binary.LittleEndian, t.nodeIndex); err != nil {
		return written, err
	}
	written += int64(4 * len(t.nodeIndex))

	n, err := t.postingsBits.Raw().WriteTo(w)
	written += n
	if err != nil {
		return written, err
	}
	return written, nil
}

// ReadTokenArray deserializes a TokenArray written by WriteTo.
func ReadTokenArray(r io.Reader) (*TokenArray, error) {
	var n1 uint32
	if err := binary.Read(r, binary.LittleEndian, &n1); err != nil {
		return nil, fmt.Errorf("dict: read posIndex length: %w", err)
	}
	posIndex := make([]uint16, n1)
	if n1 > 0 {
		if err := binary.Read(r, binary.LittleEndian, posIndex); err != nil {
			return nil, fmt.Errorf("dict: read posIndex: %w", err)
		}
	}

	var n2 uint32
	if err := binary.Read(r, binary.LittleEndian, &n2); err != nil {
		return nil, fmt.Errorf("dict: read wordCost length: %w", err)
	}
	wordCost := make([]int16, n2)
	if n2 > 0 {
		if err := binary.Read(r, binary.LittleEndian, wordCost); err != nil {
			return nil, fmt.Errorf("dict: read wordCost: %w", err)
		}
	}

	var n3 uint32
	if err := binary.Read(r, binary.LittleEndian, &n3); err != nil {
		return nil, fmt.Errorf("dict: read nodeIndex length: %w", err)
	}
	nodeIndex := make([]int32, n3)
	if n3 > 0 {
		if err := binary.Read(r, binary.LittleEndian, nodeIndex); err != nil {
			return nil, fmt.Errorf("dict: read nodeIndex: %w", err)
		}
	}

	if n1 != n2 || n1 != n3 {
		return nil, fmt.Errorf("dict: format error: token array length mismatch (posIndex=%d wordCost=%d nodeIndex=%d)", n1, n2, n3)
	}

	bits, err := bitvector.ReadBitVector(r)
	if err != nil {
		return nil, fmt.Errorf("dict: read postingsBits: %w", err)
	}

	return &TokenArray{
		posIndex:     posIndex,
		wordCost:     wordCost,
		nodeIndex:    nodeIndex,
		postingsBits: bitvector.Build(bits),
	}, nil
}

// WriteTo serializes t per spec §6's POS-table file format: u32 n,
// i16[n] leftIds, i16[n] rightIds.
func (t *PosTable) WriteTo(w io.Writer) (int64, error) {
	var written int64
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.leftIDs))); err != nil {
		return written, err
	}
	written += 4
	if err := binary.Write(w, binary.LittleEndian, t.leftIDs); err != nil {
		return written, err
	}
	written += int64(2 * len(t.leftIDs))
	if err := binary.Write(w, binary.LittleEndian, t.rightIDs); err != nil {
		return written, err
	}
	written += int64(2 * len(t.rightIDs))
	return written, nil
}

// ReadPosTable deserializes a PosTable written by WriteTo.
func ReadPosTable(r io.Reader) (*PosTable, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("dict: read POS table length: %w", err)
	}
	leftIDs := make([]int16, n)
	rightIDs := make([]int16, n)
	if n > 0 {
		if err := binary.Read(r, binary.LittleEndian, leftIDs); err != nil {
			return nil, fmt.Errorf("dict: read leftIds: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, rightIDs); err != nil {
			return nil, fmt.Errorf("dict: read rightIds: %w", err)
		}
	}
	return &PosTable{leftIDs: leftIDs, rightIDs: rightIDs}, nil
}

// WriteTo serializes m as a raw big-endian i16 stream of dim*dim values
// (spec §6's connection-matrix file format; the only big-endian format in
// the system).
func (m *ConnectionMatrix) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, m.data); err != nil {
		return 0, err
	}
	return int64(2 * len(m.data)), nil
}

// ReadConnectionMatrix reads a raw big-endian i16 stream of length bytes
// and derives the matrix dimension as isqrt(len(values)). It is a format
// error for the value count not to be a perfect square, or for the byte
// count to be odd.
func ReadConnectionMatrix(r io.Reader) (*ConnectionMatrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dict: read connection matrix: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("dict: format error: connection matrix byte count %d is odd", len(raw))
	}
	count := len(raw) / 2
	dim := isqrt(count)
	if dim*dim != count {
		return nil, fmt.Errorf("dict: format error: connection matrix value count %d is not a perfect square", count)
	}
	data := make([]int16, count)
	for i := 0; i < count; i++ {
		data[i] = int16(binary.BigEndian.Uint16(raw[i*2 : i*2+2]))
	}
	return &ConnectionMatrix{data: data, dim: dim}, nil
}
