package bitvector

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo serializes v as: u64 bitLength, u64 wordCount, u64[wordCount]
// words, all little-endian, per spec §6's `bitvec` format.
func (v *BitVector) WriteTo(w io.Writer) (int64, error) {
	var written int64
	if err := binary.Write(w, binary.LittleEndian, uint64(v.n)); err != nil {
		return written, err
	}
	written += 8
	if err := binary.Write(w, binary.LittleEndian, uint64(len(v.words))); err != nil {
		return written, err
	}
	written += 8
	if err := binary.Write(w, binary.LittleEndian, v.words); err != nil {
		return written, err
	}
	written += int64(8 * len(v.words))
	return written, nil
}

// ReadBitVector deserializes a BitVector written by WriteTo. A wordCount
// that does not agree with bitLength's implied word count is a format
// error, per spec §7.
func ReadBitVector(r io.Reader) (*BitVector, error) {
	var bitLength, wordCount uint64
	if err := binary.Read(r, binary.LittleEndian, &bitLength); err != nil {
		return nil, fmt.Errorf("bitvector: read bitLength: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
		return nil, fmt.Errorf("bitvector: read wordCount: %w", err)
	}
	expectedWords := (bitLength + wordBits - 1) / wordBits
	if wordCount != expectedWords {
		return nil, fmt.Errorf("bitvector: format error: wordCount %d does not match bitLength %d (expected %d words)", wordCount, bitLength, expectedWords)
	}
	words := make([]uint64, wordCount)
	if wordCount > 0 {
		if err := binary.Read(r, binary.LittleEndian, words); err != nil {
			return nil, fmt.Errorf("bitvector: read words: %w", err)
		}
	}
	return FromWords(words, int(bitLength)), nil
}
