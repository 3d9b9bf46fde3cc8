package bitvector

import (
	"math/rand"
	"testing"
)

func randomBits(n int, seed int64) []bool {
	r := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Intn(3) == 0 // sparse-ish ones, exercises both Select paths
	}
	return bits
}

func buildSuccinct(bits []bool) (*BitVector, *SuccinctBitVector) {
	bv := buildFromBits(bits)
	return bv, Build(bv)
}

func TestSuccinctRank1MatchesNaive(t *testing.T) {
	bits := randomBits(1000, 1)
	bv, s := buildSuccinct(bits)
	for i := -2; i <= bv.Len()+2; i++ {
		if got, want := s.Rank1(i), bv.Rank1(i); got != want {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSuccinctRank0MatchesNaive(t *testing.T) {
	bits := randomBits(777, 2)
	bv, s := buildSuccinct(bits)
	for i := -2; i <= bv.Len()+2; i++ {
		if got, want := s.Rank0(i), bv.Rank0(i); got != want {
			t.Fatalf("Rank0(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSuccinctSelect1RoundTrip(t *testing.T) {
	bits := randomBits(2000, 3)
	_, s := buildSuccinct(bits)
	for k := 1; k <= s.TotalOnes(); k++ {
		pos := s.Select1(k)
		if pos < 0 {
			t.Fatalf("Select1(%d) = -1, want a valid position", k)
		}
		if !s.Get(pos) {
			t.Fatalf("Select1(%d) = %d is not a one-bit", k, pos)
		}
		if s.Rank1(pos) != k {
			t.Fatalf("Select1(%d) = %d but Rank1(%d) = %d", k, pos, pos, s.Rank1(pos))
		}
	}
}

func TestSuccinctSelect0RoundTrip(t *testing.T) {
	bits := randomBits(2000, 4)
	_, s := buildSuccinct(bits)
	for k := 1; k <= s.TotalZeros(); k++ {
		pos := s.Select0(k)
		if pos < 0 {
			t.Fatalf("Select0(%d) = -1, want a valid position", k)
		}
		if s.Get(pos) {
			t.Fatalf("Select0(%d) = %d is not a zero-bit", k, pos)
		}
		if s.Rank0(pos) != k {
			t.Fatalf("Select0(%d) = %d but Rank0(%d) = %d", k, pos, pos, s.Rank0(pos))
		}
	}
}

func TestSuccinctSelectOutOfRange(t *testing.T) {
	_, s := buildSuccinct(randomBits(100, 5))
	if got := s.Select1(0); got != -1 {
		t.Errorf("Select1(0) = %d, want -1", got)
	}
	if got := s.Select1(s.TotalOnes() + 1); got != -1 {
		t.Errorf("Select1(beyond total) = %d, want -1", got)
	}
	if got := s.Select0(s.TotalZeros() + 1); got != -1 {
		t.Errorf("Select0(beyond total) = %d, want -1", got)
	}
}

func TestSuccinctEmptyVector(t *testing.T) {
	_, s := buildSuccinct(nil)
	if got := s.Rank1(0); got != 0 {
		t.Errorf("Rank1(0) on empty = %d, want 0", got)
	}
	if got := s.Select1(1); got != -1 {
		t.Errorf("Select1(1) on empty = %d, want -1", got)
	}
}

func TestRankPlusRankInvariant(t *testing.T) {
	// rank1(i) + rank0(i) == i + 1 for every i in [0, n).
	bits := randomBits(513, 6)
	_, s := buildSuccinct(bits)
	for i := 0; i < len(bits); i++ {
		if got, want := s.Rank1(i)+s.Rank0(i), i+1; got != want {
			t.Fatalf("Rank1(%d)+Rank0(%d) = %d, want %d", i, i, got, want)
		}
	}
}
