package bitvector

import "testing"

func buildFromBits(bits []bool) *BitVector {
	v := New()
	for _, b := range bits {
		v.PushBack(b)
	}
	return v
}

func TestBitVectorRankSelectRoundTrip(t *testing.T) {
	// 1 0 1 1 0 0 1 0 1
	bits := []bool{true, false, true, true, false, false, true, false, true}
	v := buildFromBits(bits)

	for i := 0; i < len(bits); i++ {
		want := 0
		for j := 0; j <= i; j++ {
			if bits[j] {
				want++
			}
		}
		if got := v.Rank1(i); got != want {
			t.Errorf("Rank1(%d) = %d, want %d", i, got, want)
		}
		if bits[i] {
			if sel := v.Select1(v.Rank1(i)); sel > i {
				t.Errorf("Select1(Rank1(%d))=%d, want <= %d", i, sel, i)
			}
		}
	}
}

func TestBitVectorRankOutOfRange(t *testing.T) {
	v := buildFromBits([]bool{true, false, true})
	if got := v.Rank1(-1); got != 0 {
		t.Errorf("Rank1(-1) = %d, want 0", got)
	}
	if got := v.Rank1(100); got != v.Rank1(2) {
		t.Errorf("Rank1(100) = %d, want %d", got, v.Rank1(2))
	}
}

func TestBitVectorSelectOutOfRange(t *testing.T) {
	v := buildFromBits([]bool{true, false, true})
	if got := v.Select1(0); got != -1 {
		t.Errorf("Select1(0) = %d, want -1", got)
	}
	if got := v.Select1(3); got != -1 {
		t.Errorf("Select1(3) = %d, want -1 (only 2 ones)", got)
	}
	if got := v.Select0(2); got != -1 {
		t.Errorf("Select0(2) = %d, want -1 (only 1 zero)", got)
	}
}

func TestFromWordsRoundTrip(t *testing.T) {
	v := New()
	for i := 0; i < 200; i++ {
		v.PushBack(i%3 == 0)
	}
	rebuilt := FromWords(v.Words(), v.Len())
	for i := 0; i < v.Len(); i++ {
		if rebuilt.Get(i) != v.Get(i) {
			t.Fatalf("Get(%d) mismatch after FromWords round-trip", i)
		}
	}
}
