package search

import (
	"testing"

	"github.com/kotaroooo0/kanakanji/build"
	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/lattice"
)

func units(s string) []uint16 {
	u := make([]uint16, 0, len(s))
	for _, r := range s {
		u = append(u, uint16(r))
	}
	return u
}

func buildTestDictionaries() *build.Dictionaries {
	// leftId/rightId 0 used for きょう candidates, 1 for は (particle).
	// connection(0,1) is cheap, everything else costlier, so the forward
	// DP should prefer the きょう+は path over the per-character fallback.
	dim := 2
	conn := make([]int16, dim*dim)
	for i := range conn {
		conn[i] = 500
	}
	conn[0*dim+1] = 10 // connection(rightId=0, leftId=1)
	connMatrix := dict.NewConnectionMatrix(conn, dim)

	b := build.NewDictionaryBuilder(connMatrix)
	b.AddRows(
		build.SourceRow{Reading: units("きょう"), LeftID: 0, RightID: 0, Cost: 100, Surface: units("今日")},
		build.SourceRow{Reading: units("は"), LeftID: 1, RightID: 1, Cost: 50, Surface: units("は")},
	)
	return b.Build()
}

func TestForwardDPComputesOptimalCost(t *testing.T) {
	dicts := buildTestDictionaries()
	s := units("きょうは")
	g := lattice.Build(s, dicts)
	ForwardDP(g, dicts.Connection, 0)

	// Best path: BOS->今日 (conn 500 + cost 100), 今日->は (conn 10 + cost
	// 50), は->EOS (conn 500).
	eos := g.Columns[len(g.Columns)-1][0]
	if want := int64(1160); eos.F != want {
		t.Fatalf("EOS.F = %d, want the optimal accumulated cost %d", eos.F, want)
	}
}

func TestForwardDPBeamPruning(t *testing.T) {
	dicts := buildTestDictionaries()
	s := units("きょうは")
	g := lattice.Build(s, dicts)
	ForwardDP(g, dicts.Connection, 1)

	for i := 1; i < len(g.Columns)-1; i++ {
		if len(g.Columns[i]) > 1 {
			t.Errorf("Columns[%d] has %d arcs after beam-1 pruning, want <= 1", i, len(g.Columns[i]))
		}
	}
}

func TestBackwardAStarEmitsDeterministicCandidates(t *testing.T) {
	dicts := buildTestDictionaries()
	s := units("きょうは")
	g := lattice.Build(s, dicts)
	ForwardDP(g, dicts.Connection, 0)

	independent := NewIndependentWordSet()
	candidates, _ := BackwardAStar(g, dicts.Connection, independent, 3)
	if len(candidates) == 0 {
		t.Fatalf("expected at least one candidate")
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score < candidates[i-1].Score {
			t.Errorf("candidates not in non-decreasing score order: %+v", candidates)
		}
	}

	// Re-run: must be byte-identical (spec §8 determinism).
	g2 := lattice.Build(s, dicts)
	ForwardDP(g2, dicts.Connection, 0)
	candidates2, _ := BackwardAStar(g2, dicts.Connection, independent, 3)
	if len(candidates) != len(candidates2) {
		t.Fatalf("rerun candidate count differs: %d vs %d", len(candidates), len(candidates2))
	}
	for i := range candidates {
		if candidates[i].Surface != candidates2[i].Surface || candidates[i].Score != candidates2[i].Score {
			t.Errorf("rerun mismatch at %d: %+v vs %+v", i, candidates[i], candidates2[i])
		}
	}
}

func TestBackwardAStarEmptyInput(t *testing.T) {
	dicts := buildTestDictionaries()
	g := lattice.Build(units(""), dicts)
	ForwardDP(g, dicts.Connection, 0)

	independent := NewIndependentWordSet()
	candidates, bunsetsu := BackwardAStar(g, dicts.Connection, independent, 5)
	if len(candidates) != 0 {
		t.Errorf("empty input: got %d candidates, want 0", len(candidates))
	}
	if len(bunsetsu) != 0 {
		t.Errorf("empty input: got %d bunsetsu positions, want 0", len(bunsetsu))
	}
}

func TestBackwardAStarNBestZeroOrNegative(t *testing.T) {
	dicts := buildTestDictionaries()
	g := lattice.Build(units("きょう"), dicts)
	ForwardDP(g, dicts.Connection, 0)
	independent := NewIndependentWordSet()

	if candidates, _ := BackwardAStar(g, dicts.Connection, independent, 0); len(candidates) != 0 {
		t.Errorf("nBest=0: got %d candidates, want 0", len(candidates))
	}
	if candidates, _ := BackwardAStar(g, dicts.Connection, independent, -1); len(candidates) != 0 {
		t.Errorf("nBest=-1: got %d candidates, want 0", len(candidates))
	}
}

// buildAsymmetricTestDictionaries builds a two-word sentence where each
// word's leftId differs from its rightId, so a connection lookup that
// accidentally swaps which side of the successor node it reads
// (rightId vs leftId) picks up a different cost than the correct one.
func buildAsymmetricTestDictionaries() *build.Dictionaries {
	dim := 4
	conn := make([]int16, dim*dim)
	for i := range conn {
		conn[i] = 500
	}
	conn[2*dim+3] = 10  // conn(今日.rightId=2, は.leftId=3): the correct edge cost
	conn[2*dim+1] = 999 // conn(今日.rightId=2, は.rightId=1): what a buggy lookup would use instead
	connMatrix := dict.NewConnectionMatrix(conn, dim)

	b := build.NewDictionaryBuilder(connMatrix)
	b.AddRows(
		build.SourceRow{Reading: units("きょう"), LeftID: 0, RightID: 2, Cost: 100, Surface: units("今日")},
		build.SourceRow{Reading: units("は"), LeftID: 3, RightID: 1, Cost: 50, Surface: units("は")},
	)
	return b.Build()
}

func TestForwardBackwardScoreConsistencyWithAsymmetricConnectionIds(t *testing.T) {
	dicts := buildAsymmetricTestDictionaries()
	s := units("きょうは")
	g := lattice.Build(s, dicts)
	ForwardDP(g, dicts.Connection, 0)

	eos := g.Columns[len(g.Columns)-1][0]

	independent := NewIndependentWordSet()
	candidates, _ := BackwardAStar(g, dicts.Connection, independent, 1)
	if len(candidates) == 0 {
		t.Fatalf("expected at least one candidate")
	}
	if candidates[0].Score != eos.F {
		t.Errorf("backward A* best score = %d, want it to match forward DP's EOS.F = %d (connection direction must agree between ForwardDP and BackwardAStar)", candidates[0].Score, eos.F)
	}
}

func TestIndependentWordSetRanges(t *testing.T) {
	s := NewIndependentWordSet()
	mustBeIn := []int16{12, 28, 577, 856, 1842, 1936, 2041, 2195, 2390, 2471, 2590, 2670}
	for _, id := range mustBeIn {
		if !s.IsIndependentWord(id) {
			t.Errorf("IsIndependentWord(%d) = false, want true", id)
		}
	}
	mustBeOut := []int16{0, 11, 1937, 2000, 2040, 3000, -1}
	for _, id := range mustBeOut {
		if s.IsIndependentWord(id) {
			t.Errorf("IsIndependentWord(%d) = true, want false", id)
		}
	}
}
