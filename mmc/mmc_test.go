package mmc_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/gamma"
	"github.com/katalvlaran/mmcycle/mmc"
)

func mustGraph(t *testing.T, n int, edges [][3]int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestFind_Triangle(t *testing.T) {
	g := mustGraph(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}})
	res, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cycle) != 3 {
		t.Fatalf("expected 3-edge cycle, got %+v", res.Cycle)
	}
	if !res.Gamma.Equal(mustGamma(t, 1, 1)) {
		t.Fatalf("expected mean 1, got %v", res.Gamma.Float64())
	}
}

func TestFind_CheapCyclePlusBridge(t *testing.T) {
	// 0-1-2 triangle (mean 1) plus a dangling bridge 2-3-4 with heavy weights
	// that cannot participate in any cycle.
	g := mustGraph(t, 5, [][3]int64{
		{0, 1, 1}, {1, 2, 1}, {2, 0, 1},
		{2, 3, 10}, {3, 4, 10},
	})
	res, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cycle) != 3 {
		t.Fatalf("expected the 3-edge triangle, got %+v", res.Cycle)
	}
	if !res.Gamma.Equal(mustGamma(t, 1, 1)) {
		t.Fatalf("expected mean 1, got %v", res.Gamma.Float64())
	}
}

func TestFind_NegativeWeights_FourCycle(t *testing.T) {
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, -1}, {1, 2, -1}, {2, 3, -1}, {3, 0, -1}, {0, 2, 5},
	})
	res, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cycle) != 4 {
		t.Fatalf("expected 4-edge cycle, got %+v", res.Cycle)
	}
	if !res.Gamma.Equal(mustGamma(t, -1, 1)) {
		t.Fatalf("expected mean -1, got %v", res.Gamma.Float64())
	}
}

func TestFind_Acyclic_ReturnsErrAcyclic(t *testing.T) {
	g := mustGraph(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 1}})
	_, err := mmc.Find(g)
	if !errors.Is(err, mmc.ErrAcyclic) {
		t.Fatalf("expected ErrAcyclic, got %v", err)
	}
}

func TestFind_TwoDisjointTriangles_FindsOneDeterministically(t *testing.T) {
	g := mustGraph(t, 6, [][3]int64{
		{0, 1, 2}, {1, 2, 2}, {2, 0, 2},
		{3, 4, 2}, {4, 5, 2}, {5, 3, 2},
	})
	res, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cycle) != 3 {
		t.Fatalf("expected a 3-edge cycle, got %+v", res.Cycle)
	}
	if !res.Gamma.Equal(mustGamma(t, 2, 1)) {
		t.Fatalf("expected mean 2, got %v", res.Gamma.Float64())
	}

	// Re-running on the same graph must be reproducible (§8 round-trip note).
	res2, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(res2.Cycle) != len(res.Cycle) || !res2.Gamma.Equal(res.Gamma) {
		t.Fatalf("expected reproducible result, got %+v vs %+v", res2, res)
	}
}

func TestFind_MixedSignRefinement(t *testing.T) {
	// K4 with side weight 3 and diagonal weight -5. The 4-cycles that each
	// use both diagonals plus two opposite sides (e.g. 0-1-3-2-0) total
	// 3-5+3-5=-4 over 4 edges, mean -1 — cheaper than any of the four
	// triangles (each sums to 1 over 3 edges, mean 1/3) and cheaper than
	// the all-sides 4-cycle (mean 3). Verified by brute-force enumeration
	// of all 7 simple cycles in K4.
	g := mustGraph(t, 4, [][3]int64{
		{0, 1, 3}, {1, 2, 3}, {2, 3, 3}, {3, 0, 3},
		{0, 2, -5}, {1, 3, -5},
	})
	res, err := mmc.Find(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cycle) != 4 {
		t.Fatalf("expected a 4-edge cycle mixing both diagonals, got %+v", res.Cycle)
	}
	if !res.Gamma.Equal(mustGamma(t, -4, 4)) {
		t.Fatalf("expected mean -1, got %v", res.Gamma.Float64())
	}
}

func mustGamma(t *testing.T, costSum int64, numEdges uint64) gamma.Gamma {
	t.Helper()
	g, err := gamma.New(costSum, numEdges)
	if err != nil {
		t.Fatalf("gamma.New: %v", err)
	}
	return g
}
