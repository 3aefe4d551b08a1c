package main

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/dimacs"
)

// These tests exercise spec.md §8's six literal end-to-end scenarios
// through the driver's pipeline: DIMACS parse -> MMC engine and parallel-edge
// comparison (findBestCycle). The returned edge list is checked directly;
// DIMACS emission is covered by the dimacs package's own tests.

func runScenario(t *testing.T, dimacsInput string) (cyc []core.Edge, g *core.Graph) {
	t.Helper()
	g, parallelCandidate, err := dimacs.ReadGraph(strings.NewReader(dimacsInput), false)
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	cyc, _, err = findBestCycle(g, parallelCandidate, noopLogger(t))
	if err != nil {
		t.Fatalf("findBestCycle: %v", err)
	}
	return cyc, g
}

func noopLogger(t *testing.T) *zap.Logger {
	t.Helper()
	l, err := newLogger("error")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	return l
}

func totalWeight(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}
	return sum
}

func TestScenario1_Triangle(t *testing.T) {
	cyc, _ := runScenario(t, "p edge 3 3\ne 1 2 1\ne 2 3 1\ne 1 3 1\n")
	if len(cyc) != 3 || totalWeight(cyc) != 3 {
		t.Fatalf("expected 3-edge cycle, total weight 3, got %+v", cyc)
	}
}

func TestScenario2_CheapCyclePlusBridge(t *testing.T) {
	cyc, _ := runScenario(t, "p edge 5 5\ne 1 2 1\ne 2 3 1\ne 3 1 1\ne 3 4 10\ne 4 5 10\n")
	if len(cyc) != 3 || totalWeight(cyc) != 3 {
		t.Fatalf("expected the cheap triangle, got %+v", cyc)
	}
}

func TestScenario3_NegativeWeights(t *testing.T) {
	cyc, _ := runScenario(t, "p edge 4 5\ne 1 2 -1\ne 2 3 -1\ne 3 4 -1\ne 4 1 -1\ne 1 3 5\n")
	if len(cyc) != 4 || totalWeight(cyc) != -4 {
		t.Fatalf("expected 4-edge cycle, total weight -4, got %+v", cyc)
	}
}

func TestScenario4_Acyclic(t *testing.T) {
	cyc, g := runScenario(t, "p edge 3 2\ne 1 2 1\ne 2 3 1\n")
	if len(cyc) != 0 {
		t.Fatalf("expected no cycle, got %+v", cyc)
	}
	if g.NumNodes() != 3 {
		t.Fatalf("expected 3 nodes preserved, got %d", g.NumNodes())
	}
}

func TestScenario5_TieBetweenTwoTriangles(t *testing.T) {
	cyc, _ := runScenario(t, "p edge 6 6\ne 1 2 2\ne 2 3 2\ne 3 1 2\ne 4 5 2\ne 5 6 2\ne 6 4 2\n")
	if len(cyc) != 3 || totalWeight(cyc) != 6 {
		t.Fatalf("expected a 3-edge cycle of total weight 6, got %+v", cyc)
	}
}

func TestScenario6_MixedSignRefinement(t *testing.T) {
	// This K4 graph's true minimum mean cycle is the 4-cycle using both
	// diagonals plus two opposite sides (sum -4, mean -1), cheaper than any
	// triangle (sum 1, mean 1/3) — verified by brute-force enumeration of
	// all 7 simple cycles in K4.
	cyc, _ := runScenario(t, "p edge 4 6\ne 1 2 3\ne 2 3 3\ne 3 4 3\ne 4 1 3\ne 1 3 -5\ne 2 4 -5\n")
	if len(cyc) != 4 {
		t.Fatalf("expected a 4-edge cycle, got %+v", cyc)
	}
	if totalWeight(cyc) != -4 {
		t.Fatalf("expected total weight -4 (mean -1), got %d", totalWeight(cyc))
	}
}
