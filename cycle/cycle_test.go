package cycle_test

import (
	"testing"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/cycle"
)

func totalWeight(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}
	return sum
}

func TestExtract_EmptyInput_NoCycle(t *testing.T) {
	cyc, found := cycle.Extract(nil)
	if found {
		t.Fatalf("expected no cycle, got %+v", cyc)
	}
}

func TestExtract_SingleEdge_NoCycle(t *testing.T) {
	edges := []core.Edge{{Lo: 0, Hi: 1, Weight: 1}}
	_, found := cycle.Extract(edges)
	if found {
		t.Fatalf("expected no cycle from a single edge")
	}
}

func TestExtract_Triangle_FindsTheCycle(t *testing.T) {
	edges := []core.Edge{
		{Lo: 0, Hi: 1, Weight: 3},
		{Lo: 1, Hi: 2, Weight: 4},
		{Lo: 0, Hi: 2, Weight: 5},
	}
	cyc, found := cycle.Extract(edges)
	if !found {
		t.Fatalf("expected a cycle")
	}
	if len(cyc) != 3 {
		t.Fatalf("expected a 3-edge cycle, got %+v", cyc)
	}
	if totalWeight(cyc) != 12 {
		t.Fatalf("expected total weight 12, got %d", totalWeight(cyc))
	}
}

func TestExtract_TreePlusOneEdge_FindsTheUniqueCycle(t *testing.T) {
	// A star 0-1,0-2,0-3 (tree, acyclic) plus 1-2 closes exactly one cycle:
	// 0-1-2-0.
	edges := []core.Edge{
		{Lo: 0, Hi: 1, Weight: 1},
		{Lo: 0, Hi: 2, Weight: 1},
		{Lo: 0, Hi: 3, Weight: 1},
		{Lo: 1, Hi: 2, Weight: 1},
	}
	cyc, found := cycle.Extract(edges)
	if !found {
		t.Fatalf("expected a cycle")
	}
	if len(cyc) != 3 {
		t.Fatalf("expected a 3-edge cycle, got %+v", cyc)
	}
}

func TestExtract_DisjointComponents_FindsCycleInEither(t *testing.T) {
	// First component (0,1,2) is a tree; second component (3,4,5) is a
	// triangle. Extract must not stop just because the first unvisited
	// node's component is acyclic.
	edges := []core.Edge{
		{Lo: 0, Hi: 1, Weight: 1},
		{Lo: 1, Hi: 2, Weight: 1},
		{Lo: 3, Hi: 4, Weight: 1},
		{Lo: 4, Hi: 5, Weight: 1},
		{Lo: 3, Hi: 5, Weight: 1},
	}
	cyc, found := cycle.Extract(edges)
	if !found {
		t.Fatalf("expected a cycle in the second component")
	}
	if len(cyc) != 3 {
		t.Fatalf("expected a 3-edge cycle, got %+v", cyc)
	}
}

func TestExtract_PureTree_NoCycle(t *testing.T) {
	edges := []core.Edge{
		{Lo: 0, Hi: 1, Weight: 1},
		{Lo: 1, Hi: 2, Weight: 1},
		{Lo: 2, Hi: 3, Weight: 1},
	}
	_, found := cycle.Extract(edges)
	if found {
		t.Fatalf("expected no cycle in a tree")
	}
}
