// Package core defines the Graph type used across the MMC engine: an
// undirected, integer-weighted simple graph over nodes [0,n).
//
// Unlike github.com/katalvlaran/lvlath/core (string-keyed vertices, mutex
// protected for concurrent mutation), this Graph is built once from DIMACS
// input and never mutated again (see §5 of SPEC_FULL.md): no locks, no
// vertex/edge IDs, just a dense adjacency structure sized for O(1)
// edge_exists/edge_weight lookups.
//
// Errors:
//
//	ErrInvalidNodeCount - NewGraph called with n <= 0.
//	ErrSelfLoop          - AddEdge called with u == v.
//	ErrNodeOutOfRange    - an endpoint is outside [0,n).
//	ErrEdgeNotFound      - EdgeWeight called for a pair with no edge.
package core

import "errors"

// Sentinel errors for core graph construction and queries.
var (
	// ErrInvalidNodeCount indicates NewGraph was asked to build a graph with n <= 0 nodes.
	ErrInvalidNodeCount = errors.New("core: node count must be positive")

	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0,n).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrEdgeNotFound indicates a query for the weight of a nonexistent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a canonical undirected edge: Lo < Hi, with an integer Weight.
//
// Canonicalization to (Lo,Hi) with Lo<Hi is required throughout the engine
// for deterministic sorting and set operations (T-join symmetric difference).
type Edge struct {
	Lo     int
	Hi     int
	Weight int64
}

// Canon returns u and v ordered (lo,hi) with lo<hi, for any u!=v.
func Canon(u, v int) (lo, hi int) {
	if u < v {
		return u, v
	}

	return v, u
}

// Graph is an undirected, integer-weighted simple graph on nodes [0,n).
//
// Storage: a dense n×n adjacency of (exists,weight) pairs, giving O(1)
// edge_exists/edge_weight lookups per SPEC_FULL.md §3, at O(n²) memory —
// acceptable under the engine's own O(n²+n·|T|) working-set budget.
//
// Invariant: no self-loops; parallel edges are resolved before construction
// (see the dimacs package), so at most one weight exists per unordered pair.
type Graph struct {
	n       int
	exists  [][]bool
	weight  [][]int64
	edgeCnt int
}

// NewGraph allocates an empty simple graph over n nodes (no edges yet).
// Complexity: O(n²).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidNodeCount
	}

	g := &Graph{
		n:      n,
		exists: make([][]bool, n),
		weight: make([][]int64, n),
	}
	for i := 0; i < n; i++ {
		g.exists[i] = make([]bool, n)
		g.weight[i] = make([]int64, n)
	}

	return g, nil
}

// NumNodes returns n, the number of nodes in [0,n).
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of distinct undirected edges currently stored.
func (g *Graph) NumEdges() int { return g.edgeCnt }

// AddEdge inserts (or overwrites) the undirected edge {u,v} with the given
// weight. Self-loops are rejected; out-of-range endpoints are rejected.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u == v {
		return ErrSelfLoop
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrNodeOutOfRange
	}

	lo, hi := Canon(u, v)
	if !g.exists[lo][hi] {
		g.edgeCnt++
	}
	g.exists[lo][hi] = true
	g.exists[hi][lo] = true
	g.weight[lo][hi] = w
	g.weight[hi][lo] = w

	return nil
}

// EdgeExists reports whether an edge {u,v} is present. u==v always reports false.
// Complexity: O(1).
func (g *Graph) EdgeExists(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}

	return g.exists[u][v]
}

// EdgeWeight returns the weight of {u,v}. Precondition: EdgeExists(u,v).
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v int) (int64, error) {
	if !g.EdgeExists(u, v) {
		return 0, ErrEdgeNotFound
	}

	return g.weight[u][v], nil
}

// Edges returns every edge as a canonical (lo,hi,weight) triple, sorted by
// (lo,hi) ascending — deterministic order for reproducible runs.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCnt)
	for lo := 0; lo < g.n; lo++ {
		for hi := lo + 1; hi < g.n; hi++ {
			if g.exists[lo][hi] {
				out = append(out, Edge{Lo: lo, Hi: hi, Weight: g.weight[lo][hi]})
			}
		}
	}

	return out
}

// Neighbors returns the sorted list of nodes adjacent to u.
// Complexity: O(n).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}

	out := make([]int, 0)
	row := g.exists[u]
	for v := 0; v < g.n; v++ {
		if row[v] {
			out = append(out, v)
		}
	}

	return out
}
