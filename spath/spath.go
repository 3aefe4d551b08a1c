// Package spath implements single-source shortest paths (component C) under
// a caller-supplied non-negative edge-cost function, following the shape of
// the teacher's dijkstra.Dijkstra: a small runner struct holding dist/parent/
// fixed arrays and a lazy-decrease-key min-heap (here, pqueue.Queue rather
// than a heap embedded in the same package, since SPEC_FULL.md promotes the
// priority queue to its own component).
//
// The T-join solver is the only caller: it needs shortest paths from each
// "odd" node to every other odd node under |c'|, so SingleSource takes an
// explicit target set and stops once every target is fixed (§4.2).
package spath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/pqueue"
)

// ErrNegativeCost indicates the caller's cost function produced a negative
// value for some edge, violating Dijkstra's precondition. This is an
// Internal-class error per SPEC_FULL.md §7: callers (tjoin) must only ever
// pass |c'|, which is non-negative by construction, so tripping this
// indicates a bug upstream rather than bad input data.
var ErrNegativeCost = errors.New("spath: cost function returned a negative value")

// Unreached marks a node's distance as infinite / not (yet) reached.
const Unreached = math.MaxInt64

// Result holds the outcome of a SingleSource run.
type Result struct {
	Dist   []int64 // Dist[v] == Unreached if v was not reached before termination.
	Parent []int   // Parent[v] == -1 if v has no predecessor (source, or unreached).
}

// Reached reports whether v was assigned a finite distance.
func (r Result) Reached(v int) bool { return r.Dist[v] != Unreached }

// SingleSource computes shortest distances from source under cost(w(e)) for
// every edge e, stopping early once every node in targets has been fixed
// (popped from the frontier with its final distance). Nodes never relaxed
// by then are left Unreached; nodes relaxed but not yet fixed keep their
// tentative distance.
//
// Contract: cost(w) >= 0 for every edge weight w the graph can produce under
// the caller's transform; violating this returns ErrNegativeCost rather than
// silently producing wrong distances.
//
// Iteration over a fixed node's neighbors is in ascending node-id order, so
// results (ties in path choice, not cost) are reproducible across runs.
//
// Complexity: O(n² + e log e), since each fixed node scans its full dense
// adjacency row.
func SingleSource(g *core.Graph, source int, cost func(w int64) int64, targets map[int]bool) (Result, error) {
	n := g.NumNodes()
	dist := make([]int64, n)
	parent := make([]int, n)
	fixed := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = Unreached
		parent[v] = -1
	}
	dist[source] = 0

	remaining := 0
	for t := range targets {
		if t != source {
			remaining++
		}
	}

	pq := pqueue.New(n)
	pq.Push(0, source)

	for !pq.IsEmpty() {
		d, u, ok := pq.PopMin()
		if !ok {
			break
		}
		if fixed[u] {
			continue // stale lazy-decrease-key entry
		}
		if d > dist[u] {
			continue // stale entry: a better distance has since been found
		}
		fixed[u] = true
		if targets[u] && u != source {
			remaining--
			if remaining == 0 {
				break
			}
		}

		for _, v := range g.Neighbors(u) {
			if fixed[v] {
				continue
			}
			w, err := g.EdgeWeight(u, v)
			if err != nil {
				return Result{}, fmt.Errorf("spath: neighbor %d of %d reported without a weight: %w", v, u, err)
			}
			c := cost(w)
			if c < 0 {
				return Result{}, fmt.Errorf("%w: edge (%d,%d) weight=%d", ErrNegativeCost, u, v, w)
			}
			nd := dist[u] + c
			if nd < dist[v] {
				dist[v] = nd
				parent[v] = u
				pq.Push(nd, v)
			}
		}
	}

	return Result{Dist: dist, Parent: parent}, nil
}

// ReconstructPath walks parent pointers from target back to source and
// returns the path as canonical (lo,hi) edges in source->target order.
// ok is false if target was never reached. Returned edges carry no Weight
// (the caller applied an arbitrary cost transform to reach these distances,
// so only the original graph knows the true weight); look it up via
// g.EdgeWeight if needed.

func ReconstructPath(r Result, source, target int) (edges []core.Edge, ok bool) {
	if !r.Reached(target) {
		return nil, false
	}
	if target == source {
		return nil, true
	}

	var rev []core.Edge
	cur := target
	for cur != source {
		p := r.Parent[cur]
		if p == -1 {
			return nil, false
		}
		lo, hi := core.Canon(p, cur)
		rev = append(rev, core.Edge{Lo: lo, Hi: hi})
		cur = p
	}
	// Reverse into source->target order.
	edges = make([]core.Edge, len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = e
	}

	return edges, true
}
