// Package cycle implements the Cycle Extractor (component G) per
// SPEC_FULL.md §4.6: given an edge set known to contain at least one cycle,
// find and return one simple cycle.
//
// Grounded on the teacher's dfs.DetectCycles (three-color DFS, back-edge
// detection, parent skip to avoid trivial u-v-u loops), but narrowed
// from "enumerate every simple cycle with canonical dedup" to "find the
// first one, iteratively": following SPEC_FULL.md §4.6, it uses an explicit
// stack of (parentNode, node, nextIdx) frames rather than dfsVisit's
// recursive calls, since the engine must handle graphs too deep for a
// comfortable call stack.
package cycle

import (
	"sort"

	"github.com/katalvlaran/mmcycle/core"
)

type neighbor struct {
	to     int
	weight int64
}

type stackFrame struct {
	node    int
	parent  int // -1 at the root of this DFS tree
	nextIdx int
}

// Extract searches edges for one simple cycle. found is false iff edges is
// acyclic, in which case cyc is nil.
//
// Per node, incident edges are tried in ascending original-weight order (a
// heuristic bias toward cheap cycles; does not affect correctness — any
// back-edge closes a valid simple cycle).
//
// The walk skips the neighbor equal to the current frame's parent node. On
// a set with at most one edge per node pair this is the same as skipping the
// parent edge; two parallel edges between the same pair are not reported as
// a 2-cycle.
func Extract(edges []core.Edge) (cyc []core.Edge, found bool) {
	if len(edges) == 0 {
		return nil, false
	}

	adj := buildAdjacency(edges)
	nodes := make([]int, 0, len(adj))
	for v := range adj {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int]int, len(nodes))

	for _, start := range nodes {
		if color[start] != white {
			continue
		}

		var path []int
		var pathEdges []core.Edge
		pos := map[int]int{start: 0}
		path = append(path, start)
		color[start] = gray

		stack := []stackFrame{{node: start, parent: -1, nextIdx: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := adj[top.node]
			advanced := false

			for top.nextIdx < len(nbrs) {
				nb := nbrs[top.nextIdx]
				top.nextIdx++
				if nb.to == top.parent {
					continue // parent-node guard: don't treat u-v-u as a cycle
				}

				switch color[nb.to] {
				case white:
					color[nb.to] = gray
					path = append(path, nb.to)
					pos[nb.to] = len(path) - 1
					lo, hi := core.Canon(top.node, nb.to)
					pathEdges = append(pathEdges, core.Edge{Lo: lo, Hi: hi, Weight: nb.weight})
					stack = append(stack, stackFrame{node: nb.to, parent: top.node, nextIdx: 0})
					advanced = true
				case gray:
					idx := pos[nb.to]
					closing := append([]core.Edge(nil), pathEdges[idx:]...)
					lo, hi := core.Canon(top.node, nb.to)
					closing = append(closing, core.Edge{Lo: lo, Hi: hi, Weight: nb.weight})

					return closing, true
				case black:
					// fully explored elsewhere; cannot close a new cycle here
				}

				if advanced {
					break
				}
			}
			if advanced {
				continue
			}

			// Neighbors exhausted: backtrack.
			color[top.node] = black
			path = path[:len(path)-1]
			if len(pathEdges) > 0 {
				pathEdges = pathEdges[:len(pathEdges)-1]
			}
			stack = stack[:len(stack)-1]
		}
	}

	return nil, false
}

func buildAdjacency(edges []core.Edge) map[int][]neighbor {
	adj := make(map[int][]neighbor)
	for _, e := range edges {
		adj[e.Lo] = append(adj[e.Lo], neighbor{to: e.Hi, weight: e.Weight})
		adj[e.Hi] = append(adj[e.Hi], neighbor{to: e.Lo, weight: e.Weight})
	}
	for v := range adj {
		list := adj[v]
		sort.Slice(list, func(i, j int) bool {
			if list[i].weight != list[j].weight {
				return list[i].weight < list[j].weight
			}
			return list[i].to < list[j].to
		})
	}

	return adj
}
