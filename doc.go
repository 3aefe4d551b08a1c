// Package mmcycle computes the Minimum Mean Cycle of an undirected,
// integer-weighted graph given in DIMACS edge format: the simple cycle
// minimizing (sum of edge weights) / (number of edges) over all simple
// cycles in the graph.
//
// The engine is organized as a composition of small packages, each owning
// one piece of the Karp/Orlin-style reduction:
//
//	core/     — the graph representation (nodes, edges, adjacency queries)
//	pqueue/   — a min-heap priority queue
//	spath/    — single-source shortest paths under non-negative costs
//	matching/ — exact minimum-weight perfect matching via bitmask DP
//	tjoin/    — minimum T-join / ∅-join solver (composes spath + matching)
//	gamma/    — exact rational mean-weight representation and comparisons
//	cycle/    — simple-cycle extraction from an edge set
//	mmc/      — the outer γ-iteration engine (composes tjoin + gamma + cycle)
//	dimacs/   — DIMACS edge-format reader/writer
//	cmd/mmcycle/ — the command-line driver
package mmcycle
