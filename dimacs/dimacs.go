// Package dimacs implements the DIMACS edge-format read/write boundary
// (the format half of component I), per SPEC_FULL.md §6.
//
// Grounded on the teacher's builder package for the general shape of a
// "parse external description into a core.Graph" constructor, adapted here
// to a line-oriented streaming format rather than a programmatic builder
// API, and using only the standard library (bufio, strconv, strings) — the retrieval pack carries
// no DIMACS or general graph-file-format library, so the stdlib text
// scanner is the correct tool (see DESIGN.md).
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mmcycle/core"
)

// ErrMalformedHeader indicates the first non-comment line is not a valid
// "p edge N M" header.
var ErrMalformedHeader = errors.New("dimacs: malformed header, expected \"p edge N M\"")

// ErrMalformedEdgeLine indicates an "e u v w" line failed to parse.
var ErrMalformedEdgeLine = errors.New("dimacs: malformed edge line, expected \"e u v w\"")

// ErrNodeIDOutOfRange indicates an edge endpoint is non-positive or exceeds N.
var ErrNodeIDOutOfRange = errors.New("dimacs: node id out of range [1,N]")

// ErrSelfLoopEdge indicates an edge line has u == v.
var ErrSelfLoopEdge = errors.New("dimacs: self-loop edges are not supported")

// ErrUnsupportedParallelEdge indicates a parallel edge was rejected under
// strict mode (the driver's --strict-multi flag).
var ErrUnsupportedParallelEdge = errors.New("dimacs: parallel edge rejected (strict mode)")

// ParallelCandidate records the cheapest parallel-edge pair collapsed during
// a non-strict read: per SPEC_FULL.md §8's boundary behavior, two parallel
// edges with weights a,b form a trivial 2-cycle of mean (a+b)/2 that the
// driver must compare against the MMC engine's own result.
type ParallelCandidate struct {
	U, V    int // 0-based
	WeightA int64
	WeightB int64
}

// Mean returns (WeightA+WeightB)/2 as an exact rational pair suitable for
// gamma.New(costSum, numEdges).
func (p ParallelCandidate) Mean() (costSum int64, numEdges uint64) {
	return p.WeightA + p.WeightB, 2
}

// ReadGraph parses a DIMACS edge-format stream into a Graph.
//
// Lines starting with 'c' (after optional leading whitespace) and blank
// lines are comments and skipped. Node ids are 1-based in the input and
// converted to 0-based internally.
//
// If strictMulti is true, a repeated edge between the same pair of nodes is
// rejected with ErrUnsupportedParallelEdge. Otherwise the cheaper of the two
// weights is kept, and the single cheapest such collision observed is
// returned as a non-nil *ParallelCandidate (nil if no collision occurred).
func ReadGraph(r io.Reader, strictMulti bool) (g *core.Graph, candidate *ParallelCandidate, err error) {
	scanner := bufio.NewScanner(r)

	var n, m int
	headerSeen := false
	edgesSeen := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if !headerSeen {
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "edge" {
				return nil, nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			n, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			g, err = core.NewGraph(n)
			if err != nil {
				return nil, nil, fmt.Errorf("dimacs: %w", err)
			}
			headerSeen = true
			continue
		}

		if len(fields) != 4 || fields[0] != "e" {
			return nil, nil, fmt.Errorf("%w: %q", ErrMalformedEdgeLine, line)
		}
		u1, errU := strconv.Atoi(fields[1])
		v1, errV := strconv.Atoi(fields[2])
		w, errW := strconv.ParseInt(fields[3], 10, 64)
		if errU != nil || errV != nil || errW != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrMalformedEdgeLine, line)
		}
		if u1 < 1 || u1 > n || v1 < 1 || v1 > n {
			return nil, nil, fmt.Errorf("%w: %q", ErrNodeIDOutOfRange, line)
		}
		u, v := u1-1, v1-1
		if u == v {
			return nil, nil, fmt.Errorf("%w: %q", ErrSelfLoopEdge, line)
		}

		if g.EdgeExists(u, v) {
			if strictMulti {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedParallelEdge, line)
			}
			existing, _ := g.EdgeWeight(u, v)
			lo, hi := core.Canon(u, v)
			cand := ParallelCandidate{U: lo, V: hi, WeightA: existing, WeightB: w}
			if candidate == nil || cand.WeightA+cand.WeightB < candidate.WeightA+candidate.WeightB {
				candidate = &cand
			}
			if w < existing {
				_ = g.AddEdge(u, v, w)
			}
		} else {
			if err := g.AddEdge(u, v, w); err != nil {
				return nil, nil, fmt.Errorf("dimacs: %q: %w", line, err)
			}
		}
		edgesSeen++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("dimacs: reading input: %w", err)
	}
	if !headerSeen {
		return nil, nil, ErrMalformedHeader
	}
	if edgesSeen != m {
		return nil, nil, fmt.Errorf("dimacs: header declared %d edges, found %d", m, edgesSeen)
	}

	return g, candidate, nil
}

// WriteCycle emits a DIMACS edge-format stream for a single cycle result:
// "p edge N K" followed by K "e u v w" lines (1-based ids, original
// weights). n is the original graph's node count (preserved even though the
// cycle may only touch a subset of nodes). If cyc is empty, K=0 and no edge
// lines follow — the acyclic case.
func WriteCycle(w io.Writer, n int, cyc []core.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", n, len(cyc)); err != nil {
		return fmt.Errorf("dimacs: writing header: %w", err)
	}
	for _, e := range cyc {
		if _, err := fmt.Fprintf(bw, "e %d %d %d\n", e.Lo+1, e.Hi+1, e.Weight); err != nil {
			return fmt.Errorf("dimacs: writing edge (%d,%d): %w", e.Lo, e.Hi, err)
		}
	}

	return bw.Flush()
}
