// Package mmc implements the Minimum Mean Cycle engine (component H):
// the outer γ-iteration described in SPEC_FULL.md §4.5, composing gamma.Gamma,
// tjoin.Solve, and cycle.Extract.
package mmc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/cycle"
	"github.com/katalvlaran/mmcycle/gamma"
	"github.com/katalvlaran/mmcycle/tjoin"
)

// ErrAcyclic indicates the input graph contains no cycle at all: there is
// no mean cycle to report.
var ErrAcyclic = errors.New("mmc: graph is acyclic, no minimum mean cycle exists")

// ErrGammaNotMonotone indicates the engine's core invariant (γ' <= γ on
// every iteration) was violated — a defect in the T-join/matching/cycle
// composition rather than a property of the input graph.
var ErrGammaNotMonotone = errors.New("mmc: gamma failed to decrease monotonically")

// ErrEmptyJoinHasNoCycle indicates tjoin.Solve returned a non-empty ∅-join
// that cycle.Extract could not find a cycle in. Per SPEC_FULL.md §4.6 this
// cannot happen for a genuine ∅-join (a disjoint union of simple cycles),
// so seeing it indicates an upstream defect.
var ErrEmptyJoinHasNoCycle = errors.New("mmc: non-empty join contained no extractable cycle")

// Result is the artifact returned once γ-iteration converges: the final
// cycle and its exact mean, per SPEC_FULL.md §4.5's "Returned artifact".
type Result struct {
	Cycle []core.Edge
	Gamma gamma.Gamma
}

// Find runs the γ-iteration to convergence and returns the minimum mean
// cycle of g.
func Find(g *core.Graph) (Result, error) {
	seed, found := cycle.Extract(g.Edges())
	if !found {
		return Result{}, ErrAcyclic
	}

	gm, err := gammaOf(seed)
	if err != nil {
		return Result{}, fmt.Errorf("mmc: seeding gamma from heuristic cycle: %w", err)
	}
	current := seed

	for {
		join, _, err := tjoin.Solve(g, func(e core.Edge) int64 { return gm.Apply(e.Weight) })
		if err != nil {
			return Result{}, fmt.Errorf("mmc: tjoin solver: %w", err)
		}
		if len(join) == 0 {
			return Result{Cycle: current, Gamma: gm}, nil
		}

		nextGamma, err := gammaOf(join)
		if err != nil {
			return Result{}, fmt.Errorf("mmc: gamma from join: %w", err)
		}
		if gm.Less(nextGamma) {
			return Result{}, fmt.Errorf("%w: gamma=%v candidate=%v", ErrGammaNotMonotone, gm, nextGamma)
		}

		next, found := cycle.Extract(join)
		if !found {
			return Result{}, ErrEmptyJoinHasNoCycle
		}

		if gm.Equal(nextGamma) {
			return Result{Cycle: next, Gamma: nextGamma}, nil
		}

		gm = nextGamma
		current = next
	}
}

func gammaOf(edges []core.Edge) (gamma.Gamma, error) {
	var costSum int64
	for _, e := range edges {
		costSum += e.Weight
	}

	return gamma.New(costSum, uint64(len(edges)))
}
