// Package gamma implements the exact rational estimate γ used by the MMC
// engine's outer parametric-search loop (component F).
//
// γ is represented as (CostSum, NumEdges) rather than a float64 because the
// engine's termination test is "γ ceased to decrease": any floating-point
// drift in that comparison can cause an infinite loop (false continuation)
// or a wrong answer (false termination). Comparisons cross-multiply with a
// math/big accumulator so that CostSum·NumEdges products can never silently
// overflow int64, however large the inputs — no ecosystem rational-number
// library is part of this retrieval pack's stack, and a fixed 128-bit type
// isn't in the standard library, so math/big is the correct-by-construction
// stdlib choice here (see DESIGN.md).
package gamma

import (
	"errors"
	"math/big"
)

// ErrZeroEdges indicates a Gamma was constructed with NumEdges == 0, which
// would make the represented mean undefined.
var ErrZeroEdges = errors.New("gamma: num_edges must be positive")

// Gamma is the exact rational CostSum/NumEdges.
//
// Invariant: NumEdges > 0 (enforced by New; zero-value Gamma is invalid and
// must not be used directly — always go through New).
type Gamma struct {
	CostSum  int64
	NumEdges uint64
}

// New builds a Gamma from an edge set's total cost and edge count.
func New(costSum int64, numEdges uint64) (Gamma, error) {
	if numEdges == 0 {
		return Gamma{}, ErrZeroEdges
	}

	return Gamma{CostSum: costSum, NumEdges: numEdges}, nil
}

// Apply reweights an edge of original weight w under γ:
//
//	apply(w) = w·γ.NumEdges - γ.CostSum
//
// This equals NumEdges·(w-γ) so it has the same sign as w-γ (and is zero
// iff w==γ), while staying integral — no floating point is involved.
func (g Gamma) Apply(w int64) int64 {
	return w*int64(g.NumEdges) - g.CostSum
}

// Less reports whether g < other, i.e. g.CostSum/g.NumEdges < other.CostSum/other.NumEdges,
// via exact cross-multiplication (both denominators are positive, so the
// cross-multiplied inequality direction is preserved).
func (g Gamma) Less(other Gamma) bool {
	lhs := new(big.Int).Mul(big.NewInt(g.CostSum), new(big.Int).SetUint64(other.NumEdges))
	rhs := new(big.Int).Mul(big.NewInt(other.CostSum), new(big.Int).SetUint64(g.NumEdges))

	return lhs.Cmp(rhs) < 0
}

// Equal reports exact rational equality via cross-multiplication.
func (g Gamma) Equal(other Gamma) bool {
	lhs := new(big.Int).Mul(big.NewInt(g.CostSum), new(big.Int).SetUint64(other.NumEdges))
	rhs := new(big.Int).Mul(big.NewInt(other.CostSum), new(big.Int).SetUint64(g.NumEdges))

	return lhs.Cmp(rhs) == 0
}

// LessOrEqual reports g <= other.
func (g Gamma) LessOrEqual(other Gamma) bool {
	return g.Less(other) || g.Equal(other)
}

// Float64 returns an inexact float64 approximation of γ, for logging/display only.
// It must never be used in a correctness-relevant comparison.
func (g Gamma) Float64() float64 {
	return float64(g.CostSum) / float64(g.NumEdges)
}
