// Command mmcycle is the driver (component I's plumbing half): it reads a
// DIMACS edge-format graph, runs the Minimum Mean Cycle engine, and writes
// the result back in the same format.
//
// Grounded on the teacher's example-driven CLI-free posture (the teacher is
// a library with no cmd/ of its own) generalized using the retrieval pack's
// own CLI stack: github.com/spf13/cobra for command/flag parsing (seen in
// kubernetes-sigs/depstat's cmd/cycles.go and others), go.uber.org/zap for
// structured logging, and github.com/google/uuid to stamp each run with a
// correlation id for its log lines.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mmcycle/core"
	"github.com/katalvlaran/mmcycle/dimacs"
	"github.com/katalvlaran/mmcycle/gamma"
	"github.com/katalvlaran/mmcycle/mmc"
	"github.com/katalvlaran/mmcycle/tjoin"
)

// Exit codes, one per SPEC_FULL.md §7 error kind plus success.
const (
	exitOK                 = 0
	exitInputFormat        = 1
	exitUnsupported        = 2
	exitMatchingInfeasible = 3
	exitInternal           = 4
)

var (
	strictMulti bool
	logLevel    string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mmcycle",
		Short:         "Find the minimum mean cycle of a DIMACS edge-format graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run <input-path> <output-path>",
		Short: "Read a DIMACS graph, compute its minimum mean cycle, write the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMMC(args[0], args[1])
		},
	}
	runCmd.Flags().BoolVar(&strictMulti, "strict-multi", false, "reject parallel edges instead of collapsing to the cheapest")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(runCmd)

	return root
}

func runMMC(inputPath, outputPath string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return fmt.Errorf("mmcycle: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	runID := uuid.New().String()
	log := logger.With(zap.String("run_id", runID))

	in, err := os.Open(inputPath)
	if err != nil {
		log.Error("failed to open input", zap.Error(err))
		return err
	}
	defer func() { _ = in.Close() }()

	log.Info("reading graph", zap.String("input", inputPath), zap.Bool("strict_multi", strictMulti))
	g, parallelCandidate, err := dimacs.ReadGraph(in, strictMulti)
	if err != nil {
		log.Error("failed to parse input", zap.Error(err))
		return err
	}
	log.Info("graph parsed", zap.Int("nodes", g.NumNodes()), zap.Int("edges", g.NumEdges()))

	cyc, gm, err := findBestCycle(g, parallelCandidate, log)
	if err != nil {
		log.Error("mmc engine failed", zap.Error(err))
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Error("failed to open output", zap.Error(err))
		return err
	}
	defer func() { _ = out.Close() }()

	if err := dimacs.WriteCycle(out, g.NumNodes(), cyc); err != nil {
		log.Error("failed to write output", zap.Error(err))
		return err
	}

	if len(cyc) == 0 {
		log.Info("graph is acyclic, wrote empty result")
	} else {
		log.Info("wrote minimum mean cycle", zap.Int("edges", len(cyc)), zap.Float64("mean", gm.Float64()))
	}

	return nil
}

// findBestCycle runs the MMC engine and, per SPEC_FULL.md §8's boundary
// behavior, compares it against any cheapest-parallel-2-cycle surfaced by
// the reader, returning whichever is smaller.
func findBestCycle(g *core.Graph, parallelCandidate *dimacs.ParallelCandidate, log *zap.Logger) ([]core.Edge, gamma.Gamma, error) {
	res, err := mmc.Find(g)
	switch {
	case err == nil:
		return compareAgainstParallel(res.Cycle, res.Gamma, parallelCandidate, log)
	case errors.Is(err, mmc.ErrAcyclic):
		if parallelCandidate == nil {
			return nil, gamma.Gamma{}, nil
		}
		return parallelCycleEdges(*parallelCandidate), mustParallelGamma(*parallelCandidate), nil
	default:
		return nil, gamma.Gamma{}, err
	}
}

func compareAgainstParallel(cyc []core.Edge, gm gamma.Gamma, parallelCandidate *dimacs.ParallelCandidate, log *zap.Logger) ([]core.Edge, gamma.Gamma, error) {
	if parallelCandidate == nil {
		return cyc, gm, nil
	}
	parallelGamma := mustParallelGamma(*parallelCandidate)
	if parallelGamma.Less(gm) {
		log.Info("parallel-edge 2-cycle beats the engine's result", zap.Float64("parallel_mean", parallelGamma.Float64()))
		return parallelCycleEdges(*parallelCandidate), parallelGamma, nil
	}

	return cyc, gm, nil
}

func parallelCycleEdges(p dimacs.ParallelCandidate) []core.Edge {
	return []core.Edge{
		{Lo: p.U, Hi: p.V, Weight: p.WeightA},
		{Lo: p.U, Hi: p.V, Weight: p.WeightB},
	}
}

func mustParallelGamma(p dimacs.ParallelCandidate) gamma.Gamma {
	costSum, numEdges := p.Mean()
	gm, _ := gamma.New(costSum, numEdges) // numEdges is always 2; never zero
	return gm
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return cfg.Build()
}

// exitCodeFor maps an error to one of SPEC_FULL.md §7's error kinds.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, dimacs.ErrUnsupportedParallelEdge):
		return exitUnsupported
	case errors.Is(err, dimacs.ErrMalformedHeader),
		errors.Is(err, dimacs.ErrMalformedEdgeLine),
		errors.Is(err, dimacs.ErrNodeIDOutOfRange),
		errors.Is(err, dimacs.ErrSelfLoopEdge):
		return exitInputFormat
	case errors.Is(err, tjoin.ErrMatchingInfeasible):
		return exitMatchingInfeasible
	case errors.Is(err, mmc.ErrGammaNotMonotone),
		errors.Is(err, mmc.ErrEmptyJoinHasNoCycle):
		return exitInternal
	case os.IsNotExist(err):
		return exitInputFormat
	default:
		return exitInternal
	}
}
