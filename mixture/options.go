package mixture

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/betamix/betabinom"
)

// ConvergenceMode selects the stopping rule of the EM iteration.
type ConvergenceMode int

const (
	// AssignmentStable stops when an Expectation step re-assigns no
	// observation, i.e. the new assignment is identical to the previous one
	// for every observation. This is the default.
	AssignmentStable ConvergenceMode = iota

	// LikelihoodDelta stops when the total log-likelihood improvement
	// between consecutive iterations falls below
	// Options.LikelihoodDelta.
	LikelihoodDelta
)

// String implements fmt.Stringer.
func (m ConvergenceMode) String() string {
	switch m {
	case AssignmentStable:
		return "assignment-stable"
	case LikelihoodDelta:
		return "likelihood-delta"
	default:
		return "unknown"
	}
}

// EmptyPolicy selects how a starved component (fewer observations than
// MinComponentSize at a Maximization step) is handled.
type EmptyPolicy int

const (
	// FailOnEmpty aborts the run with ErrEmptyComponent. Default.
	FailOnEmpty EmptyPolicy = iota

	// ReseedFromLargest recovers by moving the upper-index half of the
	// largest partition to the starved label, a deterministic rule, so
	// seeded runs stay reproducible.
	ReseedFromLargest
)

// Options configures the EM fitter.
//
// Components       – number of mixture components K. K >= 1; K == 1
//
//	degenerates to a single solver fit over all observations.
//
// MaxIterations    – hard cap on EM iterations. Must be > 0.
// ConvergenceMode  – AssignmentStable (default) or LikelihoodDelta.
// LikelihoodDelta  – improvement threshold for LikelihoodDelta mode.
//
//	Must be > 0 when that mode is selected.
//
// Seed             – seed for the initial random assignment. Seed == 0
//
//	maps to a fixed default seed, so the zero value is
//	still fully reproducible.
//
// MinComponentSize – minimum observations a component may retain before
//
//	being flagged starved. Values below 1 are treated as 1.
//
// UseUniformPriors – if true (default), every fitted Component carries
//
//	Weight = 1/K; if false, weights are the per-component
//	observation fractions at the producing M-step. Weights
//	never enter the Expectation comparison either way.
//
// EmptyPolicy      – FailOnEmpty (default) or ReseedFromLargest.
// TimeLimit        – optional wall-clock budget, checked between
//
//	iterations only (never mid-step). Zero means no limit.
//
// Workers          – parallelism of the Expectation step. Values below 1
//
//	mean GOMAXPROCS. Output is identical for any value.
//
// Solver           – per-component MLE budget, passed to betabinom.Fit.
// Logger           – optional progress logger; nil means silent.
type Options struct {
	Components       int
	MaxIterations    int
	ConvergenceMode  ConvergenceMode
	LikelihoodDelta  float64
	Seed             int64
	MinComponentSize int
	UseUniformPriors bool
	EmptyPolicy      EmptyPolicy
	TimeLimit        time.Duration
	Workers          int
	Solver           betabinom.FitOptions
	Logger           *slog.Logger
}

// DefaultOptions returns an Options value with sensible defaults for k
// components: 100 iterations, assignment-stable convergence, uniform
// priors, fail-fast empty handling, and the default solver budgets.
func DefaultOptions(k int) Options {
	return Options{
		Components:       k,
		MaxIterations:    100,
		ConvergenceMode:  AssignmentStable,
		LikelihoodDelta:  1e-6,
		Seed:             0,
		MinComponentSize: 1,
		UseUniformPriors: true,
		EmptyPolicy:      FailOnEmpty,
		TimeLimit:        0,
		Workers:          0,
		Solver:           betabinom.DefaultFitOptions(),
		Logger:           nil,
	}
}
