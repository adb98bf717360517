package mixture

import (
	"errors"
	"math"

	"github.com/katalvlaran/betamix/betabinom"
)

// Sentinel errors returned by the EM fitter.
var (
	// ErrNoObservations indicates an empty observation collection.
	ErrNoObservations = errors.New("mixture: observation collection is empty")

	// ErrTooFewComponents indicates a component count below 1. K == 1 is
	// a supported degenerate case that reduces to a single solver fit.
	ErrTooFewComponents = errors.New("mixture: component count must be at least 1")

	// ErrBadOptions indicates an Options value that fails validation
	// (non-positive iteration budget, negative time limit, more
	// components than observations, and similar).
	ErrBadOptions = errors.New("mixture: invalid options")

	// ErrEmptyComponent indicates that a component holds fewer
	// observations than the configured minimum at a Maximization step.
	// Fatal unless EmptyPolicy is ReseedFromLargest; the wrapping error
	// names the starved label.
	ErrEmptyComponent = errors.New("mixture: component lost its observations")

	// ErrSolverFailed indicates that a per-component MLE fit failed.
	// The wrapping error names the component label and preserves the
	// underlying betabinom sentinel for errors.Is.
	ErrSolverFailed = errors.New("mixture: component solver failed")
)

// Component is one mixture component: a label, fitted beta-binomial
// shapes, and a mixing weight. A fresh Component set is produced by
// every Maximization step; components are never mutated in place.
type Component struct {
	// Label identifies the component; labels are 0..K-1 and double as
	// the tie-breaking order in the Expectation step.
	Label int

	// Params holds the fitted (α, β) shape pair, both strictly positive.
	Params betabinom.Params

	// Weight is the mixing prior: 1/K under uniform priors, otherwise
	// the fraction of observations assigned at the producing M-step.
	Weight float64
}

// Assignment maps each observation index to exactly one component
// label. It is produced by the seeded initializer and by every
// Expectation step; each production is a fresh slice.
type Assignment []int

// Equal reports whether a and b assign every observation identically.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// ModelState is one immutable snapshot of the iteration: the components
// fitted at that step and the assignment they produced. The iteration-0
// snapshot carries the seeded random assignment with a nil Components
// slice and NaN log-likelihood: no parameters exist before the first
// Maximization step.
type ModelState struct {
	Iteration     int
	Components    []Component
	Assignment    Assignment
	LogLikelihood float64
}

// Status is the EM state machine's terminal (or current) state.
type Status int

const (
	// StatusInitialized: the seeded initial assignment exists but no
	// iteration has run yet.
	StatusInitialized Status = iota

	// StatusIterating: at least one step has run and no stopping
	// condition has been met.
	StatusIterating

	// StatusConverged: the stopping rule of the configured convergence
	// mode was satisfied.
	StatusConverged

	// StatusMaxIterationsReached: the iteration or wall-clock budget
	// expired first; the last fully-computed state is returned and must
	// not be treated as converged.
	StatusMaxIterationsReached

	// StatusFailed: a fatal error (empty component, solver failure)
	// aborted the run.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "Initialized"
	case StatusIterating:
		return "Iterating"
	case StatusConverged:
		return "Converged"
	case StatusMaxIterationsReached:
		return "MaxIterationsReached"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a Fit run: the terminal status plus the full
// ordered ModelState history, including the iteration-0 snapshot.
type Result struct {
	Status Status
	States []ModelState
}

// Final returns the last fully-computed ModelState, or a zero state if
// the run failed before producing one.
func (r Result) Final() ModelState {
	if len(r.States) == 0 {
		return ModelState{LogLikelihood: math.NaN()}
	}

	return r.States[len(r.States)-1]
}

// Converged reports whether the run satisfied its convergence rule.
// MaxIterationsReached results answer false: callers must not present
// them with the same confidence as converged fits.
func (r Result) Converged() bool {
	return r.Status == StatusConverged
}

// Iterations returns the number of EM iterations performed (the
// iteration-0 snapshot does not count).
func (r Result) Iterations() int {
	if len(r.States) == 0 {
		return 0
	}

	return r.States[len(r.States)-1].Iteration
}
