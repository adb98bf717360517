package betabinom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors returned by the beta-binomial solver.
var (
	// ErrNoObservations indicates that an empty observation collection
	// was passed where at least one record is required.
	ErrNoObservations = errors.New("betabinom: observation collection is empty")

	// ErrBadObservation indicates that a record violates the count
	// invariants (negative counts, successes > trials, or zero trials
	// where the record must carry information). The wrapping error
	// names the offending observation.
	ErrBadObservation = errors.New("betabinom: invalid observation")

	// ErrBadParams indicates a shape parameter that is not strictly
	// positive.
	ErrBadParams = errors.New("betabinom: shape parameters must be positive")

	// ErrNotConverged indicates that the likelihood optimizer exhausted
	// its iteration/evaluation budget without converging.
	ErrNotConverged = errors.New("betabinom: optimizer did not converge")

	// ErrBadFitOptions indicates a FitOptions value with a non-positive
	// MinShape or budget.
	ErrBadFitOptions = errors.New("betabinom: invalid fit options")
)

// Observation is one immutable binomial count record: Successes out of
// Trials, tagged with a caller-supplied identifier. The success rate is
// never stored; use Rate to compute it on demand.
type Observation struct {
	ID        string // caller-supplied identifier, opaque to the solver
	Successes int    // number of successes, >= 0
	Trials    int    // number of trials, >= Successes
}

// Rate returns Successes/Trials. It is undefined (NaN) when Trials == 0.
func (o Observation) Rate() float64 {
	if o.Trials == 0 {
		return nan
	}

	return float64(o.Successes) / float64(o.Trials)
}

// Validate checks the count invariants: Successes >= 0, Trials >= 0 and
// Successes <= Trials. Trials == 0 is permitted here (it is legal input
// for posterior evaluation) but rejected separately by Fit, which
// requires every record to carry information.
func (o Observation) Validate() error {
	if o.Successes < 0 || o.Trials < 0 {
		return fmt.Errorf("%w: %q has negative counts (successes=%d, trials=%d)",
			ErrBadObservation, o.ID, o.Successes, o.Trials)
	}
	if o.Successes > o.Trials {
		return fmt.Errorf("%w: %q has successes=%d > trials=%d",
			ErrBadObservation, o.ID, o.Successes, o.Trials)
	}

	return nil
}

// Params holds the beta-binomial shape pair. Both fields must be
// strictly positive for every operation in this package.
type Params struct {
	Alpha float64
	Beta  float64
}

// Validate reports ErrBadParams unless both shapes are finite and
// strictly positive.
func (p Params) Validate() error {
	if !(p.Alpha > 0) || !(p.Beta > 0) || isInf(p.Alpha) || isInf(p.Beta) {
		return fmt.Errorf("%w: alpha=%v beta=%v", ErrBadParams, p.Alpha, p.Beta)
	}

	return nil
}

// Mean returns the prior mean α/(α+β) of the underlying Beta law.
func (p Params) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

// Dist returns the underlying Beta distribution, ready for sampling or
// quantile queries against the fitted prior.
func (p Params) Dist() distuv.Beta {
	return distuv.Beta{Alpha: p.Alpha, Beta: p.Beta}
}

// FitOptions configures the MLE solver.
//
// MinShape       – lower bound kept on both shapes; guards against
//                  degenerate/zero solutions and log(0). Must be > 0.
// MaxIterations  – Nelder–Mead major-iteration budget. Must be > 0.
// MaxEvaluations – objective-evaluation budget. Must be > 0.
type FitOptions struct {
	MinShape       float64
	MaxIterations  int
	MaxEvaluations int
}

// DefaultFitOptions returns the solver defaults: MinShape 1e-3, 500
// major iterations, 2000 function evaluations. Generous for a
// two-dimensional simplex; the budgets exist so a pathological surface
// fails loudly with ErrNotConverged instead of spinning.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		MinShape:       1e-3,
		MaxIterations:  500,
		MaxEvaluations: 2000,
	}
}
