package betabinom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// shapeCeiling caps the region the optimizer may visit. Shapes beyond
// it describe a prior indistinguishable from a point mass and push the
// log-gamma terms toward cancellation, so the objective returns +Inf
// there and the simplex folds back.
const shapeCeiling = 1e8

// paramsFromVec maps the unconstrained optimizer coordinates (u, v)
// back to shape space: α = minShape + exp(u), β = minShape + exp(v).
func paramsFromVec(x []float64, minShape float64) Params {
	return Params{
		Alpha: minShape + math.Exp(x[0]),
		Beta:  minShape + math.Exp(x[1]),
	}
}

// Fit returns the maximum-likelihood (α, β) for the observation
// collection, maximizing Σ_i log P(successes_i | trials_i, α, β).
//
// The starting point comes from method-of-moments on the observed
// rates; the negative log-likelihood is then minimized with Nelder–Mead
// over log-transformed coordinates, which keeps both shapes strictly
// above opts.MinShape without constraining the optimizer itself.
//
// opts may be nil, in which case DefaultFitOptions is used.
//
// Errors:
//
//	– ErrNoObservations if obs is empty.
//	– ErrBadObservation if a record has negative counts,
//	  successes > trials, or zero trials (no information to fit on).
//	– ErrBadFitOptions  if opts carries a non-positive MinShape/budget.
//	– ErrNotConverged   if the optimizer exhausts its budget.
//
// Complexity: O(evals·n), evals bounded by the FitOptions budgets.
func Fit(obs []Observation, opts *FitOptions) (Params, error) {
	o := DefaultFitOptions()
	if opts != nil {
		o = *opts
	}

	if err := validateFit(obs, o); err != nil {
		return Params{}, err
	}

	start := momentsStart(obs, o.MinShape)
	x0 := []float64{
		math.Log(math.Max(start.Alpha-o.MinShape, o.MinShape)),
		math.Log(math.Max(start.Beta-o.MinShape, o.MinShape)),
	}

	nll := func(x []float64) float64 {
		p := paramsFromVec(x, o.MinShape)
		if p.Alpha > shapeCeiling || p.Beta > shapeCeiling {
			return math.Inf(1)
		}
		ll := LogLikelihood(obs, p)
		if math.IsNaN(ll) {
			return math.Inf(1)
		}

		return -ll
	}

	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 50,
		},
	}

	res, err := optimize.Minimize(optimize.Problem{Func: nll}, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}

	switch res.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit,
		optimize.RuntimeLimit, optimize.Failure, optimize.NotTerminated:
		return Params{}, fmt.Errorf("%w: status %v after %d evaluations",
			ErrNotConverged, res.Status, res.FuncEvaluations)
	}

	return paramsFromVec(res.X, o.MinShape), nil
}

// validateFit checks options first, then every record; a record must
// satisfy the count invariants and carry at least one trial.
func validateFit(obs []Observation, o FitOptions) error {
	if !(o.MinShape > 0) || o.MaxIterations <= 0 || o.MaxEvaluations <= 0 {
		return ErrBadFitOptions
	}
	if len(obs) == 0 {
		return ErrNoObservations
	}
	for _, ob := range obs {
		if err := ob.Validate(); err != nil {
			return err
		}
		if ob.Trials == 0 {
			return fmt.Errorf("%w: %q has zero trials", ErrBadObservation, ob.ID)
		}
	}

	return nil
}
