package posterior

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/betamix/betabinom"
	"github.com/katalvlaran/betamix/mixture"
)

// Evaluate computes, for every observation, the posterior membership
// probability vector over the component set and the shrunk rate
// estimate. See the package documentation for the exact formulas and
// the zero-trials edge case.
//
// The components are typically the final set of a converged mixture
// fit, but any set with positive shapes is accepted; the observation
// collection may include records that were excluded from fitting.
//
// Errors: ErrNoComponents, ErrBadComponent (label named), and
// betabinom.ErrBadObservation (record named).
//
// Complexity: O(n·K) time, O(n·K) space for the probability vectors.
func Evaluate(comps []mixture.Component, obs []betabinom.Observation) ([]Result, error) {
	weights, err := mixingWeights(comps)
	if err != nil {
		return nil, err
	}
	for _, o := range obs {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	// Log-weights once; -Inf for zero-weight components is fine, the
	// exponentiation below maps them back to probability zero.
	logw := make([]float64, len(comps))
	for j, w := range weights {
		logw[j] = math.Log(w)
	}

	results := make([]Result, len(obs))
	for i, o := range obs {
		lp := make([]float64, len(comps))
		for j, c := range comps {
			lp[j] = logw[j] + betabinom.LogPMF(o.Successes, o.Trials, c.Params)
		}

		// Max-shift then exponentiate: stable regardless of how deep in
		// the tails the observation sits for every component.
		floats.AddConst(-floats.Max(lp), lp)
		for j := range lp {
			lp[j] = math.Exp(lp[j])
		}
		floats.Scale(1/floats.Sum(lp), lp)

		var shrunk float64
		for j, c := range comps {
			shrunk += lp[j] * (c.Params.Alpha + float64(o.Successes)) /
				(c.Params.Alpha + c.Params.Beta + float64(o.Trials))
		}

		results[i] = Result{ID: o.ID, Probabilities: lp, Shrunk: shrunk}
	}

	return results, nil
}

// mixingWeights validates the component set and returns its normalized
// mixing weights. A set whose weights are all non-positive is treated
// as uniform; a negative weight is invalid.
func mixingWeights(comps []mixture.Component) ([]float64, error) {
	if len(comps) == 0 {
		return nil, ErrNoComponents
	}

	var total float64
	for _, c := range comps {
		if err := c.Params.Validate(); err != nil {
			return nil, fmt.Errorf("%w: component %d: %w", ErrBadComponent, c.Label, err)
		}
		if c.Weight < 0 {
			return nil, fmt.Errorf("%w: component %d has negative weight %v",
				ErrBadComponent, c.Label, c.Weight)
		}
		total += c.Weight
	}

	weights := make([]float64, len(comps))
	if total <= 0 {
		u := 1 / float64(len(comps))
		for j := range weights {
			weights[j] = u
		}

		return weights, nil
	}

	for j, c := range comps {
		weights[j] = c.Weight / total
	}

	return weights, nil
}
