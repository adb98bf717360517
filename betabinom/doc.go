// Package betabinom implements the beta-binomial distribution and a
// maximum-likelihood solver for its shape parameters.
//
// The beta-binomial is the compound distribution of a binomial count
// whose success probability is itself Beta(α, β) distributed; it
// captures overdispersion that a plain binomial cannot. This package
// provides:
//
//   - Observation — an immutable (successes, trials, id) count record.
//   - Params      — the (α, β) shape pair, α > 0 and β > 0.
//   - LogPMF / LogLikelihood — log-domain probabilities computed via
//     log-gamma functions, numerically stable for large trial counts.
//   - Fit — MLE of (α, β) for a non-empty observation collection.
//
// Fitting strategy:
//
//  1. Derive a starting point by method-of-moments from the sample mean
//     and variance of the observed rates, so convergence is reliable
//     across widely different data distributions.
//  2. Minimize the negative log-likelihood with Nelder–Mead
//     (gonum.org/v1/gonum/optimize) over the transformed coordinates
//     α = MinShape + exp(u), β = MinShape + exp(v). The transform keeps
//     both shapes strictly above a small positive floor, so the
//     optimizer never visits degenerate parameters and log(0) cannot
//     occur.
//
// Complexity:
//
//	– LogPMF:        O(1) (six log-gamma evaluations).
//	– LogLikelihood: O(n) over the observation count.
//	– Fit:           O(evals·n); evals bounded by FitOptions budgets.
//
// Errors (sentinel):
//
//	– ErrNoObservations if the input collection is empty.
//	– ErrBadObservation if a record violates count invariants
//	  (negative counts, successes > trials, zero trials for fitting).
//	– ErrBadParams      if a shape parameter is not strictly positive.
//	– ErrNotConverged   if the optimizer exhausts its budget.
//
// Example usage:
//
//	obs := []betabinom.Observation{
//	    {ID: "a", Successes: 3, Trials: 100},
//	    {ID: "b", Successes: 7, Trials: 120},
//	}
//	p, err := betabinom.Fit(obs, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("alpha=%.3f beta=%.3f mean=%.4f\n", p.Alpha, p.Beta, p.Mean())
package betabinom
