// Package posterior computes per-observation membership probabilities
// and shrinkage-adjusted rate estimates from any fitted component set.
//
// Given components with shapes (α_k, β_k) and mixing weights w_k, the
// posterior probability of component k for an observation with s
// successes out of n trials is
//
//	p_k ∝ w_k · P(s | n, α_k, β_k)
//
// normalized so the vector sums to 1. The shrunk rate estimate is the
// exact expectation of the mixture-of-beta posteriors, by linearity:
//
//	shrunk = Σ_k p_k · (α_k + s) / (α_k + β_k + n)
//
// No further integration is required. The computation runs in the log
// domain with max-shift normalization, so it stays stable for large
// trial counts and widely separated components.
//
// The module is independent of the EM iterator's history: it accepts
// any component set (typically the final converged one) and any
// observation collection, including records excluded from fitting,
// such as very low or zero trial counts. For n == 0 the likelihood term
// is 1 for every component, so the posteriors reduce to the mixing
// weights and the shrunk estimate to the weight-averaged prior mean
// Σ_k w_k·α_k/(α_k+β_k).
//
// Weights: if every component carries a non-positive weight (a set
// assembled by hand rather than by the fitter), the weights are treated
// as uniform 1/K. Otherwise they are normalized to sum to 1.
//
// Errors (sentinel):
//
//	– ErrNoComponents  if the component set is empty.
//	– ErrBadComponent  if a component carries non-positive shapes or a
//	  negative weight.
//	– betabinom.ErrBadObservation for records violating count invariants.
//
// Example usage:
//
//	post, err := posterior.Evaluate(res.Final().Components, obs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range post {
//	    fmt.Printf("%s p=%v shrunk=%.4f\n", r.ID, r.Probabilities, r.Shrunk)
//	}
package posterior
