package betabinom

import "math"

// nan is the shared quiet-NaN used for undefined derived quantities.
var nan = math.NaN()

// isInf reports whether x is infinite in either direction.
func isInf(x float64) bool {
	return math.IsInf(x, 0)
}

// lgamma returns the log of the gamma function for a positive argument,
// discarding the sign (always +1 on the positive axis).
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}

// lbeta returns log B(a, b) = lnΓ(a) + lnΓ(b) − lnΓ(a+b).
func lbeta(a, b float64) float64 {
	return lgamma(a) + lgamma(b) - lgamma(a+b)
}

// lchoose returns log C(n, k) via log-gamma, stable for large n.
func lchoose(n, k float64) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

// LogPMF returns log P(successes | trials, p) under the beta-binomial
// probability mass function:
//
//	log C(n,k) + log B(k+α, n−k+β) − log B(α, β)
//
// Computed entirely with log-gamma functions so it stays finite and
// accurate for large trial counts. For trials == 0 the only outcome is
// successes == 0 with probability 1, so the result is 0.
//
// Contract: 0 <= successes <= trials and p.Validate() == nil; the
// function does not re-validate on the hot path.
//
// Complexity: O(1).
func LogPMF(successes, trials int, p Params) float64 {
	var (
		k = float64(successes)
		n = float64(trials)
	)

	return lchoose(n, k) + lbeta(k+p.Alpha, n-k+p.Beta) - lbeta(p.Alpha, p.Beta)
}

// LogLikelihood returns Σ_i LogPMF(obs_i | p) over the collection.
// Same contract as LogPMF for every record.
//
// Complexity: O(n) over the observation count.
func LogLikelihood(obs []Observation, p Params) float64 {
	var ll float64
	for _, o := range obs {
		ll += LogPMF(o.Successes, o.Trials, p)
	}

	return ll
}
