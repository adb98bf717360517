package betabinom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/betamix/betabinom"
)

// TestLogPMF_UniformPrior verifies the closed form for α=β=1: the
// beta-binomial collapses to the discrete uniform on 0..n, so
// log P(k|n,1,1) = −log(n+1) for every k.
func TestLogPMF_UniformPrior(t *testing.T) {
	p := betabinom.Params{Alpha: 1, Beta: 1}

	for _, n := range []int{1, 5, 10, 100} {
		want := -math.Log(float64(n + 1))
		for _, k := range []int{0, n / 2, n} {
			got := betabinom.LogPMF(k, n, p)
			assert.InDelta(t, want, got, 1e-12, "uniform prior must be flat at n=%d k=%d", n, k)
		}
	}
}

// TestLogPMF_Symmetry checks P(k|n,α,β) == P(n−k|n,β,α).
func TestLogPMF_Symmetry(t *testing.T) {
	p := betabinom.Params{Alpha: 2.5, Beta: 7.25}
	q := betabinom.Params{Alpha: 7.25, Beta: 2.5}

	for k := 0; k <= 20; k++ {
		assert.InDelta(t,
			betabinom.LogPMF(k, 20, p),
			betabinom.LogPMF(20-k, 20, q),
			1e-12, "mirror symmetry must hold at k=%d", k)
	}
}

// TestLogPMF_NormalizesToOne sums the PMF over all outcomes for a small
// trial count; the total probability must be 1.
func TestLogPMF_NormalizesToOne(t *testing.T) {
	p := betabinom.Params{Alpha: 2.5, Beta: 7.5}

	const n = 25
	var total float64
	for k := 0; k <= n; k++ {
		total += math.Exp(betabinom.LogPMF(k, n, p))
	}

	assert.InDelta(t, 1.0, total, 1e-9, "PMF must normalize to 1")
}

// TestLogPMF_ZeroTrials verifies that n=0 carries no information: the
// only outcome is k=0 with probability 1.
func TestLogPMF_ZeroTrials(t *testing.T) {
	p := betabinom.Params{Alpha: 3, Beta: 11}

	assert.InDelta(t, 0.0, betabinom.LogPMF(0, 0, p), 1e-15, "log P(0|0) must be 0")
}

// TestLogPMF_LargeTrialsStable confirms the log-gamma formulation stays
// finite where naive factorials would overflow long before.
func TestLogPMF_LargeTrialsStable(t *testing.T) {
	p := betabinom.Params{Alpha: 2, Beta: 40}

	ll := betabinom.LogPMF(5_000, 100_000, p)
	assert.False(t, math.IsNaN(ll), "large-n log-PMF must not be NaN")
	assert.False(t, math.IsInf(ll, 0), "large-n log-PMF must be finite")
	assert.Less(t, ll, 0.0, "a log-probability is negative")
}

// TestLogLikelihood_SumsPerObservation checks that the collection
// likelihood is the sum of the per-record log-PMFs.
func TestLogLikelihood_SumsPerObservation(t *testing.T) {
	p := betabinom.Params{Alpha: 2, Beta: 8}
	obs := []betabinom.Observation{
		{ID: "a", Successes: 3, Trials: 40},
		{ID: "b", Successes: 11, Trials: 60},
		{ID: "c", Successes: 0, Trials: 25},
	}

	var want float64
	for _, o := range obs {
		want += betabinom.LogPMF(o.Successes, o.Trials, p)
	}

	assert.InDelta(t, want, betabinom.LogLikelihood(obs, p), 1e-12)
}

// TestObservation_RateAndValidate covers the derived rate and the count
// invariants.
func TestObservation_RateAndValidate(t *testing.T) {
	ok := betabinom.Observation{ID: "x", Successes: 3, Trials: 12}
	assert.NoError(t, ok.Validate())
	assert.InDelta(t, 0.25, ok.Rate(), 1e-15)

	zero := betabinom.Observation{ID: "z", Successes: 0, Trials: 0}
	assert.NoError(t, zero.Validate(), "zero trials is legal input outside fitting")
	assert.True(t, math.IsNaN(zero.Rate()), "rate is undefined for zero trials")

	over := betabinom.Observation{ID: "o", Successes: 7, Trials: 3}
	assert.ErrorIs(t, over.Validate(), betabinom.ErrBadObservation)
	assert.ErrorContains(t, over.Validate(), `"o"`, "the offender must be named")

	neg := betabinom.Observation{ID: "n", Successes: -1, Trials: 5}
	assert.ErrorIs(t, neg.Validate(), betabinom.ErrBadObservation)
}

// TestParams_Validate covers the strict-positivity invariant.
func TestParams_Validate(t *testing.T) {
	assert.NoError(t, betabinom.Params{Alpha: 0.001, Beta: 40}.Validate())
	assert.ErrorIs(t, betabinom.Params{Alpha: 0, Beta: 1}.Validate(), betabinom.ErrBadParams)
	assert.ErrorIs(t, betabinom.Params{Alpha: 1, Beta: -2}.Validate(), betabinom.ErrBadParams)
	assert.ErrorIs(t, betabinom.Params{Alpha: math.Inf(1), Beta: 1}.Validate(), betabinom.ErrBadParams)
}

// TestParams_MeanAndDist checks the prior mean and the distuv bridge.
func TestParams_MeanAndDist(t *testing.T) {
	p := betabinom.Params{Alpha: 2, Beta: 8}

	assert.InDelta(t, 0.2, p.Mean(), 1e-15)

	d := p.Dist()
	assert.Equal(t, 2.0, d.Alpha)
	assert.Equal(t, 8.0, d.Beta)
	assert.InDelta(t, p.Mean(), d.Mean(), 1e-15, "distuv must agree on the mean")
}
