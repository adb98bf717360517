package betabinom

import "gonum.org/v1/gonum/stat"

// momentsFallbackConcentration is used when the sample variance carries
// no usable signal (degenerate, tiny, or larger than Bernoulli allows).
const momentsFallbackConcentration = 2.0

// rateEps keeps the moment-matched mean strictly inside (0, 1) so both
// derived shapes stay positive even when every observation is 0 or n.
const rateEps = 1e-6

// momentsStart derives a starting point for the likelihood optimizer by
// matching the first two moments of the observed rates to a Beta law:
//
//	c = m(1−m)/v − 1,  α₀ = m·c,  β₀ = (1−m)·c
//
// The concentration c falls back to a small constant whenever the
// variance estimate is unusable, which covers single-observation and
// all-identical inputs. Both shapes are floored at minShape.
//
// Contract: obs is non-empty and every record has Trials > 0.
//
// Complexity: O(n).
func momentsStart(obs []Observation, minShape float64) Params {
	rates := make([]float64, len(obs))
	for i, o := range obs {
		rates[i] = o.Rate()
	}

	m := stat.Mean(rates, nil)
	v := stat.Variance(rates, nil)

	if m < rateEps {
		m = rateEps
	}
	if m > 1-rateEps {
		m = 1 - rateEps
	}

	c := momentsFallbackConcentration
	if v > 1e-12 {
		if cc := m*(1-m)/v - 1; cc > 0 && !isInf(cc) {
			c = cc
		}
	}

	p := Params{Alpha: m * c, Beta: (1 - m) * c}
	if p.Alpha < minShape {
		p.Alpha = minShape
	}
	if p.Beta < minShape {
		p.Beta = minShape
	}

	return p
}
