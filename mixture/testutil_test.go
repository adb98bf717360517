package mixture_test

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/betamix/betabinom"
)

// drawComponent samples m beta-binomial records with a fixed trial
// count from one generating component, with IDs prefixed so tests can
// recover the true membership afterwards.
func drawComponent(prefix string, m, trials int, p betabinom.Params, seed uint64) []betabinom.Observation {
	src := rand.NewSource(seed)
	beta := distuv.Beta{Alpha: p.Alpha, Beta: p.Beta, Src: src}

	obs := make([]betabinom.Observation, m)
	for i := range obs {
		bin := distuv.Binomial{N: float64(trials), P: beta.Rand(), Src: src}
		obs[i] = betabinom.Observation{
			ID:        fmt.Sprintf("%s-%04d", prefix, i),
			Successes: int(bin.Rand()),
			Trials:    trials,
		}
	}

	return obs
}

// twoGeneratorCorpus builds the well-separated two-component dataset
// used across the EM tests: 500 records each from Beta(2,40) and
// Beta(30,80) priors over 100 trials. The first half is the low-mean
// component.
func twoGeneratorCorpus() []betabinom.Observation {
	low := drawComponent("low", 500, 100, betabinom.Params{Alpha: 2, Beta: 40}, 101)
	high := drawComponent("high", 500, 100, betabinom.Params{Alpha: 30, Beta: 80}, 202)

	return append(low, high...)
}
