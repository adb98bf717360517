package mixture

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/betamix/betabinom"
)

// partition groups observation indices by their assigned label.
// Returned partitions preserve observation order within each label.
func partition(obs []betabinom.Observation, a Assignment, k int) [][]betabinom.Observation {
	parts := make([][]betabinom.Observation, k)
	for i, label := range a {
		parts[label] = append(parts[label], obs[i])
	}

	return parts
}

// componentSizes counts observations per label.
func componentSizes(a Assignment, k int) []int {
	sizes := make([]int, k)
	for _, label := range a {
		sizes[label]++
	}

	return sizes
}

// ensureOccupancy verifies that every label holds at least minSize
// observations before a Maximization step. Under FailOnEmpty a starved
// label is fatal; under ReseedFromLargest the assignment is repaired by
// a deterministic donation from the largest partition. The input
// assignment is never mutated; repairs operate on a clone.
func ensureOccupancy(a Assignment, k, minSize int, policy EmptyPolicy) (Assignment, error) {
	sizes := componentSizes(a, k)
	out := a

	for label := 0; label < k; label++ {
		if sizes[label] >= minSize {
			continue
		}
		if policy != ReseedFromLargest {
			return nil, fmt.Errorf("%w: component %d holds %d observation(s), minimum is %d",
				ErrEmptyComponent, label, sizes[label], minSize)
		}

		out = reseedFromLargest(out, sizes, label)
		if sizes[label] < minSize {
			// The donor could not spare enough; recovery failed.
			return nil, fmt.Errorf("%w: component %d holds %d observation(s) after reseeding, minimum is %d",
				ErrEmptyComponent, label, sizes[label], minSize)
		}
	}

	return out, nil
}

// reseedFromLargest moves the upper-index half of the largest partition
// to the starved label. Donor ties break to the lowest label; the walk
// over observation indices is descending. Both rules are fixed so
// seeded runs stay reproducible. sizes is updated in place.
func reseedFromLargest(a Assignment, sizes []int, starved int) Assignment {
	donor := 0
	for label := 1; label < len(sizes); label++ {
		if sizes[label] > sizes[donor] {
			donor = label
		}
	}

	out := a.Clone()
	want := sizes[donor] / 2
	moved := 0
	for i := len(out) - 1; i >= 0 && moved < want; i-- {
		if out[i] == donor {
			out[i] = starved
			moved++
		}
	}
	sizes[donor] -= moved
	sizes[starved] += moved

	return out
}

// mstep fits a fresh Component per label from the partitioned
// assignment. The per-label fits are mutually independent and run on
// their own goroutines; each writes only its own slot. Any failure
// discards the whole component set; stale or partial parameter
// updates are never applied.
func mstep(obs []betabinom.Observation, a Assignment, k int, solver betabinom.FitOptions) ([]Component, error) {
	parts := partition(obs, a, k)
	comps := make([]Component, k)
	errs := make([]error, k)

	var wg sync.WaitGroup
	for label := 0; label < k; label++ {
		wg.Add(1)
		go func(label int) {
			defer wg.Done()
			p, err := betabinom.Fit(parts[label], &solver)
			if err != nil {
				errs[label] = err

				return
			}
			comps[label] = Component{Label: label, Params: p}
		}(label)
	}
	wg.Wait()

	for label, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: component %d: %w", ErrSolverFailed, label, err)
		}
	}

	return comps, nil
}

// setWeights stamps mixing weights onto a freshly fitted component set:
// 1/K under uniform priors, otherwise the per-label observation
// fraction of the assignment the components were fitted from.
func setWeights(comps []Component, a Assignment, uniform bool) {
	k := len(comps)
	if uniform {
		w := 1 / float64(k)
		for i := range comps {
			comps[i].Weight = w
		}

		return
	}

	sizes := componentSizes(a, k)
	n := float64(len(a))
	for i := range comps {
		comps[i].Weight = float64(sizes[i]) / n
	}
}

// estep hard-assigns every observation to the component with the
// strictly highest log-likelihood; ties break to the lowest label via
// the ascending scan with strict >. The observations are split into
// contiguous chunks across workers; every goroutine writes only its
// own indices, so the assignment is bit-for-bit identical for any
// worker count. The returned log-likelihood is the sum of each
// observation's winning log-likelihood, accumulated in index order
// after the parallel map, so it is deterministic too.
func estep(obs []betabinom.Observation, comps []Component, workers int) (Assignment, float64) {
	n := len(obs)
	next := make(Assignment, n)
	winning := make([]float64, n)

	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				o := obs[i]
				best := 0
				bestLL := betabinom.LogPMF(o.Successes, o.Trials, comps[0].Params)
				for j := 1; j < len(comps); j++ {
					if ll := betabinom.LogPMF(o.Successes, o.Trials, comps[j].Params); ll > bestLL {
						best, bestLL = j, ll
					}
				}
				next[i] = comps[best].Label
				winning[i] = bestLL
			}
		}(lo, hi)
	}
	wg.Wait()

	var total float64
	for _, ll := range winning {
		total += ll
	}

	return next, total
}
