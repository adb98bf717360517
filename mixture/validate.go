// Package mixture - validation utilities for the EM fitter.
//
// Staged like the rest of the library: options-only sanity first, then
// the observation collection, then cross checks. Deterministic,
// side-effect free, sentinel errors only; offending records are named
// via %w wrapping so errors.Is still matches.
package mixture

import (
	"fmt"

	"github.com/katalvlaran/betamix/betabinom"
)

// validateAll verifies Options + the observation collection.
//
// Contract:
//   - opts must pass validateOptions.
//   - obs must be non-empty; every record must satisfy the count
//     invariants and carry at least one trial (zero-trial records are
//     posterior-only input, never fitting input).
//   - there must be at least as many observations as components.
//
// Complexity: O(n) time, O(1) space.
func validateAll(obs []betabinom.Observation, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	if len(obs) == 0 {
		return ErrNoObservations
	}
	for _, o := range obs {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.Trials == 0 {
			return fmt.Errorf("%w: %q has zero trials", betabinom.ErrBadObservation, o.ID)
		}
	}

	if len(obs) < opts.Components {
		return fmt.Errorf("%w: %d observations cannot populate %d components",
			ErrBadOptions, len(obs), opts.Components)
	}

	return nil
}

// validateOptions checks internal consistency of Options without
// touching the data.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Components < 1 {
		return ErrTooFewComponents
	}
	if opts.MaxIterations <= 0 {
		return fmt.Errorf("%w: MaxIterations must be positive", ErrBadOptions)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit must be non-negative", ErrBadOptions)
	}

	switch opts.ConvergenceMode {
	case AssignmentStable:
		// ok
	case LikelihoodDelta:
		if !(opts.LikelihoodDelta > 0) {
			return fmt.Errorf("%w: LikelihoodDelta must be positive in likelihood-delta mode", ErrBadOptions)
		}
	default:
		return fmt.Errorf("%w: unknown convergence mode %d", ErrBadOptions, opts.ConvergenceMode)
	}

	switch opts.EmptyPolicy {
	case FailOnEmpty, ReseedFromLargest:
		// ok
	default:
		return fmt.Errorf("%w: unknown empty-component policy %d", ErrBadOptions, opts.EmptyPolicy)
	}

	return nil
}
