// Package mixture fits a finite mixture of beta-binomial components to
// a collection of binomial count observations with unknown membership,
// using hard-assignment Expectation-Maximization.
//
// The iteration alternates two steps until the assignment stabilizes:
//
//  1. Maximization — partition the current assignment by component
//     label and fit fresh (α, β) shapes per partition with the
//     betabinom solver. Per-component fits are mutually independent
//     and run in parallel.
//  2. Expectation — re-assign every observation to the component with
//     the strictly highest beta-binomial likelihood. Ties break to the
//     lowest component label; this is an explicit rule, not incidental
//     ordering. The per-observation decisions are independent, so the
//     step is a parallel map whose result is bit-for-bit identical for
//     any worker count.
//
// The run is an explicit state machine: Initialized → Iterating →
// {Converged | MaxIterationsReached | Failed}. Every iteration produces
// an immutable ModelState snapshot and the full ordered history is
// retained on the Result for diagnostics; nothing is discarded mid-run.
//
// A note on hard vs. soft EM: the iterative phase is winner-take-all on
// purpose; only the posterior package weights components softly. The
// two regimes have different convergence dynamics and are kept
// deliberately distinct. Likewise the Expectation comparison always
// uses bare likelihoods; Options.UseUniformPriors only governs the
// mixing weights recorded on the fitted components (and therefore what
// the posterior package sees).
//
// Determinism: identical observations, component count and seed yield
// an identical state sequence. Randomness enters only through the
// seeded initializer; there is no global random state.
//
// Errors (sentinel):
//
//	– ErrNoObservations   if the observation collection is empty.
//	– ErrTooFewComponents if Options.Components < 1.
//	– ErrBadOptions       for any other invalid configuration.
//	– ErrEmptyComponent   if a component falls below the minimum size
//	  and no recovery policy is configured.
//	– ErrSolverFailed     if a per-component MLE fit fails; the current
//	  iteration is aborted without applying a partial update.
//
// Example usage:
//
//	res, err := mixture.Fit(obs, mixture.DefaultOptions(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	final := res.Final()
//	fmt.Println(res.Status, final.Iteration, final.Components)
package mixture
