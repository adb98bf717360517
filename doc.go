// Package betamix fits finite mixtures of beta-binomial distributions to
// binomial count data: clustering heterogeneous success rates without
// labels and smoothing noisy per-item estimates with empirical-Bayes
// shrinkage.
//
// 🚀 What is betamix?
//
//	An in-memory, deterministic EM engine that brings together:
//		• Beta-binomial MLE: log-gamma likelihoods + Nelder–Mead fitting
//		• Seeded initialization: identical seed ⇒ identical run, always
//		• Hard-assignment EM: explicit state machine with convergence policy
//		• Posterior & shrinkage: mixture-weighted Bayesian rate estimates
//
// ✨ Why choose betamix?
//
//   - Deterministic – seeded RNG threaded explicitly, no global state
//   - Strict sentinels – every failure mode is a named, testable error
//   - Parallel where it pays – per-component fits and the E-step fan out,
//     hard assignments stay bit-for-bit identical regardless of worker count
//   - Full diagnostics – every iteration's snapshot is retained, never
//     discarded mid-run
//
// Everything is organized under three subpackages:
//
//	betabinom/ — Observation & Params types, log-PMF, the MLE solver
//	mixture/   — seeded initializer, EM iterator, convergence state machine
//	posterior/ — per-observation membership probabilities + shrunk rates
//
// Quick sketch:
//
//	obs := []betabinom.Observation{ /* (successes, trials, id) records */ }
//	res, err := mixture.Fit(obs, mixture.DefaultOptions(2))
//	post, err := posterior.Evaluate(res.Final().Components, obs)
//
// Dive into the package docs and examples/ for full scenarios.
package betamix
