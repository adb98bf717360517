package mixture

import (
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/betamix/betabinom"
)

// Fit runs hard-assignment EM over the observation collection and
// returns the terminal status plus the full ordered ModelState history.
//
// The caller supplies an already-filtered collection; the engine
// performs no filtering of its own. The iteration-0 snapshot holds the
// seeded random assignment; each subsequent snapshot holds the freshly
// fitted components and the assignment they produced.
//
// Stopping:
//   - AssignmentStable: the new assignment equals the previous one.
//   - LikelihoodDelta: log-likelihood improvement below the threshold.
//   - MaxIterations or TimeLimit expiry (checked between iterations,
//     never mid-step) yields StatusMaxIterationsReached with the last
//     fully-computed state.
//
// On a fatal error (invalid input, starved component, solver failure)
// Fit returns the states computed so far with StatusFailed and a
// non-nil error; partial component updates are never applied.
//
// Determinism: identical obs, Options.Components and Options.Seed
// produce an identical state sequence, independent of Options.Workers.
//
// Complexity per iteration: O(K·evals·n/K) for the Maximization step
// and O(n·K) for the Expectation step.
func Fit(obs []betabinom.Observation, opts Options) (Result, error) {
	if err := validateAll(obs, opts); err != nil {
		return Result{Status: StatusFailed}, err
	}

	var (
		k       = opts.Components
		minSize = opts.MinComponentSize
		workers = opts.Workers
	)
	if minSize < 1 {
		minSize = 1
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	init, err := InitialAssignment(len(obs), k, opts.Seed)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}

	states := make([]ModelState, 0, opts.MaxIterations+1)
	states = append(states, ModelState{
		Iteration:     0,
		Assignment:    init,
		LogLikelihood: math.NaN(),
	})

	if opts.Logger != nil {
		opts.Logger.Debug("em initialized",
			"status", StatusInitialized.String(),
			"observations", len(obs),
			"components", k,
			"seed", opts.Seed)
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	var (
		cur    = init
		prevLL = math.Inf(-1)
		status = StatusMaxIterationsReached
	)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		// Maximization: occupancy check, then one independent fit per label.
		cur, err = ensureOccupancy(cur, k, minSize, opts.EmptyPolicy)
		if err != nil {
			return Result{Status: StatusFailed, States: states}, err
		}

		comps, err := mstep(obs, cur, k, opts.Solver)
		if err != nil {
			return Result{Status: StatusFailed, States: states}, err
		}
		setWeights(comps, cur, opts.UseUniformPriors)

		// Expectation: winner-take-all re-assignment, lowest label on ties.
		next, ll := estep(obs, comps, workers)

		states = append(states, ModelState{
			Iteration:     iter,
			Components:    comps,
			Assignment:    next,
			LogLikelihood: ll,
		})

		if opts.Logger != nil {
			opts.Logger.Info("em iteration",
				"status", StatusIterating.String(),
				"iteration", iter,
				"loglik", ll,
				"moved", movedCount(cur, next))
		}

		converged := false
		switch opts.ConvergenceMode {
		case AssignmentStable:
			converged = next.Equal(cur)
		case LikelihoodDelta:
			converged = iter > 1 && math.Abs(ll-prevLL) < opts.LikelihoodDelta
		}

		cur = next
		prevLL = ll

		if converged {
			status = StatusConverged

			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			status = StatusMaxIterationsReached

			break
		}
	}

	if opts.Logger != nil {
		opts.Logger.Info("em finished",
			"status", status.String(),
			"iterations", states[len(states)-1].Iteration,
			"loglik", prevLL)
	}

	return Result{Status: status, States: states}, nil
}

// movedCount returns how many observations changed label between two
// assignments of equal length.
func movedCount(prev, next Assignment) int {
	moved := 0
	for i := range prev {
		if prev[i] != next[i] {
			moved++
		}
	}

	return moved
}
