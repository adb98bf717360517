package posterior

import "errors"

// Sentinel errors returned by posterior evaluation.
var (
	// ErrNoComponents indicates an empty component set.
	ErrNoComponents = errors.New("posterior: component set is empty")

	// ErrBadComponent indicates a component with non-positive shape
	// parameters or a negative mixing weight; the wrapping error names
	// the offending label.
	ErrBadComponent = errors.New("posterior: invalid component")
)

// Result holds the derived read-only output for one observation: the
// posterior membership probability per component (indexed by the
// component's position in the set passed to Evaluate, summing to 1)
// and the mixture-weighted shrunk rate estimate.
type Result struct {
	ID            string
	Probabilities []float64
	Shrunk        float64
}
