package mixture

// Private hooks re-exported for white-box tests only.
var (
	EStep           = estep
	EnsureOccupancy = ensureOccupancy
	MovedCount      = movedCount
)
