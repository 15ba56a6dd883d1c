// Package builder provides validation helpers to enforce parameter
// contracts in constructors.
//
// Each function returns a sentinel wrapped via builderErrorf when its
// precondition is violated.
package builder

// Probability bounds for density parameters.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures got ≥ min (ErrTooFewElements otherwise).
//
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewElements, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]
// (ErrInvalidProbability otherwise; NaN is rejected).
//
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
