// SPDX-License-Identifier: MIT

package setcover

import "math"

// Options configures a Solver.
//
// Threshold – upper bound on m·2ⁿ for the exact path (must be > 0).
// Algorithm – strategy used by Solve; FindMinSetCover always dispatches.
type Options struct {
	Threshold float64
	Algorithm Algorithm
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns Threshold=DefaultThreshold and Algorithm=Auto.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Algorithm: Auto,
	}
}

// WithThreshold overrides the exact/greedy cut-off.
// Panics on zero, negative or NaN thresholds; +Inf means "always exact
// when coverable and n ≤ MaxExactUniverse".
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t <= 0 {
		panic("setcover: WithThreshold requires a positive threshold")
	}
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithAlgorithm fixes the strategy used by Solve.
// Panics on values other than Auto, Exact and Greedy.
func WithAlgorithm(a Algorithm) Option {
	switch a {
	case Auto, Exact, Greedy:
	default:
		panic(ErrUnsupportedAlgorithm.Error())
	}
	return func(o *Options) {
		o.Algorithm = a
	}
}
