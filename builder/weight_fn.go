// Package builder provides weight distributions for generated candidate sets.
package builder

import (
	"fmt"
	"math/rand"
)

// Default integer weight range, matching the interactive demo.
const (
	MinDefaultWeight = 1
	MaxDefaultWeight = 10
)

// WeightFn produces a set weight from an optional *rand.Rand.
// It must be deterministic for a given RNG state and return a finite value ≥ 0.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn returns an integer weight uniform in [1,10].
// With a nil rng it returns 1.
func DefaultWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return MinDefaultWeight
	}

	return float64(MinDefaultWeight + rng.Intn(MaxDefaultWeight-MinDefaultWeight+1))
}

// UnitWeightFn always returns 1 (unweighted set cover).
func UnitWeightFn(_ *rand.Rand) float64 {
	return 1
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Panics unless 0 ≤ min ≤ max.
// With a nil rng it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
