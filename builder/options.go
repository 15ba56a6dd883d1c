// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// the instance is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-set weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithLabelScheme names universe elements (Instance.Elements). Panics on nil.
// Without it, generated instances are unlabeled.
func WithLabelScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithSetNameScheme names candidate sets. Panics on nil.
func WithSetNameScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSetNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.setNameFn = fn
	}
}

// WithCoverable makes Random patch every element no set received into a
// randomly chosen set, so the result is always coverable.
func WithCoverable() BuilderOption {
	return func(c *builderConfig) {
		c.coverable = true
	}
}

// WithName sets Instance.Name.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}
