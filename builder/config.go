// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil                  (Random requires WithSeed/WithRand)
//   • weightFn   = DefaultWeightFn      (integers 1..10, 1 without rng)
//   • labelFn    = nil                  (unlabeled universe)
//   • setNameFn  = SymbolNumberIDFn("S") ("S0","S1",...)
//   • coverable  = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	labelFn   IDFn
	setNameFn IDFn
	coverable bool
	name      string
}

// defaultSetPrefix prefixes generated set names.
const defaultSetPrefix = "S"

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:  DefaultWeightFn,
		setNameFn: SymbolNumberIDFn(defaultSetPrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
