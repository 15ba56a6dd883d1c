// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with builderErrorf (method prefix + %w).
//   • Constructors never panic; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewElements indicates a size parameter below its minimum
// (negative universe or set count, zero partitions, ...).
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the requested shape cannot be built, e.g. a
// coverable instance with zero sets over a non-empty universe.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a detail message,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}

// Constructor names used in error context.
const (
	MethodRandom    = "Random"
	MethodPartition = "Partition"
)
