// SPDX-License-Identifier: MIT

// Package setcover - validation and the coverability predicate.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending position via %w.
//   - O(n + Σ|set|) time.
package setcover

import (
	"fmt"
	"math"
)

// validateInputs checks the construction contract in a fixed order:
//  1. universeSize ≥ 0                         (ErrNegativeUniverse)
//  2. len(sets) == len(weights)                (ErrDimensionMismatch)
//  3. every weight finite and ≥ 0              (ErrNonFiniteWeight)
//  4. every element index in [0, universeSize) (ErrIndexOutOfRange)
//
// Complexity: O(m + Σ|set|).
func validateInputs(universeSize int, sets [][]int, weights []float64) error {
	if universeSize < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeUniverse, universeSize)
	}
	if len(sets) != len(weights) {
		return fmt.Errorf("%w: %d sets, %d weights", ErrDimensionMismatch, len(sets), len(weights))
	}

	var (
		i int
		w float64
	)
	for i, w = range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weights[%d]=%v", ErrNonFiniteWeight, i, w)
		}
	}

	var (
		set []int
		j   int
		e   int
	)
	for i, set = range sets {
		for j, e = range set {
			if e < 0 || e >= universeSize {
				return fmt.Errorf("%w: sets[%d][%d]=%d, universe size %d", ErrIndexOutOfRange, i, j, e, universeSize)
			}
		}
	}

	return nil
}

// IsCoverable reports whether the union of sets contains every index in
// [0, universeSize). An empty universe is vacuously coverable; a negative
// one is not. Indices outside the universe are ignored.
//
// Complexity: O(n/64 + Σ|set|).
func IsCoverable(universeSize int, sets [][]int) bool {
	if universeSize < 0 {
		return false
	}
	if universeSize == 0 {
		return true
	}

	covered := newMask(universeSize)
	var (
		set []int
		e   int
	)
	for _, set = range sets {
		for _, e = range set {
			if e < 0 || e >= universeSize {
				continue
			}
			markCovered(covered, e)
		}
	}

	return maskCount(covered) == universeSize
}
