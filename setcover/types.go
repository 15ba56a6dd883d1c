// SPDX-License-Identifier: MIT

package setcover

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the setcover package.
var (
	// ErrNegativeUniverse indicates a universe size below zero.
	ErrNegativeUniverse = errors.New("setcover: universe size must be non-negative")

	// ErrDimensionMismatch indicates len(sets) != len(weights).
	ErrDimensionMismatch = errors.New("setcover: sets and weights differ in length")

	// ErrIndexOutOfRange indicates an element index outside [0, universeSize).
	ErrIndexOutOfRange = errors.New("setcover: element index out of universe range")

	// ErrNonFiniteWeight indicates a weight that is negative, NaN or infinite.
	ErrNonFiniteWeight = errors.New("setcover: weight must be finite and non-negative")

	// ErrUniverseTooLarge is returned by the exact solver when the universe
	// does not fit its bitmask table (n > MaxExactUniverse).
	ErrUniverseTooLarge = errors.New("setcover: universe too large for exact solver")

	// ErrUncoverable is returned by the exact solver when the union of all
	// sets misses at least one element; use the greedy solver instead.
	ErrUncoverable = errors.New("setcover: universe cannot be fully covered")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("setcover: unsupported algorithm")
)

const (
	// DefaultThreshold bounds m·2ⁿ for the exact path. Above it the
	// dispatcher uses Greedy. Tuned for interactive latency, not profiled.
	DefaultThreshold = 1e7

	// MaxExactUniverse is the widest universe the exact solver accepts.
	// Masks are stored as int32 predecessors in the DP table.
	MaxExactUniverse = 30
)

// Algorithm selects the solving strategy.
type Algorithm int

const (
	// Auto lets the dispatcher choose by size and coverability.
	Auto Algorithm = iota

	// Exact forces the bitmask dynamic program.
	Exact

	// Greedy forces the cost-effectiveness heuristic.
	Greedy
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Exact:
		return "exact"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "auto", "exact" or "greedy" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "exact", "dp":
		return Exact, nil
	case "greedy":
		return Greedy, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Cover is the outcome of a solve.
type Cover struct {
	// Weight is the total weight of the selected sets.
	// +Inf when the exact solver found no full cover.
	Weight float64

	// Sets holds the selected candidate sets. Each entry is the caller's own
	// slice (same backing array), so identity can be checked against input.
	Sets [][]int

	// Indices holds the input positions of Sets, pairwise.
	Indices []int

	// Complete reports whether the selection covers the whole universe.
	Complete bool

	// Algorithm is the strategy that produced the cover (never Auto).
	Algorithm Algorithm
}

// Len returns the number of selected sets.
func (c Cover) Len() int { return len(c.Indices) }

// uncoveredCover is the exact solver's answer for a universe it cannot cover.
func uncoveredCover() Cover {
	return Cover{Weight: math.Inf(1), Algorithm: Exact}
}
