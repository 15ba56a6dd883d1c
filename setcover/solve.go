// SPDX-License-Identifier: MIT

// Package setcover - Solver snapshot and dispatcher.
//
// This file provides the canonical entry points:
//
//   - New: validate (universeSize, sets, weights) once, run the coverability
//     check once, and keep an immutable snapshot.
//   - FindMinSetCover: route to Exact or Greedy by coverability and m·2ⁿ.
//   - FindMinSetCoverExact / FindMinSetCoverGreedy: force a strategy.
//   - Solve: one-shot helper honoring WithAlgorithm.
//
// Design principles:
//   - Deterministic: identical inputs give identical Covers.
//   - No shared mutable state: every table is allocated per call.
//   - Strict sentinels from types.go, wrapped with context.
package setcover

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Solver is an immutable snapshot of one set cover instance.
// It is safe for concurrent use; each call allocates its own tables.
type Solver struct {
	universeSize int
	sets         [][]int
	weights      []float64
	coverable    bool
	opts         Options
}

// New validates the instance and returns a Solver over it.
//
// The solver keeps references to sets and weights without copying or
// mutating them; callers must not modify them while the Solver is in use.
// Coverability is computed here, once.
//
// Errors: ErrNegativeUniverse, ErrDimensionMismatch, ErrNonFiniteWeight,
// ErrIndexOutOfRange (wrapped with the offending position).
//
// Complexity: O(m + n/64 + Σ|set|).
func New(universeSize int, sets [][]int, weights []float64, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateInputs(universeSize, sets, weights); err != nil {
		return nil, err
	}

	return &Solver{
		universeSize: universeSize,
		sets:         sets,
		weights:      weights,
		coverable:    IsCoverable(universeSize, sets),
		opts:         cfg,
	}, nil
}

// UniverseSize returns n.
func (s *Solver) UniverseSize() int { return s.universeSize }

// SetCount returns m.
func (s *Solver) SetCount() int { return len(s.sets) }

// Threshold returns the exact/greedy cut-off in use.
func (s *Solver) Threshold() float64 { return s.opts.Threshold }

// Algorithm returns the strategy configured with WithAlgorithm.
func (s *Solver) Algorithm() Algorithm { return s.opts.Algorithm }

// IsUniverseCoverable reports whether the union of all sets covers [0, n).
// Computed once by New.
func (s *Solver) IsUniverseCoverable() bool { return s.coverable }

// Cost returns m·2ⁿ as a float64 (no overflow for any n).
func (s *Solver) Cost() float64 {
	if len(s.sets) == 0 {
		return 0
	}
	return float64(len(s.sets)) * math.Ldexp(1, s.universeSize)
}

// Choose returns the algorithm FindMinSetCover will use:
//   - Greedy if the universe is not coverable;
//   - Greedy if n > MaxExactUniverse or m·2ⁿ > Threshold;
//   - Exact otherwise.
func (s *Solver) Choose() Algorithm {
	if !s.coverable {
		return Greedy
	}
	if s.universeSize > MaxExactUniverse || s.Cost() > s.opts.Threshold {
		return Greedy
	}

	return Exact
}

// FindMinSetCover dispatches to the exact or greedy solver (see Choose).
func (s *Solver) FindMinSetCover() (Cover, error) {
	algo := s.Choose()
	log.WithFields(logrus.Fields{
		"universe":  s.universeSize,
		"sets":      len(s.sets),
		"coverable": s.coverable,
		"cost":      s.Cost(),
		"threshold": s.opts.Threshold,
		"algorithm": algo.String(),
	}).Debug("Dispatching set cover")

	if algo == Exact {
		return s.FindMinSetCoverExact()
	}

	return s.FindMinSetCoverGreedy(), nil
}

// FindMinSetCoverExact forces the bitmask dynamic program.
//
// The caller is responsible for bounding m·2ⁿ. Returns ErrUniverseTooLarge
// when n > MaxExactUniverse and ErrUncoverable (Weight=+Inf) when the universe
// cannot be fully covered.
func (s *Solver) FindMinSetCoverExact() (Cover, error) {
	start := time.Now()
	if !s.coverable {
		observe(Exact, start, Cover{}, ErrUncoverable)
		return uncoveredCover(), ErrUncoverable
	}

	c, err := exactCover(s.universeSize, s.sets, s.weights)
	observe(Exact, start, c, err)

	return c, err
}

// FindMinSetCoverGreedy forces the cost-effectiveness heuristic. It is the
// right call when IsUniverseCoverable is false: the result is then a maximal
// partial cover with Complete=false.
func (s *Solver) FindMinSetCoverGreedy() Cover {
	start := time.Now()
	c := greedyCover(s.universeSize, s.sets, s.weights)
	observe(Greedy, start, c, nil)

	return c
}

// Run solves with the given algorithm; Auto dispatches like FindMinSetCover.
func (s *Solver) Run(a Algorithm) (Cover, error) {
	switch a {
	case Auto:
		return s.FindMinSetCover()
	case Exact:
		return s.FindMinSetCoverExact()
	case Greedy:
		return s.FindMinSetCoverGreedy(), nil
	default:
		return Cover{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// Solve validates the instance and solves it with the algorithm selected by
// WithAlgorithm (Auto by default).
func Solve(universeSize int, sets [][]int, weights []float64, opts ...Option) (Cover, error) {
	s, err := New(universeSize, sets, weights, opts...)
	if err != nil {
		return Cover{}, err
	}

	return s.Run(s.opts.Algorithm)
}
