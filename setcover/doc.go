// SPDX-License-Identifier: MIT

// Package setcover solves weighted minimum set cover.
//
// Given a universe of elements [0, n) and a family of weighted candidate sets,
// it finds a minimum-weight selection of sets whose union covers the universe,
// or, if full coverage is impossible, a maximal partial cover.
//
// Algorithms:
//
//	Exact:  bitmask dynamic programming over all 2ⁿ coverage masks.
//	         Time O(m·2ⁿ), memory O(2ⁿ). Optimal; n ≤ MaxExactUniverse.
//	Greedy: cost-effectiveness heuristic (weight per newly covered element).
//	         Time O(k·m·n/64) for k selected sets, memory O(m·n/64).
//	         H(d)-approximation, d = size of the largest set; yields a maximal
//	         partial cover when the universe is not coverable.
//
// The dispatcher (FindMinSetCover) compares m·2ⁿ against a fixed threshold
// (DefaultThreshold unless WithThreshold is given) and routes to Exact below it,
// Greedy above it. Uncoverable universes always go to Greedy.
//
// Usage:
//
//	s, err := setcover.New(5, [][]int{{0, 1, 2}, {3}, {0, 2, 4}, {3, 4}}, []float64{1, 1, 1, 1})
//	if err != nil {
//		// ErrDimensionMismatch, ErrIndexOutOfRange, ErrNonFiniteWeight, ErrNegativeUniverse
//	}
//	cover, err := s.FindMinSetCover()
//	fmt.Println(cover.Weight, cover.Indices) // 2 [0 3]
//
// A Solver is an immutable snapshot of its inputs. It never mutates the
// caller's sets or weights, and every derived table is allocated per call,
// so one Solver may be shared between goroutines.
package setcover
