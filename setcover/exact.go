// SPDX-License-Identifier: MIT

package setcover

import (
	"fmt"
	"math"
)

// dpEntry is one row of the exact solver's table, indexed by coverage mask.
//
//	weight – minimum weight of any selection whose union ⊇ mask (+Inf if none seen).
//	prev   – mask the best transition came from (-1 for none).
//	set    – set index used by that transition (-1 for none).
type dpEntry struct {
	weight float64
	prev   int32
	set    int32
}

// exactCover computes a minimum-weight full cover by bitmask dynamic
// programming. Inputs must already be validated.
//
// The table has 2ⁿ entries. dp[0] = 0, all others +∞. Masks are processed in
// increasing numeric order; for every finite dp[mask] and every set i:
//
//	next = mask | bits(i)
//	if dp[mask] + w[i] < dp[next] { dp[next] = dp[mask] + w[i]; prev[next] = mask; set[next] = i }
//
// Since next ≥ mask, every mask is fully relaxed before it is used as a
// source (shortest path over a DAG ordered by mask value). Ties keep the
// first transition found under mask-ascending, set-ascending order.
//
// The answer is dp[full]; the selection is rebuilt by walking prev/set from
// full back to 0 and is returned in forward (mask-ascending) order.
//
// Errors:
//   - ErrUniverseTooLarge if n > MaxExactUniverse (nothing is allocated).
//   - ErrUncoverable if dp[full] stays +∞; the returned Cover has Weight=+Inf.
//
// Complexity: O(m·2ⁿ + Σ|set|) time, O(2ⁿ) memory freed on return.
func exactCover(n int, sets [][]int, weights []float64) (Cover, error) {
	if n > MaxExactUniverse {
		return Cover{}, fmt.Errorf("%w: n=%d, max %d", ErrUniverseTooLarge, n, MaxExactUniverse)
	}

	// --- 1. Precompute one int mask per set ---
	bits := make([]int, len(sets))
	var i int
	for i = range sets {
		bits[i] = intMask(sets[i])
	}

	// --- 2. Allocate the per-call table ---
	full := (1 << n) - 1
	table := make([]dpEntry, full+1)
	inf := math.Inf(1)
	for i = range table {
		table[i] = dpEntry{weight: inf, prev: -1, set: -1}
	}
	table[0].weight = 0

	// --- 3. Relax masks in increasing order ---
	var (
		mask int
		next int
		cand float64
	)
	for mask = 0; mask <= full; mask++ {
		if math.IsInf(table[mask].weight, 1) {
			continue // unreachable so far
		}
		for i = range bits {
			next = mask | bits[i]
			cand = table[mask].weight + weights[i]
			if cand < table[next].weight {
				table[next] = dpEntry{weight: cand, prev: int32(mask), set: int32(i)}
			}
		}
	}

	if math.IsInf(table[full].weight, 1) {
		return uncoveredCover(), ErrUncoverable
	}

	// --- 4. Walk predecessors back from full ---
	indices := make([]int, 0, n)
	for mask = full; mask != 0; {
		e := table[mask]
		if e.set < 0 {
			break // no recorded transition; cannot happen when dp[full] is finite
		}
		indices = append(indices, int(e.set))
		mask = int(e.prev)
	}
	reverseInts(indices)

	return Cover{
		Weight:    table[full].weight,
		Sets:      pick(sets, indices),
		Indices:   indices,
		Complete:  true,
		Algorithm: Exact,
	}, nil
}

// reverseInts reverses a in place.
func reverseInts(a []int) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}

// pick returns sets[idx] for every idx, sharing the caller's slices.
func pick(sets [][]int, indices []int) [][]int {
	out := make([][]int, len(indices))
	for k, idx := range indices {
		out[k] = sets[idx]
	}

	return out
}
