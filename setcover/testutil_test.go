// Package setcover_test provides small helpers shared across *_test.go files:
// a brute-force reference solver, a seeded instance generator and cover
// checks. Helpers are stdlib-only and deterministic.
package setcover_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/setcover"
)

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(7)

	// epsTiny absorbs float summation order differences.
	epsTiny = 1e-9

	// maxBrute bounds m for the 2ᵐ brute-force reference.
	maxBrute = 12
)

// demoInstance is the five-weakness, four-safeguard scenario.
func demoInstance() (int, [][]int, []float64) {
	return 5,
		[][]int{{0, 1, 2}, {3}, {0, 2, 4}, {3, 4}},
		[]float64{1, 1, 1, 1}
}

// randomInstance draws m sets over n elements; each element joins a set with
// probability p and weights are integers in [1,10].
func randomInstance(rng *rand.Rand, n, m int, p float64) ([][]int, []float64) {
	sets := make([][]int, m)
	weights := make([]float64, m)
	var i, e int
	for i = 0; i < m; i++ {
		sets[i] = []int{}
		for e = 0; e < n; e++ {
			if rng.Float64() < p {
				sets[i] = append(sets[i], e)
			}
		}
		weights[i] = float64(1 + rng.Intn(10))
	}

	return sets, weights
}

// bruteForce enumerates all 2ᵐ selections and returns the minimum weight of a
// full cover, or +Inf when none exists.
func bruteForce(n int, sets [][]int, weights []float64) float64 {
	full := (1 << n) - 1
	bits := make([]int, len(sets))
	var i, e int
	for i = range sets {
		for _, e = range sets[i] {
			bits[i] |= 1 << e
		}
	}

	best := math.Inf(1)
	var (
		pick  int
		union int
		total float64
	)
	for pick = 0; pick < 1<<len(sets); pick++ {
		union, total = 0, 0
		for i = range sets {
			if pick&(1<<i) != 0 {
				union |= bits[i]
				total += weights[i]
			}
		}
		if union == full && total < best {
			best = total
		}
	}

	return best
}

// coveredBy returns how many distinct elements of [0,n) the selection covers.
func coveredBy(n int, selection [][]int) int {
	seen := make([]bool, n)
	count := 0
	for _, set := range selection {
		for _, e := range set {
			if e >= 0 && e < n && !seen[e] {
				seen[e] = true
				count++
			}
		}
	}

	return count
}

// requireConsistent checks the structural invariants of any returned Cover:
// Sets and Indices are pairwise aligned with the input, Weight is their sum,
// and Complete matches actual coverage.
func requireConsistent(t *testing.T, n int, sets [][]int, weights []float64, c setcover.Cover) {
	t.Helper()
	require.Len(t, c.Sets, len(c.Indices))
	require.Equal(t, c.Len(), len(c.Indices))

	var total float64
	seen := make(map[int]bool, len(c.Indices))
	for k, idx := range c.Indices {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(sets))
		require.False(t, seen[idx], "set %d selected twice", idx)
		seen[idx] = true
		require.Equal(t, sets[idx], c.Sets[k])
		total += weights[idx]
	}
	require.InDelta(t, total, c.Weight, epsTiny)
	require.Equal(t, coveredBy(n, c.Sets) == n, c.Complete)
}

// newRand returns a deterministic source.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
