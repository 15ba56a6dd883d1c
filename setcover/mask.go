// SPDX-License-Identifier: MIT

package setcover

import (
	"fortio.org/safecast"
	"github.com/prysmaticlabs/go-bitfield"
)

// Coverage masks for the checker and the greedy solver are Bitlist64 values
// of exactly universeSize bits. The exact solver uses plain int masks instead,
// since it indexes a 2ⁿ table by them.

// newMask returns an all-clear coverage mask of n bits. n must be ≥ 0.
func newMask(n int) *bitfield.Bitlist64 {
	return bitfield.NewBitlist64(uint64(n))
}

// markCovered sets bit e. Negative indices are ignored.
func markCovered(m *bitfield.Bitlist64, e int) {
	idx, err := safecast.Conv[uint64](e)
	if err != nil {
		return
	}
	m.SetBitAt(idx, true)
}

// maskCount returns the number of set bits.
func maskCount(m *bitfield.Bitlist64) int {
	return int(m.Count())
}

// setMasks converts every candidate set into an n-bit mask, deduplicating
// repeated indices. Inputs must already be validated.
//
// Complexity: O(m·n/64 + Σ|set|) time and space.
func setMasks(n int, sets [][]int) []*bitfield.Bitlist64 {
	out := make([]*bitfield.Bitlist64, len(sets))
	var (
		i int
		e int
	)
	for i = range sets {
		out[i] = newMask(n)
		for _, e = range sets[i] {
			markCovered(out[i], e)
		}
	}

	return out
}

// uncoveredIn returns |s \ covered| without allocating, from
// |s ⊕ covered| = |s| + |covered| − 2|s ∧ covered|.
// sCount and coveredCount are the precomputed popcounts of s and covered.
func uncoveredIn(s, covered *bitfield.Bitlist64, sCount, coveredCount int) (int, error) {
	x, err := s.XorCount(covered)
	if err != nil {
		return 0, err
	}

	return (sCount + int(x) - coveredCount) / 2, nil
}

// intMask packs a validated set into an int bitmask (n ≤ MaxExactUniverse).
func intMask(set []int) int {
	var (
		m int
		e int
	)
	for _, e = range set {
		m |= 1 << e
	}

	return m
}
