// SPDX-License-Identifier: MIT

package setcover

import (
	"math"

	"github.com/sirupsen/logrus"
)

// greedyCover builds a cover by repeatedly taking the set with the lowest
// weight per newly covered element. Inputs must already be validated.
//
// Each round:
//  1. For every unselected set, count its still-uncovered elements.
//     Sets with a zero count are skipped (their ratio is undefined).
//  2. Select the set minimizing weight/uncovered; ties keep the lowest index.
//  3. Add its weight, OR its mask into the coverage mask.
//
// The loop ends when every element is covered or no set adds anything new.
// The latter is a maximal partial cover (Complete=false), not an error.
//
// Guarantee: weight ≤ H(d)·OPT for coverable inputs, d = largest set size.
//
// Complexity: O(k·m·n/64) time for k rounds, O(m·n/64) memory.
func greedyCover(n int, sets [][]int, weights []float64) Cover {
	indices := make([]int, 0)
	if n == 0 {
		return Cover{Weight: 0, Sets: [][]int{}, Indices: indices, Complete: true, Algorithm: Greedy}
	}

	masks := setMasks(n, sets)
	sizes := make([]int, len(masks))
	var i int
	for i = range masks {
		sizes[i] = maskCount(masks[i])
	}

	var (
		covered      = newMask(n)
		coveredCount int
		chosen       = make([]bool, len(sets))
		total        float64
		best         int
		bestRatio    float64
		u            int
		ratio        float64
		err          error
	)
	for coveredCount < n {
		best, bestRatio = -1, math.Inf(1)
		for i = range masks {
			if chosen[i] {
				continue
			}
			u, err = uncoveredIn(masks[i], covered, sizes[i], coveredCount)
			if err != nil {
				log.WithError(err).WithField("set", i).Error("Could not count uncovered elements")
				continue
			}
			if u == 0 {
				continue // undefined cost ratio
			}
			ratio = weights[i] / float64(u)
			if best < 0 || ratio < bestRatio {
				best, bestRatio = i, ratio
			}
		}
		if best < 0 {
			break // maximal partial cover
		}

		chosen[best] = true
		total += weights[best]
		if err = covered.NoAllocOr(masks[best], covered); err != nil {
			log.WithError(err).WithField("set", best).Error("Could not merge coverage")
			break
		}
		coveredCount = maskCount(covered)
		indices = append(indices, best)
	}

	if coveredCount < n {
		log.WithFields(logrus.Fields{
			"universe": n,
			"covered":  coveredCount,
			"selected": len(indices),
		}).Debug("Greedy stopped at a partial cover")
	}

	return Cover{
		Weight:    total,
		Sets:      pick(sets, indices),
		Indices:   indices,
		Complete:  coveredCount == n,
		Algorithm: Greedy,
	}
}
