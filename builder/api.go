// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// api.go — public constructors.
//
// Design contract:
//   • Every constructor resolves options once via newBuilderConfig.
//   • Determinism: same inputs/options/seed ⇒ identical instances.
//   • Safety: never panic; return sentinel errors wrapped by builderErrorf.

package builder

import (
	"sort"

	"github.com/katalvlaran/setcover/instance"
)

// Random generates universe elements and sets candidate sets; each set
// contains each element independently with probability density.
// Weights come from the configured WeightFn.
//
// With WithCoverable, every element left out of all sets is added to one
// uniformly chosen set, so the instance is coverable (requires sets ≥ 1
// when universe ≥ 1).
//
// Errors: ErrTooFewElements (negative sizes), ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed.
//
// Complexity: O(universe·sets) time, O(Σ|set|) space.
func Random(universe, sets int, density float64, opts ...BuilderOption) (*instance.Instance, error) {
	if err := validateMin(MethodRandom, universe, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandom, sets, 0); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandom, density); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	if cfg.coverable && universe > 0 && sets == 0 {
		return nil, builderErrorf(MethodRandom, ErrConstructFailed, "coverable instance needs at least one set")
	}

	in := newInstance(cfg, universe)
	members := make([]map[int]struct{}, sets)
	hit := make([]bool, universe)
	var i, e int
	for i = 0; i < sets; i++ {
		members[i] = make(map[int]struct{})
		for e = 0; e < universe; e++ {
			if cfg.rng.Float64() < density {
				members[i][e] = struct{}{}
				hit[e] = true
			}
		}
	}
	if cfg.coverable {
		for e = 0; e < universe; e++ {
			if !hit[e] {
				members[cfg.rng.Intn(sets)][e] = struct{}{}
			}
		}
	}
	for i = 0; i < sets; i++ {
		in.Sets = append(in.Sets, instance.Set{
			Name:     cfg.setNameFn(i),
			Elements: sortedKeys(members[i]),
			Weight:   cfg.weightFn(cfg.rng),
		})
	}

	return in, nil
}

// Partition splits [0, universe) into parts contiguous blocks whose sizes
// differ by at most one. Every block is needed, so the optimum selects all
// of them. A nil rng is allowed; weights then come from WeightFn(nil).
//
// Errors: ErrTooFewElements if universe < 0, parts < 1 or parts > universe
// (for universe > 0).
//
// Complexity: O(universe + parts).
func Partition(universe, parts int, opts ...BuilderOption) (*instance.Instance, error) {
	if err := validateMin(MethodPartition, universe, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodPartition, parts, 1); err != nil {
		return nil, err
	}
	if universe > 0 && parts > universe {
		return nil, builderErrorf(MethodPartition, ErrTooFewElements, "universe %d smaller than %d parts", universe, parts)
	}
	cfg := newBuilderConfig(opts...)

	in := newInstance(cfg, universe)
	var (
		base  = 0
		extra = 0
		start = 0
		size  int
		i, e  int
	)
	if universe > 0 {
		base, extra = universe/parts, universe%parts
	}
	for i = 0; i < parts; i++ {
		size = base
		if i < extra {
			size++
		}
		elems := make([]int, 0, size)
		for e = start; e < start+size; e++ {
			elems = append(elems, e)
		}
		start += size
		in.Sets = append(in.Sets, instance.Set{
			Name:     cfg.setNameFn(i),
			Elements: elems,
			Weight:   cfg.weightFn(cfg.rng),
		})
	}

	return in, nil
}

// Demo returns the five-weakness, four-safeguard scenario with unit weights.
// Its optimum has weight 2 (safeguards SbD-0 and SbD-3).
func Demo() *instance.Instance {
	return &instance.Instance{
		Name:     "demo",
		Universe: 5,
		Elements: []string{"CWE-0", "CWE-1", "CWE-2", "CWE-3", "CWE-4"},
		Sets: []instance.Set{
			{Name: "SbD-0", Elements: []int{0, 1, 2}, Weight: 1},
			{Name: "SbD-1", Elements: []int{3}, Weight: 1},
			{Name: "SbD-2", Elements: []int{0, 2, 4}, Weight: 1},
			{Name: "SbD-3", Elements: []int{3, 4}, Weight: 1},
		},
	}
}

// newInstance allocates an instance shell with optional element labels.
func newInstance(cfg builderConfig, universe int) *instance.Instance {
	in := &instance.Instance{Name: cfg.name, Universe: universe}
	if cfg.labelFn != nil {
		in.Elements = make([]string, universe)
		for e := 0; e < universe; e++ {
			in.Elements[e] = cfg.labelFn(e)
		}
	}

	return in
}

// sortedKeys returns the keys of m in ascending order (never nil).
func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
