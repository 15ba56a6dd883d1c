// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/setcover/setcover"
)

// Validate checks field tags (non-negative universe and weights, non-empty
// labels) and the Elements/Universe length rule. It does not resolve labels.
func (in *Instance) Validate() error {
	if err := instanceValidate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}

	return nil
}

// Resolve maps every set's Labels to universe indices and merges them into
// Elements, keeping first-seen order and dropping repeats. When Universe is
// zero and Elements is non-empty, Universe becomes len(Elements).
//
// Resolve is idempotent. Index range checks are left to setcover.New.
//
// Errors: ErrInvalidInstance, ErrDuplicateLabel, ErrUnknownLabel.
func (in *Instance) Resolve() error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Universe == 0 && len(in.Elements) > 0 {
		in.Universe = len(in.Elements)
	}

	index := make(map[string]int, len(in.Elements))
	var (
		i     int
		label string
	)
	for i, label = range in.Elements {
		if _, dup := index[label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		index[label] = i
	}

	var (
		set  *Set
		idx  int
		ok   bool
		seen map[int]struct{}
	)
	for i = range in.Sets {
		set = &in.Sets[i]
		if len(set.Labels) == 0 {
			continue
		}
		seen = make(map[int]struct{}, len(set.Elements)+len(set.Labels))
		for _, idx = range set.Elements {
			seen[idx] = struct{}{}
		}
		for _, label = range set.Labels {
			if idx, ok = index[label]; !ok {
				return fmt.Errorf("%w: set %d (%s) label %q", ErrUnknownLabel, i, set.Name, label)
			}
			if _, ok = seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			set.Elements = append(set.Elements, idx)
		}
	}

	return nil
}

// Problem returns the solver inputs. Sets[i] is in.Sets[i].Elements itself,
// so setcover.Cover.Sets entries alias the instance's slices.
func (in *Instance) Problem() (universe int, sets [][]int, weights []float64) {
	sets = make([][]int, len(in.Sets))
	weights = make([]float64, len(in.Sets))
	for i := range in.Sets {
		sets[i] = in.Sets[i].Elements
		weights[i] = in.Sets[i].Weight
	}

	return in.Universe, sets, weights
}

// Label returns the display label of element idx: its Elements entry, or the
// decimal index when the instance is unlabeled.
func (in *Instance) Label(idx int) string {
	if idx >= 0 && idx < len(in.Elements) {
		return in.Elements[idx]
	}

	return strconv.Itoa(idx)
}

// SetName returns the display name of set i, defaulting to "#i".
func (in *Instance) SetName(i int) string {
	if i >= 0 && i < len(in.Sets) && in.Sets[i].Name != "" {
		return in.Sets[i].Name
	}

	return "#" + strconv.Itoa(i)
}

// Solver resolves the instance and builds a setcover.Solver over it.
func (in *Instance) Solver(opts ...setcover.Option) (*setcover.Solver, error) {
	if err := in.Resolve(); err != nil {
		return nil, err
	}
	universe, sets, weights := in.Problem()

	return setcover.New(universe, sets, weights, opts...)
}
