// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/setcover/setcover"
)

// SelectedSet describes one chosen set in a Report.
type SelectedSet struct {
	Index    int      `json:"index" yaml:"index" toml:"index" msgpack:"index"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" msgpack:"name,omitempty"`
	Weight   float64  `json:"weight" yaml:"weight" toml:"weight" msgpack:"weight"`
	Elements []int    `json:"elements" yaml:"elements" toml:"elements" msgpack:"elements"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty" msgpack:"labels,omitempty"`
}

// Report is the serializable outcome of solving an Instance.
type Report struct {
	Instance  string        `json:"instance,omitempty" yaml:"instance,omitempty" toml:"instance,omitempty" msgpack:"instance,omitempty"`
	Algorithm string        `json:"algorithm" yaml:"algorithm" toml:"algorithm" msgpack:"algorithm"`
	Universe  int           `json:"universe" yaml:"universe" toml:"universe" msgpack:"universe"`
	Coverable bool          `json:"coverable" yaml:"coverable" toml:"coverable" msgpack:"coverable"`
	Complete  bool          `json:"complete" yaml:"complete" toml:"complete" msgpack:"complete"`
	Weight    float64       `json:"weight" yaml:"weight" toml:"weight" msgpack:"weight"`
	SetCount  int           `json:"set_count" yaml:"set_count" toml:"set_count" msgpack:"set_count"`
	Selected  []SelectedSet `json:"selected" yaml:"selected" toml:"selected" msgpack:"selected"`
	// Uncovered holds at most MaxUncoveredLabels labels; UncoveredCount is the full count.
	Uncovered      []string `json:"uncovered,omitempty" yaml:"uncovered,omitempty" toml:"uncovered,omitempty" msgpack:"uncovered,omitempty"`
	UncoveredCount int      `json:"uncovered_count" yaml:"uncovered_count" toml:"uncovered_count" msgpack:"uncovered_count"`
}

// MaxUncoveredLabels bounds Report.Uncovered.
const MaxUncoveredLabels = 32

// Solve resolves in, solves it with algo (Auto dispatches) and builds a Report.
func Solve(in *Instance, algo setcover.Algorithm, opts ...setcover.Option) (*Report, error) {
	s, err := in.Solver(opts...)
	if err != nil {
		return nil, err
	}
	cover, err := s.Run(algo)
	if err != nil {
		return nil, err
	}

	return NewReport(in, s, cover), nil
}

// NewReport maps a Cover back onto the instance's names and labels.
// Uncovered lists the labels of the first MaxUncoveredLabels elements no
// selected set contains; UncoveredCount counts all of them.
func NewReport(in *Instance, s *setcover.Solver, c setcover.Cover) *Report {
	r := &Report{
		Instance:  in.Name,
		Algorithm: c.Algorithm.String(),
		Universe:  in.Universe,
		Coverable: s.IsUniverseCoverable(),
		Complete:  c.Complete,
		Weight:    c.Weight,
		SetCount:  c.Len(),
		Selected:  make([]SelectedSet, 0, c.Len()),
	}

	covered := make([]bool, in.Universe)
	var (
		k, idx, e int
		sel       SelectedSet
	)
	for k, idx = range c.Indices {
		sel = SelectedSet{
			Index:    idx,
			Name:     in.SetName(idx),
			Weight:   in.Sets[idx].Weight,
			Elements: c.Sets[k],
		}
		for _, e = range c.Sets[k] {
			covered[e] = true
			if len(in.Elements) > 0 {
				sel.Labels = append(sel.Labels, in.Label(e))
			}
		}
		r.Selected = append(r.Selected, sel)
	}
	for e = range covered {
		if covered[e] {
			continue
		}
		if r.UncoveredCount < MaxUncoveredLabels {
			r.Uncovered = append(r.Uncovered, in.Label(e))
		}
		r.UncoveredCount++
	}

	return r
}

// WriteText prints a human-readable summary. Colors follow color.NoColor.
func (r *Report) WriteText(w io.Writer) error {
	var (
		bold  = color.New(color.Bold)
		good  = color.New(color.FgGreen)
		warn  = color.New(color.FgYellow)
		faint = color.New(color.Faint)
	)

	var b strings.Builder
	if r.Instance != "" {
		bold.Fprintf(&b, "%s\n", r.Instance)
	}
	fmt.Fprintf(&b, "algorithm: %s  universe: %d\n", r.Algorithm, r.Universe)
	if r.Complete {
		good.Fprintf(&b, "complete cover: %d set(s), total weight %g\n", r.SetCount, r.Weight)
	} else {
		warn.Fprintf(&b, "partial cover: %d set(s), total weight %g, %d element(s) uncovered\n",
			r.SetCount, r.Weight, r.UncoveredCount)
	}

	var s SelectedSet
	for _, s = range r.Selected {
		fmt.Fprintf(&b, "  %-12s w=%-8g ", s.Name, s.Weight)
		if len(s.Labels) > 0 {
			faint.Fprintf(&b, "%s\n", strings.Join(s.Labels, ", "))
		} else {
			faint.Fprintf(&b, "%v\n", s.Elements)
		}
	}
	if len(r.Uncovered) > 0 {
		warn.Fprintf(&b, "  uncovered: %s", strings.Join(r.Uncovered, ", "))
		if more := r.UncoveredCount - len(r.Uncovered); more > 0 {
			warn.Fprintf(&b, " (+%d more)", more)
		}
		fmt.Fprintln(&b)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
