package instance_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/setcover"
)

func TestSolve_Report(t *testing.T) {
	r, err := instance.Solve(labeledDemo(), setcover.Auto)
	require.NoError(t, err)

	assert.Equal(t, "demo", r.Instance)
	assert.Equal(t, "exact", r.Algorithm)
	assert.True(t, r.Coverable)
	assert.True(t, r.Complete)
	assert.Equal(t, 2.0, r.Weight)
	assert.Equal(t, 2, r.SetCount)
	require.Len(t, r.Selected, 2)
	assert.Equal(t, "SbD-0", r.Selected[0].Name)
	assert.Equal(t, []string{"CWE-0", "CWE-1", "CWE-2"}, r.Selected[0].Labels)
	assert.Equal(t, "SbD-3", r.Selected[1].Name)
	assert.Empty(t, r.Uncovered)
}

func TestSolve_PartialReport(t *testing.T) {
	in := &instance.Instance{
		Elements: []string{"x", "y", "z"},
		Sets: []instance.Set{
			{Name: "X", Labels: []string{"x"}, Weight: 1},
			{Name: "Y", Labels: []string{"y"}, Weight: 1},
		},
	}
	r, err := instance.Solve(in, setcover.Auto)
	require.NoError(t, err)
	assert.Equal(t, "greedy", r.Algorithm)
	assert.False(t, r.Coverable)
	assert.False(t, r.Complete)
	assert.Equal(t, []string{"z"}, r.Uncovered)
	assert.Equal(t, 1, r.UncoveredCount)

	// forcing exact on the same instance is an error
	_, err = instance.Solve(in, setcover.Exact)
	require.ErrorIs(t, err, setcover.ErrUncoverable)
}

func TestReport_WriteText(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	r, err := instance.Solve(labeledDemo(), setcover.Greedy)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "demo\n")
	assert.Contains(t, out, "algorithm: greedy  universe: 5\n")
	assert.Contains(t, out, "complete cover: 2 set(s), total weight 2\n")
	assert.Contains(t, out, "SbD-0")
	assert.Contains(t, out, "CWE-3, CWE-4\n")
	assert.NotContains(t, out, "uncovered")

	partial := &instance.Report{Algorithm: "greedy", Universe: 2, Uncovered: []string{"b"}, UncoveredCount: 1,
		Selected: []instance.SelectedSet{{Name: "#0", Weight: 1, Elements: []int{0}}}, SetCount: 1, Weight: 1}
	buf.Reset()
	require.NoError(t, partial.WriteText(&buf))
	assert.Contains(t, buf.String(), "partial cover: 1 set(s), total weight 1, 1 element(s) uncovered\n")
	assert.Contains(t, buf.String(), "[0]\n")
	assert.Contains(t, buf.String(), "  uncovered: b\n")
}

func TestReport_UncoveredIsCapped(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	r, err := instance.Solve(&instance.Instance{Universe: 50}, setcover.Auto)
	require.NoError(t, err)
	assert.False(t, r.Complete)
	assert.Equal(t, 50, r.UncoveredCount)
	require.Len(t, r.Uncovered, instance.MaxUncoveredLabels)
	assert.Equal(t, "0", r.Uncovered[0])
	assert.Equal(t, "31", r.Uncovered[instance.MaxUncoveredLabels-1])

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), "0 set(s), total weight 0, 50 element(s) uncovered\n")
	assert.Contains(t, buf.String(), ", 31 (+18 more)\n")
}
