package setcover_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/setcover"
)

// TestExact_Demo verifies the five-weakness scenario: safeguards 0 and 3
// cover everything at weight 2, reported in forward order.
func TestExact_Demo(t *testing.T) {
	n, sets, weights := demoInstance()
	s, err := setcover.New(n, sets, weights)
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Weight)
	assert.Equal(t, []int{0, 3}, c.Indices)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, c.Sets)
	assert.True(t, c.Complete)
	assert.Equal(t, setcover.Exact, c.Algorithm)
	requireConsistent(t, n, sets, weights, c)
}

// TestExact_SharesInputSlices checks that selected sets are the caller's own
// slices rather than copies.
func TestExact_SharesInputSlices(t *testing.T) {
	n, sets, weights := demoInstance()
	s, err := setcover.New(n, sets, weights)
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.NoError(t, err)
	for k, idx := range c.Indices {
		assert.Same(t, &sets[idx][0], &c.Sets[k][0])
	}
}

// TestExact_BeatsGreedyTrap uses an instance where the cheapest ratio first
// is not optimal.
func TestExact_BeatsGreedyTrap(t *testing.T) {
	sets := [][]int{{0, 1}, {2, 3}, {0, 1, 2}}
	weights := []float64{1, 1, 1.4}
	s, err := setcover.New(4, sets, weights)
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Weight)
	assert.Equal(t, []int{0, 1}, c.Indices)
}

// TestExact_Uncoverable returns ErrUncoverable with an infinite weight.
func TestExact_Uncoverable(t *testing.T) {
	s, err := setcover.New(3, [][]int{{0}, {1}}, []float64{1, 1})
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.ErrorIs(t, err, setcover.ErrUncoverable)
	assert.True(t, math.IsInf(c.Weight, 1))
	assert.Empty(t, c.Indices)
	assert.False(t, c.Complete)
}

// TestExact_UniverseTooLarge refuses to allocate a table above the cap.
func TestExact_UniverseTooLarge(t *testing.T) {
	n := setcover.MaxExactUniverse + 1
	all := make([]int, n)
	for e := range all {
		all[e] = e
	}
	s, err := setcover.New(n, [][]int{all}, []float64{1})
	require.NoError(t, err)

	_, err = s.FindMinSetCoverExact()
	require.ErrorIs(t, err, setcover.ErrUniverseTooLarge)
}

// TestExact_EmptyUniverse selects nothing at zero weight.
func TestExact_EmptyUniverse(t *testing.T) {
	s, err := setcover.New(0, [][]int{{}, {}}, []float64{3, 0})
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Weight)
	assert.Empty(t, c.Indices)
	assert.True(t, c.Complete)
}

// TestExact_ZeroWeights prefers free sets and never selects useless ones.
func TestExact_ZeroWeights(t *testing.T) {
	sets := [][]int{{}, {0, 1}, {0}, {1}}
	weights := []float64{0, 5, 0, 0}
	s, err := setcover.New(2, sets, weights)
	require.NoError(t, err)

	c, err := s.FindMinSetCoverExact()
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Weight)
	assert.Equal(t, []int{2, 3}, c.Indices)
}

// TestExact_DuplicateIndices treats repeated elements as one.
func TestExact_DuplicateIndices(t *testing.T) {
	sets := [][]int{{0, 0, 0}, {1, 1}, {0, 1, 1}}
	weights := []float64{1, 1, 3}
	c, err := setcover.Solve(2, sets, weights, setcover.WithAlgorithm(setcover.Exact))
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Weight)
	assert.Equal(t, []int{0, 1}, c.Indices)
}

// TestExact_MatchesBruteForce is the optimality property on small random
// instances.
func TestExact_MatchesBruteForce(t *testing.T) {
	rng := newRand(seedDet)
	for trial := 0; trial < 150; trial++ {
		n := 1 + rng.Intn(12)
		m := 1 + rng.Intn(maxBrute)
		sets, weights := randomInstance(rng, n, m, 0.35)
		want := bruteForce(n, sets, weights)

		s, err := setcover.New(n, sets, weights)
		require.NoError(t, err)
		c, err := s.FindMinSetCoverExact()
		if math.IsInf(want, 1) {
			require.ErrorIs(t, err, setcover.ErrUncoverable, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.InDelta(t, want, c.Weight, epsTiny, "trial %d", trial)
		requireConsistent(t, n, sets, weights, c)
	}
}
