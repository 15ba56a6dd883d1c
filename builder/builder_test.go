package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/setcover"
)

func TestRandom_Shape(t *testing.T) {
	in, err := builder.Random(20, 8, 0.3,
		builder.WithSeed(1),
		builder.WithLabelScheme(builder.WeaknessIDFn),
		builder.WithName("rand"),
	)
	require.NoError(t, err)
	require.NoError(t, in.Validate())

	assert.Equal(t, "rand", in.Name)
	assert.Equal(t, 20, in.Universe)
	require.Len(t, in.Elements, 20)
	assert.Equal(t, "CWE-19", in.Elements[19])
	require.Len(t, in.Sets, 8)
	for i, set := range in.Sets {
		assert.Equal(t, builder.SymbolNumberIDFn("S")(i), set.Name)
		assert.IsIncreasing(t, append([]int{-1}, set.Elements...), "set %d sorted and unique", i)
		for _, e := range set.Elements {
			assert.Less(t, e, 20)
		}
		assert.GreaterOrEqual(t, set.Weight, 1.0)
		assert.LessOrEqual(t, set.Weight, 10.0)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(15, 10, 0.2, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Random(15, 10, 0.2, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Random(15, 10, 0.2, builder.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandom_Coverable(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		in, err := builder.Random(12, 3, 0.05, builder.WithSeed(seed), builder.WithCoverable())
		require.NoError(t, err)
		_, sets, _ := in.Problem()
		require.True(t, setcover.IsCoverable(12, sets), "seed %d", seed)
	}
}

func TestRandom_Extremes(t *testing.T) {
	in, err := builder.Random(6, 2, 0, builder.WithSeed(3))
	require.NoError(t, err)
	for _, set := range in.Sets {
		assert.Empty(t, set.Elements)
	}

	in, err = builder.Random(6, 2, 1, builder.WithSeed(3), builder.WithWeightFn(builder.UnitWeightFn))
	require.NoError(t, err)
	for _, set := range in.Sets {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, set.Elements)
		assert.Equal(t, 1.0, set.Weight)
	}

	in, err = builder.Random(0, 0, 0.5, builder.WithSeed(3), builder.WithCoverable())
	require.NoError(t, err)
	assert.Zero(t, in.Universe)
	assert.Empty(t, in.Sets)
}

func TestRandom_Errors(t *testing.T) {
	_, err := builder.Random(5, 2, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Random(-1, 2, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewElements)

	_, err = builder.Random(5, -2, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewElements)

	_, err = builder.Random(5, 2, 1.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Random(5, 0, 0.5, builder.WithSeed(1), builder.WithCoverable())
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Contains(t, err.Error(), builder.MethodRandom)
}

func TestPartition(t *testing.T) {
	in, err := builder.Partition(10, 3, builder.WithWeightFn(builder.ConstantWeightFn(2)))
	require.NoError(t, err)
	require.Len(t, in.Sets, 3)
	assert.Equal(t, []int{0, 1, 2, 3}, in.Sets[0].Elements)
	assert.Equal(t, []int{4, 5, 6}, in.Sets[1].Elements)
	assert.Equal(t, []int{7, 8, 9}, in.Sets[2].Elements)

	// every block is needed, so both solvers select all of them
	universe, sets, weights := in.Problem()
	s, err := setcover.New(universe, sets, weights)
	require.NoError(t, err)
	c, err := s.FindMinSetCover()
	require.NoError(t, err)
	assert.Equal(t, 6.0, c.Weight)
	assert.Equal(t, 6.0, s.FindMinSetCoverGreedy().Weight)

	in, err = builder.Partition(0, 2)
	require.NoError(t, err)
	assert.Len(t, in.Sets, 2)

	_, err = builder.Partition(3, 4)
	require.ErrorIs(t, err, builder.ErrTooFewElements)
	_, err = builder.Partition(3, 0)
	require.ErrorIs(t, err, builder.ErrTooFewElements)
}

func TestDemo(t *testing.T) {
	in := builder.Demo()
	require.NoError(t, in.Validate())

	s, err := in.Solver()
	require.NoError(t, err)
	c, err := s.FindMinSetCover()
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Weight)
	assert.Equal(t, []int{0, 3}, c.Indices)
}

// TestRandom_GreedyBoundedByExact is the greedy ≥ exact property over
// generated coverable instances.
func TestRandom_GreedyBoundedByExact(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		in, err := builder.Random(10, 8, 0.3, builder.WithSeed(seed), builder.WithCoverable())
		require.NoError(t, err)
		s, err := in.Solver()
		require.NoError(t, err)

		exact, err := s.FindMinSetCoverExact()
		require.NoError(t, err, "seed %d", seed)
		greedy := s.FindMinSetCoverGreedy()
		require.True(t, greedy.Complete)
		require.GreaterOrEqual(t, greedy.Weight+1e-9, exact.Weight, "seed %d", seed)
	}
}
