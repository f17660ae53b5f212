package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
)

func smallOpts() []builder.Option {
	allowed := []activation.ID{activation.Tanh, activation.ReLU}
	return []builder.Option{
		builder.AddInputRow(2),
		builder.AddHiddenRow(3, allowed, 1),
		builder.AddOutputRow(1, allowed),
		builder.WithMaxInDegree(12),
	}
}

type BuilderSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *BuilderSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(7))
}

func (s *BuilderSuite) TestNewSpeciesRejectsMissingMaxInDegree() {
	require := require.New(s.T())
	_, err := builder.NewSpecies(1, builder.AddInputRow(2), builder.AddOutputRow(1, []activation.ID{activation.Tanh}))
	require.ErrorIs(err, builder.ErrMaxInDegreeNotSet)
}

func (s *BuilderSuite) TestNewSpeciesRejectsBadRowOrder() {
	require := require.New(s.T())
	allowed := []activation.ID{activation.Tanh}
	_, err := builder.NewSpecies(1,
		builder.AddOutputRow(1, allowed),
		builder.AddInputRow(2),
		builder.WithMaxInDegree(4),
	)
	require.ErrorIs(err, builder.ErrRowOrder)
}

func (s *BuilderSuite) TestDenseFullyConnectedAtP1() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	require.NoError(builder.SeedTemplate(sp, builder.Dense(1.0), s.rng))
	// rows [2,3,1] at density 1.0, every lower-row source a candidate:
	// 3 hidden nodes * 2 inputs + 1 output * (2 inputs + 3 hidden) = 11 edges
	require.Len(sp.TemplateEdges, 11)
}

func (s *BuilderSuite) TestDenseRejectsOutOfRangeDensity() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	err = builder.SeedTemplate(sp, builder.Dense(0), s.rng)
	require.ErrorIs(err, builder.ErrInvalidDensity)
}

func (s *BuilderSuite) TestDenseNeverLeavesZeroInDegree() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	require.NoError(builder.SeedTemplate(sp, builder.Dense(0.01), s.rng))
	for v := sp.InputCount(); v < sp.TotalNodes(); v++ {
		found := false
		for _, e := range sp.TemplateEdges {
			if e.Dest == v {
				found = true
				break
			}
		}
		require.True(found, "node %d left with zero in-edges", v)
	}
}

func (s *BuilderSuite) TestSparseExactDegree() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	require.NoError(builder.SeedTemplate(sp, builder.Sparse(2), s.rng))
	for v := sp.InputCount(); v < sp.TotalNodes(); v++ {
		n := 0
		for _, e := range sp.TemplateEdges {
			if e.Dest == v {
				n++
			}
		}
		require.Equal(2, n)
	}
}

func (s *BuilderSuite) TestMinimalEveryOutputReachesInput() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	require.NoError(builder.SeedTemplate(sp, builder.Minimal(), s.rng))

	outStart := sp.Rows[sp.OutputRow()].NodeStart
	for v := outStart; v < sp.TotalNodes(); v++ {
		require.True(reaches(sp.TemplateEdges, v, sp.InputCount()))
	}
}

func reaches(edges []core.Edge, target, inputCount int) bool {
	visited := map[int]bool{target: true}
	queue := []int{target}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n < inputCount {
			return true
		}
		for _, e := range edges {
			if e.Dest == n && !visited[e.Source] {
				visited[e.Source] = true
				queue = append(queue, e.Source)
			}
		}
	}

	return false
}

func (s *BuilderSuite) TestSeedIndividualValidates() {
	require := require.New(s.T())
	sp, err := builder.NewSpecies(1, smallOpts()...)
	require.NoError(err)
	require.NoError(builder.SeedTemplate(sp, builder.Dense(1.0), s.rng))

	ind := builder.SeedIndividual(sp, s.rng, builder.WeightInit{Kind: builder.GlorotUniform}, 0.1)
	require.NoError(ind.Validate(sp))
}

func (s *BuilderSuite) TestBuildProducesRequestedPopulation() {
	require := require.New(s.T())
	sp, inds, err := builder.Build(1, smallOpts(), builder.Dense(1.0), builder.WeightInit{Kind: builder.HeNormal}, 0.05, 5, s.rng)
	require.NoError(err)
	require.Len(inds, 5)
	for _, ind := range inds {
		require.NoError(ind.Validate(sp))
	}
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}
