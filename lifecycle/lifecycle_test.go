package lifecycle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/lifecycle"
)

func fixtureSpecies(t *testing.T, id int) *core.Species {
	allowed := []activation.ID{activation.Tanh, activation.ReLU}
	s, err := builder.NewSpecies(id,
		builder.AddInputRow(2),
		builder.AddHiddenRow(3, allowed, 1),
		builder.AddOutputRow(1, allowed),
		builder.WithMaxInDegree(8),
	)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(int64(id)))
	require.NoError(t, builder.SeedTemplate(s, builder.Dense(0.9), rng))

	return s
}

func TestUpdateStatsTracksImprovementAndVariance(t *testing.T) {
	require := require.New(t)
	s := fixtureSpecies(t, 1)

	lifecycle.UpdateStats(s, []float64{1, 2, 3})
	require.Equal(3.0, s.BestFitnessEver)
	require.Equal(0, s.GensSinceImprovement)
	require.Equal(1, s.AgeGenerations)

	lifecycle.UpdateStats(s, []float64{0, 1, 2})
	require.Equal(3.0, s.BestFitnessEver) // no improvement
	require.Equal(1, s.GensSinceImprovement)
	require.Equal(2, s.AgeGenerations)
}

func TestEligibleRespectsGracePeriod(t *testing.T) {
	require := require.New(t)
	s := fixtureSpecies(t, 1)
	s.GensSinceImprovement = 1000
	s.AgeGenerations = 1

	cfg := lifecycle.Config{GraceGenerations: 5, StagnationThreshold: 3, MinSpeciesCount: 1}
	tracker := &lifecycle.Tracker{}
	tracker.Observe(s.BestFitnessEver)
	require.False(lifecycle.Eligible(cfg, s, s.BestFitnessEver, tracker))

	s.AgeGenerations = 10
	require.True(lifecycle.Eligible(cfg, s, s.BestFitnessEver, tracker))
}

func TestRelativePerformanceRatioHandlesNegativeFitness(t *testing.T) {
	require := require.New(t)
	tracker := &lifecycle.Tracker{}
	tracker.Observe(-10)
	tracker.Observe(-1)

	worse := tracker.RelativePerformanceRatio(-10, -1)
	better := tracker.RelativePerformanceRatio(-1, -1)
	require.Less(worse, better)
	require.Equal(1.0, better)
}

func TestWorstEligiblePicksLowestBestFitness(t *testing.T) {
	require := require.New(t)
	a, b := fixtureSpecies(t, 1), fixtureSpecies(t, 2)
	a.BestFitnessEver, b.BestFitnessEver = 5, 1
	a.AgeGenerations, b.AgeGenerations = 10, 10
	a.GensSinceImprovement, b.GensSinceImprovement = 100, 100

	cfg := lifecycle.Config{GraceGenerations: 1, StagnationThreshold: 1, MinSpeciesCount: 1}
	tracker := &lifecycle.Tracker{}
	tracker.Observe(a.BestFitnessEver)
	tracker.Observe(b.BestFitnessEver)

	worst := lifecycle.WorstEligible(cfg, []*core.Species{a, b}, 5, tracker)
	require.Equal(b.ID, worst.ID)
}

func TestDiversifyProducesValidSpeciesAndCarriesBiases(t *testing.T) {
	require := require.New(t)
	source := fixtureSpecies(t, 1)
	rng := rand.New(rand.NewSource(42))
	elite := builder.SeedIndividual(source, rng, builder.WeightInit{Kind: builder.GlorotUniform}, 0.37)

	clone, individuals := lifecycle.Diversify(2, source, []*core.Individual{elite}, rng, 1.0,
		builder.WeightInit{Kind: builder.GlorotUniform}, 0.1, 4)

	require.NoError(clone.Validate())
	require.Len(individuals, 4)
	for _, ind := range individuals {
		require.NoError(ind.Validate(clone))
	}
	// biases must transfer for preserved nodes, never silently zeroed
	nonZero := false
	for _, b := range individuals[0].Biases {
		if b != 0 {
			nonZero = true
		}
	}
	require.True(nonZero, "diversified individual lost all bias values")
}

func TestSelectSourceHandlesAllNegativeFitness(t *testing.T) {
	require := require.New(t)
	a, b := fixtureSpecies(t, 1), fixtureSpecies(t, 2)
	a.BestFitnessEver, b.BestFitnessEver = -5, -1
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		picked := lifecycle.SelectSource([]*core.Species{a, b}, rng)
		require.Contains([]int{a.ID, b.ID}, picked.ID)
	}
}
