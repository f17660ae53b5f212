package engine_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/config"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/engine"
	"github.com/evolab/nevo/nevoenv"
)

// driftEnv rewards the sum of the controller's first output each step and
// terminates after a fixed number of steps; deterministic given its seed.
type driftEnv struct {
	inputs, outputs, steps int
	t                      int
}

func (e *driftEnv) InputCount() int  { return e.inputs }
func (e *driftEnv) OutputCount() int { return e.outputs }
func (e *driftEnv) MaxSteps() int    { return 50 }
func (e *driftEnv) Reset(seed uint64) { e.t = 0 }
func (e *driftEnv) GetObservations(buf []float32) {
	for i := range buf {
		buf[i] = 0.5
	}
}
func (e *driftEnv) Step(action []float32) float32 {
	e.t++
	return action[0]
}
func (e *driftEnv) IsTerminal() bool { return e.t >= e.steps }

func smallPopulation(t *testing.T) *core.Population {
	allowed := []activation.ID{activation.Tanh, activation.ReLU}
	pop := core.NewPopulation()

	for sid := 1; sid <= 2; sid++ {
		s, err := builder.NewSpecies(sid,
			builder.AddInputRow(2),
			builder.AddHiddenRow(3, allowed, 1),
			builder.AddOutputRow(1, allowed),
			builder.WithMaxInDegree(6),
		)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(int64(sid)))
		require.NoError(t, builder.SeedTemplate(s, builder.Dense(0.8), rng))

		individuals := make([]*core.Individual, 6)
		for i := range individuals {
			individuals[i] = builder.SeedIndividual(s, rng, builder.WeightInit{Kind: builder.GlorotUniform}, 0.1)
		}
		pop.AddSpecies(s, individuals)
	}

	return pop
}

func smallConfig() config.Config {
	return config.Config{
		SpeciesCount:              2,
		MinSpeciesCount:           1,
		IndividualsPerSpecies:     6,
		Elites:                    1,
		TournamentSize:            2,
		ParentPoolPercentage:      0.5,
		GraceGenerations:          2,
		StagnationThreshold:       3,
		SpeciesDiversityThreshold: 0,
		RelativePerformanceThresh: 0.01,
		WeightInitialization:      config.GlorotUniform,
		WeightInitBound:           0.1,
		SeedsPerIndividual:        1,
		FitnessAggregation:        config.Mean,
		CVaRQuantile:              0.5,
		MasterSeed:                1234,
		MutationRates: config.MutationRates{
			WeightJitterProb:  0.1,
			WeightJitterSigma: 0.1,
			WeightJitterEps:   1e-3,
			BiasJitterProb:    0.1,
			BiasJitterSigma:   0.1,
			BiasJitterEps:     1e-3,
			EdgeAddMaxAttempts: 10,
			EdgeRedirectAttempt: 10,
		},
	}
}

func TestRunGenerationAdvancesPopulationAndAssignsFitness(t *testing.T) {
	require := require.New(t)
	pop := smallPopulation(t)
	cfg := smallConfig()
	newEnv := func() nevoenv.Environment { return &driftEnv{inputs: 2, outputs: 1, steps: 10} }

	e := engine.New(cfg, pop, newEnv, 2)
	defer e.Close()

	require.NoError(e.RunGeneration(context.Background()))

	view := e.Population()
	for _, s := range view.Species() {
		for _, ind := range view.Individuals(s.ID) {
			require.NotEqual(core.NegInfFitness, ind.Fitness)
		}
	}

	stats := e.LastStats()
	require.Len(stats.Species, view.Stats().SpeciesCount)
}

func TestRunAdvancesMultipleGenerationsDeterministically(t *testing.T) {
	require := require.New(t)
	cfg := smallConfig()
	newEnv := func() nevoenv.Environment { return &driftEnv{inputs: 2, outputs: 1, steps: 10} }

	pop1 := smallPopulation(t)
	e1 := engine.New(cfg, pop1, newEnv, 2)
	require.NoError(e1.Run(context.Background(), 3))
	best1, _ := e1.BestIndividual()
	e1.Close()

	pop2 := smallPopulation(t)
	e2 := engine.New(cfg, pop2, newEnv, 2)
	require.NoError(e2.Run(context.Background(), 3))
	best2, _ := e2.BestIndividual()
	e2.Close()

	require.Equal(best1.Fitness, best2.Fitness)
}

func TestRunGenerationRespectsCancellation(t *testing.T) {
	require := require.New(t)
	pop := smallPopulation(t)
	cfg := smallConfig()
	newEnv := func() nevoenv.Environment { return &driftEnv{inputs: 2, outputs: 1, steps: 10} }

	e := engine.New(cfg, pop, newEnv, 2)
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(e.Run(ctx, 5), context.Canceled)
}
