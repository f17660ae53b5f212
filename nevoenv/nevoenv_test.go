package nevoenv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/eval"
	"github.com/evolab/nevo/nevoenv"
)

// countingEnv is a deterministic mock: observations equal the step index,
// every step rewards 1, and it terminates after a fixed number of steps.
type countingEnv struct {
	inputs, outputs, steps int
	t                      int
}

func (e *countingEnv) InputCount() int  { return e.inputs }
func (e *countingEnv) OutputCount() int { return e.outputs }
func (e *countingEnv) MaxSteps() int    { return 1000 }
func (e *countingEnv) Reset(seed uint64) { e.t = 0 }
func (e *countingEnv) GetObservations(buf []float32) {
	for i := range buf {
		buf[i] = float32(e.t)
	}
}
func (e *countingEnv) Step(action []float32) float32 {
	e.t++
	return 1
}
func (e *countingEnv) IsTerminal() bool { return e.t >= e.steps }

func fixtureSpeciesAndIndividual(t *testing.T) (*core.Species, *core.Individual) {
	allowed := []activation.ID{activation.Tanh}
	s, err := builder.NewSpecies(1,
		builder.AddInputRow(2),
		builder.AddOutputRow(1, allowed),
		builder.WithMaxInDegree(4),
	)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	require.NoError(t, builder.SeedTemplate(s, builder.Dense(1.0), rng))
	ind := builder.SeedIndividual(s, rng, builder.WeightInit{Kind: builder.GlorotUniform}, 0.1)

	return s, ind
}

func TestRunEpisodeAccumulatesRewardAndTerminates(t *testing.T) {
	require := require.New(t)
	s, ind := fixtureSpeciesAndIndividual(t)
	env := &countingEnv{inputs: 2, outputs: 1, steps: 5}
	sc := eval.NewScratch(s)

	reward, err := nevoenv.RunEpisode(s, ind, env, 1, sc)
	require.NoError(err)
	require.Equal(float32(5), reward)
}

func TestRunEpisodeRejectsIOMismatch(t *testing.T) {
	require := require.New(t)
	s, ind := fixtureSpeciesAndIndividual(t)
	env := &countingEnv{inputs: 3, outputs: 1, steps: 5}
	sc := eval.NewScratch(s)

	_, err := nevoenv.RunEpisode(s, ind, env, 1, sc)
	require.ErrorIs(err, nevoenv.ErrEnvironmentBoundaryViolation)
}

func TestAggregateDispatchesPerKind(t *testing.T) {
	require := require.New(t)
	rewards := []float32{1, 2, 3, 4, 5}

	require.Equal(float32(3), nevoenv.Aggregate(nevoenv.Mean, 0, rewards))
	require.Equal(float32(1), nevoenv.Aggregate(nevoenv.Min, 0, rewards))
	require.Equal(float32(5), nevoenv.Aggregate(nevoenv.Max, 0, rewards))
	// lower 0.5-quantile of {1,2,3,4,5} is {1,2}, mean 1.5
	require.Equal(float32(1.5), nevoenv.Aggregate(nevoenv.CVaR, 0.5, rewards))
}

func TestEvaluateFitnessBypassesAggregationForSingleSeed(t *testing.T) {
	require := require.New(t)
	calls := 0
	run := func(seed uint64) (float32, error) {
		calls++
		return float32(seed), nil
	}
	seedFor := func(i int) uint64 { return uint64(i + 100) }

	fitness, err := nevoenv.EvaluateFitness(run, seedFor, 1, nevoenv.Mean, 0.5)
	require.NoError(err)
	require.Equal(1, calls)
	require.Equal(float64(100), fitness)
}

func TestEvaluateFitnessAggregatesMultiSeed(t *testing.T) {
	require := require.New(t)
	rewards := map[uint64]float32{0: 1, 1: 2, 2: 3}
	run := func(seed uint64) (float32, error) { return rewards[seed], nil }
	seedFor := func(i int) uint64 { return uint64(i) }

	fitness, err := nevoenv.EvaluateFitness(run, seedFor, 3, nevoenv.Mean, 0.5)
	require.NoError(err)
	require.Equal(float64(2), fitness)
}
