package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/mutate"
)

func fixture(t *testing.T) (*core.Species, *core.Individual) {
	allowed := []activation.ID{activation.Tanh, activation.ReLU, activation.Sigmoid}
	s, err := builder.NewSpecies(1,
		builder.AddInputRow(2),
		builder.AddHiddenRow(3, allowed, 1),
		builder.AddOutputRow(2, allowed),
		builder.WithMaxInDegree(12),
	)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	require.NoError(t, builder.SeedTemplate(s, builder.Dense(0.8), rng))
	ind := builder.SeedIndividual(s, rng, builder.WeightInit{Kind: builder.GlorotUniform}, 0.1)

	return s, ind
}

func TestWeightL1ShrinkIdentityAtFactorOne(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	rng := rand.New(rand.NewSource(2))
	before := append([]float32(nil), ind.Weights...)

	mutated, err := mutate.Apply(s, ind, rng, mutate.WeightL1Shrink(1.0, 1.0))
	require.NoError(err)
	require.Equal(before, mutated.Weights)
}

func TestZeroRateOperatorsAreNoOps(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	rng := rand.New(rand.NewSource(3))
	before := ind.Clone()

	mutated, err := mutate.Apply(s, ind, rng,
		mutate.WeightJitter(0, 0.1, 1e-3),
		mutate.WeightReset(0, 1),
		mutate.BiasJitter(0, 0.1, 1e-3),
		mutate.BiasReset(0, 1),
		mutate.ActivationSwap(0),
		mutate.NodeParamMutate(0, 0.1),
	)
	require.NoError(err)
	require.Equal(before.Weights, mutated.Weights)
	require.Equal(before.Biases, mutated.Biases)
	require.Equal(before.Activations, mutated.Activations)
}

func TestEdgeAddProducesValidIndividual(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	// sparsify first so EdgeAdd has room to find a legal candidate
	rng := rand.New(rand.NewSource(4))
	require.NoError(builder.SeedTemplate(s, builder.Sparse(1), rng))
	ind = builder.SeedIndividual(s, rng, builder.WeightInit{Kind: builder.HeUniform}, 0.1)

	mutated, err := mutate.Apply(s, ind, rng, mutate.EdgeAdd(1.0, builder.WeightInit{Kind: builder.GlorotUniform}, 50))
	require.NoError(err)
	require.NoError(mutated.Validate(s))
}

func TestEdgeDeleteRandomKeepsOutputInDegreeAboveZero(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		mutated, err := mutate.Apply(s, ind, rng, mutate.EdgeDeleteRandom(1.0))
		require.NoError(err)
		require.NoError(mutated.Validate(s))
		for v := s.Rows[s.OutputRow()].NodeStart; v < s.TotalNodes(); v++ {
			require.GreaterOrEqual(mutated.InDegree(s.Rows, v), 1, "output node %d lost its last in-edge", v)
		}
		ind = mutated
	}
}

func weightsByEdge(ind *core.Individual) map[core.Edge]float32 {
	m := make(map[core.Edge]float32, len(ind.Edges))
	for i, e := range ind.Edges {
		m[e] = ind.Weights[i]
	}

	return m
}

func TestEdgeSplitPreservesWeightOnFirstHalf(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 20; i++ {
		before := len(ind.Edges)
		mutated, err := mutate.Apply(s, ind, rng, mutate.EdgeSplit(1.0))
		require.NoError(err)
		require.NoError(mutated.Validate(s))
		if len(mutated.Edges) == before+1 {
			// a split was accepted: the removed edge (u, v) became (u, m),
			// carrying the old weight, and (m, v), weighted 1.0
			old, now := weightsByEdge(ind), weightsByEdge(mutated)
			for e, w := range old {
				if _, kept := now[e]; kept {
					continue
				}
				for ne, nw := range now {
					if _, existed := old[ne]; existed {
						continue
					}
					if ne.Source == e.Source {
						require.Equal(w, nw)
					} else {
						require.Equal(float32(1.0), nw)
					}
				}
			}
			return
		}
		ind = mutated
	}
}

func TestEdgeSwapProducesValidIndividual(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	rng := rand.New(rand.NewSource(7))
	mutated, err := mutate.Apply(s, ind, rng, mutate.EdgeSwap(1.0))
	require.NoError(err)
	require.NoError(mutated.Validate(s))
}

func TestWeakEdgePruningRemovesSmallWeights(t *testing.T) {
	require := require.New(t)
	s, ind := fixture(t)
	for i := range ind.Weights {
		ind.Weights[i] = 0.001
	}
	rng := rand.New(rand.NewSource(8))
	mutated, err := mutate.Apply(s, ind, rng, mutate.WeakEdgePruning(1.0, 0.01))
	require.NoError(err)
	require.Empty(mutated.Edges)
}
