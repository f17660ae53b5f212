// File: diversify.go
// Role: the five-step diversification procedure (spec §4.7) that births a
// replacement species when one is culled.
package lifecycle

import (
	"math/rand"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/mutate"
)

// topologyOps are the topology-altering operators diversification may
// apply, at elevated rates relative to ordinary reproduction.
func topologyOps(rate float32, w builder.WeightInit) []mutate.Op {
	return []mutate.Op{
		mutate.EdgeAdd(rate, w, 50),
		mutate.EdgeSplit(rate),
		mutate.EdgeRedirect(rate, w, 50),
		mutate.EdgeSwap(rate),
	}
}

// SelectSource picks a source species weighted by best_fitness_ever,
// positively reshifted so every species has a positive weight even when
// fitnesses are negative (spec §4.7 step 1).
func SelectSource(species []*core.Species, rng *rand.Rand) *core.Species {
	if len(species) == 0 {
		return nil
	}

	min := species[0].BestFitnessEver
	for _, s := range species[1:] {
		if s.BestFitnessEver < min {
			min = s.BestFitnessEver
		}
	}
	shift := -min + 1 // every weight strictly positive

	total := 0.0
	weights := make([]float64, len(species))
	for i, s := range species {
		weights[i] = s.BestFitnessEver + shift
		total += weights[i]
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return species[i]
		}
	}

	return species[len(species)-1]
}

// Diversify runs the five-step procedure: clone the source's topology,
// apply topology-altering mutations until at least one structural change
// is accepted, initialize the new species' individuals by transferring
// parameters from the source's elites where edges/nodes match by
// identity (drawing fresh init values elsewhere, and always carrying
// biases for preserved nodes), and reset stagnation statistics.
func Diversify(
	newID int,
	source *core.Species,
	sourceElites []*core.Individual,
	rng *rand.Rand,
	mutationRate float32,
	w builder.WeightInit,
	biasBound float32,
	populationSize int,
) (*core.Species, []*core.Individual) {
	clone := source.Clone()
	clone.ID = newID
	clone.BestFitnessEver = 0
	clone.GensSinceImprovement = 0
	clone.AgeGenerations = 0
	clone.FitnessVarianceLastGen = 0

	seed := builder.SeedIndividual(clone, rng, w, biasBound)
	ops := topologyOps(mutationRate, w)
	for attempt := 0; attempt < 100; attempt++ {
		mutated, err := mutate.Apply(clone, seed, rng, ops...)
		if err != nil {
			continue
		}
		if !sameEdgeSet(mutated.Edges, seed.Edges) {
			clone.TemplateEdges = append([]core.Edge(nil), mutated.Edges...)
			break
		}
	}

	individuals := make([]*core.Individual, populationSize)
	for i := range individuals {
		if i < len(sourceElites) {
			individuals[i] = transferParameters(clone, sourceElites[i], rng, w, biasBound)
		} else {
			individuals[i] = builder.SeedIndividual(clone, rng, w, biasBound)
		}
	}

	return clone, individuals
}

func sameEdgeSet(a, b []core.Edge) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[core.Edge]struct{}, len(a))
	for _, e := range a {
		seen[e] = struct{}{}
	}
	for _, e := range b {
		if _, ok := seen[e]; !ok {
			return false
		}
	}

	return true
}

// transferParameters builds a new individual on clone's topology, copying
// weights for edges that exist identically in both source and clone, and
// biases/activations for every node (nodes never change identity across
// diversification, since only edges can diverge — see core/types.go).
// Edges and nodes with no match draw fresh init values. Bias transfer is
// unconditional, never skipped, per the spec's explicit "must not drop
// biases" requirement.
func transferParameters(clone *core.Species, source *core.Individual, rng *rand.Rand, w builder.WeightInit, biasBound float32) *core.Individual {
	ind := core.NewIndividual(clone)

	sourceWeight := make(map[core.Edge]float32, len(source.Edges))
	for i, e := range source.Edges {
		sourceWeight[e] = source.Weights[i]
	}
	for i, e := range ind.Edges {
		if wt, ok := sourceWeight[e]; ok {
			ind.Weights[i] = wt
		} else {
			fanIn, fanOut := builder.FanInOut(ind.Edges, e.Dest)
			ind.Weights[i] = builder.SampleWeight(rng, w, fanIn, fanOut)
		}
	}

	for n := 0; n < ind.TotalNodes(); n++ {
		if n < len(source.Biases) {
			ind.Biases[n] = source.Biases[n]
		} else {
			ind.Biases[n] = (rng.Float32()*2 - 1) * biasBound
		}
		if n >= clone.InputCount() {
			if n < len(source.Activations) && allowedActivation(clone.Nodes[n].AllowedActivations, source.Activations[n]) {
				ind.Activations[n] = source.Activations[n]
			} else {
				allowed := clone.Nodes[n].AllowedActivations
				ind.Activations[n] = allowed[rng.Intn(len(allowed))]
			}
		}
	}

	return ind
}

func allowedActivation(allowed []activation.ID, chosen activation.ID) bool {
	for _, a := range allowed {
		if a == chosen {
			return true
		}
	}

	return false
}
