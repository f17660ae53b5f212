// File: reproduce.go
// Role: elitism, parent-pool filtering, tournament selection, and the
// offspring loop (spec §4.3, §4.6).
package selection

import (
	"math/rand"

	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/mutate"
)

// ParentPool retains the top parentPoolPercentage fraction of ranked
// (already fitness-descending) individuals as eligible parents, keeping
// at least one.
func ParentPool(ranked []*core.Individual, parentPoolPercentage float64) []*core.Individual {
	n := int(float64(len(ranked)) * parentPoolPercentage)
	if n < 1 {
		n = 1
	}
	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}

// Tournament samples tournamentSize indices from pool (distinct if
// possible, with replacement otherwise) and returns the argmax by
// fitness, ties broken by lower pool index.
func Tournament(pool []*core.Individual, tournamentSize int, rng *rand.Rand) *core.Individual {
	if len(pool) == 0 {
		return nil
	}

	distinct := tournamentSize <= len(pool)
	var picks []int
	if distinct {
		picks = rng.Perm(len(pool))[:tournamentSize]
	} else {
		picks = make([]int, tournamentSize)
		for i := range picks {
			picks[i] = rng.Intn(len(pool))
		}
	}

	best := picks[0]
	for _, idx := range picks[1:] {
		if pool[idx].Fitness > pool[best].Fitness || (pool[idx].Fitness == pool[best].Fitness && idx < best) {
			best = idx
		}
	}

	return pool[best]
}

// Reproduce runs one species' full generation step: elitism (the top
// eliteCount individuals survive verbatim), then K-eliteCount offspring
// are generated by tournament-selecting a parent from the parent pool,
// cloning it, and running ops through mutate.Apply. Offspring whose
// mutation is rolled back (ops produced an invalid individual) still
// count toward the offspring quota — mutate.Apply returns a fresh,
// unmutated clone of the parent in that case, a legal individual and a
// distinct pointer from the parent and from any other rolled-back sibling.
func Reproduce(
	s *core.Species,
	individuals []*core.Individual,
	eliteCount int,
	parentPoolPercentage float64,
	tournamentSize int,
	rng *rand.Rand,
	ops ...mutate.Op,
) []*core.Individual {
	ranked := ByFitnessDesc(individuals)
	k := len(ranked)
	if eliteCount > k {
		eliteCount = k
	}

	next := make([]*core.Individual, 0, k)
	for _, elite := range ranked[:eliteCount] {
		next = append(next, elite.Clone())
	}

	pool := ParentPool(ranked, parentPoolPercentage)
	for len(next) < k {
		parent := Tournament(pool, tournamentSize, rng)
		offspring, _ := mutate.Apply(s, parent, rng, ops...)
		next = append(next, offspring)
	}

	return next
}
