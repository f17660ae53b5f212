package engine

import (
	"sort"

	"github.com/evolab/nevo/core"
)

// SpeciesStats is the per-species half of a generation's observable
// snapshot (spec §6.3).
type SpeciesStats struct {
	ID                   int
	Best                 float64
	Mean                 float64
	Median               float64
	Age                  int
	GensSinceImprovement int
	FitnessVariance      float64
}

// Stats is a per-generation observable snapshot (spec §6.3), richer than
// core.Population.Stats: per-species detail, the global best, the
// lifetime species-created counter, and this generation's culling count.
type Stats struct {
	Species           []SpeciesStats
	GlobalBest        float64
	SpeciesEverCreated int
	CullingEvents     int
}

func (e *Engine) snapshotStats(culled int) Stats {
	species := e.pop.Species()
	st := Stats{Species: make([]SpeciesStats, 0, len(species)), GlobalBest: core.NegInfFitness, SpeciesEverCreated: e.created, CullingEvents: culled}

	for _, s := range species {
		individuals := e.pop.Individuals(s.ID)
		fitnesses := make([]float64, len(individuals))
		for i, ind := range individuals {
			fitnesses[i] = ind.Fitness
		}

		ss := SpeciesStats{
			ID:                   s.ID,
			Best:                 s.BestFitnessEver,
			Age:                  s.AgeGenerations,
			GensSinceImprovement: s.GensSinceImprovement,
			FitnessVariance:      s.FitnessVarianceLastGen,
			Mean:                 mean(fitnesses),
			Median:               median(fitnesses),
		}
		st.Species = append(st.Species, ss)

		if ss.Best > st.GlobalBest {
			st.GlobalBest = ss.Best
		}
	}

	return st
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}
