package lifecycle

import "github.com/evolab/nevo/core"

// Stats holds the four per-species-per-generation statistics spec §4.7
// names. It is a snapshot copied out of (and, after update, back into) a
// *core.Species.
type Stats struct {
	BestFitnessEver        float64
	GensSinceImprovement   int
	AgeGenerations         int
	FitnessVarianceLastGen float64
}

// SnapshotStats reads s's current statistics.
func SnapshotStats(s *core.Species) Stats {
	return Stats{
		BestFitnessEver:        s.BestFitnessEver,
		GensSinceImprovement:   s.GensSinceImprovement,
		AgeGenerations:         s.AgeGenerations,
		FitnessVarianceLastGen: s.FitnessVarianceLastGen,
	}
}

// UpdateStats advances s's statistics for one completed generation given
// the generation's realized individual fitnesses. bestThisGen is the
// maximum of fitnesses; if it beats s.BestFitnessEver, GensSinceImprovement
// resets to zero, otherwise it increments. AgeGenerations always
// increments.
func UpdateStats(s *core.Species, fitnesses []float64) {
	if len(fitnesses) == 0 {
		s.AgeGenerations++
		return
	}

	bestThisGen := fitnesses[0]
	mean := 0.0
	for _, f := range fitnesses {
		if f > bestThisGen {
			bestThisGen = f
		}
		mean += f
	}
	mean /= float64(len(fitnesses))

	variance := 0.0
	for _, f := range fitnesses {
		d := f - mean
		variance += d * d
	}
	variance /= float64(len(fitnesses))
	s.FitnessVarianceLastGen = variance

	if bestThisGen > s.BestFitnessEver {
		s.BestFitnessEver = bestThisGen
		s.GensSinceImprovement = 0
	} else {
		s.GensSinceImprovement++
	}
	s.AgeGenerations++
}
