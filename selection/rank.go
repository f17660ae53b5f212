package selection

import "github.com/evolab/nevo/core"

// ByFitnessDesc sorts individuals by Fitness descending, ties broken by
// their position in the input slice (spec §4.3 "ties broken by insertion
// order" / §4.6 "stable tie-break by lower individual index").
func ByFitnessDesc(individuals []*core.Individual) []*core.Individual {
	ranked := append([]*core.Individual(nil), individuals...)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Fitness > ranked[j-1].Fitness; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	return ranked
}
