// File: methods_clone.go
// Role: Deep-copy primitives for Species and Individual.
// Determinism: Clone never consults any RNG; it is a pure structural copy.
package core

import "github.com/evolab/nevo/activation"

// Clone returns a deep copy of s. Used by lifecycle.Diversify before
// applying topology-altering mutations to a new species, and by tests that
// need to mutate a topology without disturbing a shared fixture.
func (s *Species) Clone() *Species {
	clone := &Species{
		ID:                     s.ID,
		MaxInDegree:            s.MaxInDegree,
		BestFitnessEver:        s.BestFitnessEver,
		GensSinceImprovement:   s.GensSinceImprovement,
		AgeGenerations:         s.AgeGenerations,
		FitnessVarianceLastGen: s.FitnessVarianceLastGen,
	}
	clone.Rows = append([]Row(nil), s.Rows...)
	clone.TemplateEdges = append([]Edge(nil), s.TemplateEdges...)
	clone.Nodes = make([]NodeSpec, len(s.Nodes))
	for i, n := range s.Nodes {
		allowed := make([]activation.ID, len(n.AllowedActivations))
		copy(allowed, n.AllowedActivations)
		clone.Nodes[i] = NodeSpec{Row: n.Row, AllowedActivations: allowed}
	}

	return clone
}

// Clone returns a deep copy of ind, suitable for the copy-on-write rollback
// pattern used throughout package mutate: mutate the clone, Validate it,
// and only keep it if Validate succeeds.
func (ind *Individual) Clone() *Individual {
	clone := &Individual{
		SpeciesID: ind.SpeciesID,
		Fitness:   ind.Fitness,
		Age:       ind.Age,
	}
	clone.Edges = append([]Edge(nil), ind.Edges...)
	clone.RowPlan = append([]RowPlanEntry(nil), ind.RowPlan...)
	clone.Weights = append([]float32(nil), ind.Weights...)
	clone.Biases = append([]float32(nil), ind.Biases...)
	clone.NodeParams = append([]float32(nil), ind.NodeParams...)
	clone.Activations = append([]activation.ID(nil), ind.Activations...)

	return clone
}
