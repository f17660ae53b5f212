package nevoio

import (
	"io"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/core"
)

// WriteIndividual encodes ind: species id, edges, weights, biases, node
// params, activations, fitness, and age. The edge array is written
// alongside the individual (rather than assumed to equal its species'
// TemplateEdges) because structural mutation lets an individual's edges
// diverge from the template.
func WriteIndividual(w io.Writer, ind *core.Individual) error {
	if err := writeI64(w, int64(ind.SpeciesID)); err != nil {
		return err
	}

	if err := writeI64(w, int64(len(ind.Edges))); err != nil {
		return err
	}
	for i, e := range ind.Edges {
		if err := writeI64(w, int64(e.Source)); err != nil {
			return err
		}
		if err := writeI64(w, int64(e.Dest)); err != nil {
			return err
		}
		if err := writeF32(w, ind.Weights[i]); err != nil {
			return err
		}
	}

	if err := writeI64(w, int64(len(ind.Biases))); err != nil {
		return err
	}
	for _, b := range ind.Biases {
		if err := writeF32(w, b); err != nil {
			return err
		}
	}

	for _, p := range ind.NodeParams {
		if err := writeF32(w, p); err != nil {
			return err
		}
	}

	for _, a := range ind.Activations {
		if err := writeI64(w, int64(a)); err != nil {
			return err
		}
	}

	if err := writeF64(w, ind.Fitness); err != nil {
		return err
	}
	return writeI64(w, int64(ind.Age))
}

// ReadIndividual decodes an Individual written by WriteIndividual. The
// row plan is recomputed from species s rather than persisted.
func ReadIndividual(r io.Reader, s *core.Species) (*core.Individual, error) {
	speciesID, err := readI64(r)
	if err != nil {
		return nil, err
	}

	edgeCount, err := readI64(r)
	if err != nil {
		return nil, err
	}
	edges := make([]core.Edge, edgeCount)
	weights := make([]float32, edgeCount)
	for i := range edges {
		src, err := readI64(r)
		if err != nil {
			return nil, err
		}
		dst, err := readI64(r)
		if err != nil {
			return nil, err
		}
		wt, err := readF32(r)
		if err != nil {
			return nil, err
		}
		edges[i] = core.Edge{Source: int(src), Dest: int(dst)}
		weights[i] = wt
	}

	nodeCount, err := readI64(r)
	if err != nil {
		return nil, err
	}
	biases := make([]float32, nodeCount)
	for i := range biases {
		b, err := readF32(r)
		if err != nil {
			return nil, err
		}
		biases[i] = b
	}

	nodeParams := make([]float32, nodeCount*4)
	for i := range nodeParams {
		p, err := readF32(r)
		if err != nil {
			return nil, err
		}
		nodeParams[i] = p
	}

	activations := make([]activation.ID, nodeCount)
	for i := range activations {
		a, err := readI64(r)
		if err != nil {
			return nil, err
		}
		activations[i] = activation.ID(a)
	}

	fitness, err := readF64(r)
	if err != nil {
		return nil, err
	}
	age, err := readI64(r)
	if err != nil {
		return nil, err
	}

	ind := &core.Individual{
		SpeciesID:   int(speciesID),
		Edges:       edges,
		Weights:     weights,
		Biases:      biases,
		NodeParams:  nodeParams,
		Activations: activations,
		Fitness:     fitness,
		Age:         int(age),
	}
	ind.RowPlan = core.ComputeRowPlan(s.Rows, ind.Edges)

	return ind, nil
}
