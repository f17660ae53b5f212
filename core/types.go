package core

import (
	"math"

	"github.com/evolab/nevo/activation"
)

// RowKind classifies a Row as input, hidden, or output.
type RowKind int

const (
	RowInput RowKind = iota
	RowHidden
	RowOutput
)

// Row describes one topological layer: its kind, the number of nodes it
// holds, and the start index of those nodes in the per-node arrays. Rows
// are numbered in evaluation order; every edge goes from a lower-indexed
// row to a higher-indexed row.
type Row struct {
	Kind      RowKind
	NodeStart int
	NodeCount int
}

// RowPlanEntry gives the evaluator everything it needs to process one row
// in a single contiguous sweep: the node range owned by the row, and the
// sub-range of an individual's edge array whose destinations lie in this
// row.
type RowPlanEntry struct {
	NodeStart int
	NodeCount int
	EdgeStart int
	EdgeCount int
}

// Edge is an ordered (Source, Dest) pair of node indices. An individual's
// edge array is always kept sorted by (row(Dest), Dest, Source) so that
// evaluating one row sweeps a contiguous sub-range of it.
type Edge struct {
	Source int
	Dest   int
}

// NodeSpec is the per-node, species-owned description shared by every
// individual of the species: which row the node lives in, and which
// activations an individual may choose for it. Node count, row
// assignment, and allowed-activation vocabularies never change after a
// species is built — structural mutation only ever adds, removes, or
// redirects edges (spec Non-goal: no dynamic topology resizing), so these
// stay genuinely shared, immutable, per-species data.
type NodeSpec struct {
	Row                int
	AllowedActivations []activation.ID
}

// Species is the shared, per-lineage topology metadata owned by a group of
// Individuals: row layout, per-node specs, and the max-in-degree bound,
// none of which ever change after the species is built. TemplateEdges is
// the edge set individuals are seeded with at species-creation time (by
// package builder) or at diversification time (by package lifecycle);
// individuals subsequently own independent copies of their edge set, which
// structural mutation (package mutate) may diverge from the template and
// from each other — this is why the edge array lives on Individual, not
// here (see DESIGN.md, "species vs. individual topology ownership").
type Species struct {
	ID int

	Rows          []Row
	Nodes         []NodeSpec
	MaxInDegree   int
	TemplateEdges []Edge // sorted by (row(Dest), Dest, Source)

	// Stagnation statistics, maintained by package lifecycle.
	BestFitnessEver        float64
	GensSinceImprovement   int
	AgeGenerations         int
	FitnessVarianceLastGen float64
}

// TotalNodes returns the number of nodes across all rows.
func (s *Species) TotalNodes() int {
	if len(s.Rows) == 0 {
		return 0
	}
	last := s.Rows[len(s.Rows)-1]
	return last.NodeStart + last.NodeCount
}

// InputRow and OutputRow return the index of the first and last rows. A
// valid Species always has row 0 as input and the last row as output.
func (s *Species) InputRow() int  { return 0 }
func (s *Species) OutputRow() int { return len(s.Rows) - 1 }

// InputCount and OutputCount are convenience accessors used by the
// environment boundary check in package nevoenv.
func (s *Species) InputCount() int  { return s.Rows[s.InputRow()].NodeCount }
func (s *Species) OutputCount() int { return s.Rows[s.OutputRow()].NodeCount }

// RowOf returns the row index owning node n using a binary search over row
// boundaries. Complexity: O(log rows).
func (s *Species) RowOf(n int) int {
	return RowOf(s.Rows, n)
}

// NewIndividual allocates an Individual for s, seeded with a copy of the
// species' TemplateEdges and a freshly computed row plan. Weights/Biases/
// NodeParams/Activations are left zero-valued; package builder fills them
// from the configured init strategies.
func NewIndividual(s *Species) *Individual {
	n := s.TotalNodes()
	ind := &Individual{
		SpeciesID:   s.ID,
		Edges:       append([]Edge(nil), s.TemplateEdges...),
		Weights:     make([]float32, len(s.TemplateEdges)),
		Biases:      make([]float32, n),
		NodeParams:  make([]float32, n*4),
		Activations: make([]activation.ID, n),
		Fitness:     NegInfFitness,
	}
	ind.RowPlan = ComputeRowPlan(s.Rows, ind.Edges)

	return ind
}

// Individual belongs to exactly one Species (by SpeciesID, looked up on
// demand — no owning back-pointer) and owns everything that can diverge
// from its species siblings: its own edge set and row plan, one weight
// per edge, one bias and one chosen Activation per node, a four-float
// parameter vector per node, a cached Fitness, and an Age in generations.
type Individual struct {
	SpeciesID int

	Edges   []Edge // sorted by (row(Dest), Dest, Source)
	RowPlan []RowPlanEntry

	Weights     []float32
	Biases      []float32
	NodeParams  []float32 // flat, length TotalNodes*4
	Activations []activation.ID

	Fitness float64
	Age     int
}

// NegInfFitness is the sentinel "unset" fitness value used until an
// individual is evaluated, and the value assigned on an environment
// boundary violation or episode timeout (spec §7).
var NegInfFitness = math.Inf(-1)

// TotalNodes returns the number of nodes this individual carries
// parameters for (equal to its species' TotalNodes()).
func (ind *Individual) TotalNodes() int {
	return len(ind.Activations)
}

// NodeParamSlot returns the four-float parameter slice for node n.
func (ind *Individual) NodeParamSlot(n int) [4]float32 {
	base := n * 4
	return [4]float32{
		ind.NodeParams[base],
		ind.NodeParams[base+1],
		ind.NodeParams[base+2],
		ind.NodeParams[base+3],
	}
}

// SetNodeParamSlot writes back a four-float parameter slice for node n.
func (ind *Individual) SetNodeParamSlot(n int, p [4]float32) {
	base := n * 4
	copy(ind.NodeParams[base:base+4], p[:])
}
