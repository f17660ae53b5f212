// File: structural.go
// Role: the six structural mutation operators from spec §4.5. Every
// operator that changes ind.Edges ends by calling
// ind.RecomputeRowPlan(s.Rows) (sort + row plan rebuild) as the spec
// requires, and keeps Weights/Biases/Activations/NodeParams in sync:
// insertion appends a freshly initialized slot, deletion drops its slot.
package mutate

import (
	"math/rand"

	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/core"
)

// EdgeAdd attempts, with probability p, to insert one new legal edge
// (row(u) < row(v), v non-input, (u,v) absent, indegree(v) < max) drawn
// from the species' allowed candidates. If maxAttempts random draws find
// no legal candidate, it no-ops. The new weight is drawn via w.
func EdgeAdd(p float32, w builder.WeightInit, maxAttempts int) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p {
			return false
		}
		inputCount := s.InputCount()
		total := s.TotalNodes()
		if total <= inputCount {
			return false
		}

		for attempt := 0; attempt < maxAttempts; attempt++ {
			v := inputCount + rng.Intn(total-inputCount)
			bound := s.Rows[s.RowOf(v)].NodeStart
			if bound == 0 {
				continue
			}
			u := rng.Intn(bound)
			if ind.HasEdge(s.Rows, u, v) {
				continue
			}
			if ind.InDegree(s.Rows, v) >= s.MaxInDegree {
				continue
			}

			fanIn, fanOut := builder.FanInOut(ind.Edges, v)
			weight := builder.SampleWeight(rng, w, fanIn, fanOut)
			insertEdgeSlot(ind, core.Edge{Source: u, Dest: v}, weight)
			ind.RecomputeRowPlan(s.Rows)

			return true
		}

		return false
	}
}

// EdgeDeleteRandom attempts, with probability p, to remove one random
// edge. It skips the deletion if it would leave an output node with zero
// in-edges.
func EdgeDeleteRandom(p float32) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p || len(ind.Edges) == 0 {
			return false
		}
		i := rng.Intn(len(ind.Edges))
		victim := ind.Edges[i]
		if s.RowOf(victim.Dest) == s.OutputRow() && ind.InDegree(s.Rows, victim.Dest) <= 1 {
			return false
		}
		removeEdgeSlot(ind, i)
		ind.RecomputeRowPlan(s.Rows)

		return true
	}
}

// EdgeSplit attempts, with probability p, to pick an edge (u, v) and a
// legal intermediate hidden node m with row(u) < row(m) < row(v), then
// replace (u, v) with (u, m) and (m, v). The first new edge keeps the old
// weight, the second is initialized to 1.0, so an identity-like m leaves
// the network's behavior unchanged.
func EdgeSplit(p float32) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p || len(ind.Edges) == 0 {
			return false
		}
		i := rng.Intn(len(ind.Edges))
		e := ind.Edges[i]
		w := ind.Weights[i]

		rowU, rowV := s.RowOf(e.Source), s.RowOf(e.Dest)
		var candidates []int
		for m := 0; m < s.TotalNodes(); m++ {
			rm := s.RowOf(m)
			if rm > rowU && rm < rowV {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			return false
		}
		m := candidates[rng.Intn(len(candidates))]
		if ind.HasEdge(s.Rows, e.Source, m) || ind.HasEdge(s.Rows, m, e.Dest) {
			return false
		}
		if ind.InDegree(s.Rows, m) >= s.MaxInDegree {
			return false
		}

		removeEdgeSlot(ind, i)
		insertEdgeSlot(ind, core.Edge{Source: e.Source, Dest: m}, w)
		insertEdgeSlot(ind, core.Edge{Source: m, Dest: e.Dest}, 1.0)
		ind.RecomputeRowPlan(s.Rows)

		return true
	}
}

// EdgeRedirect attempts, with probability p, to pick an edge and replace
// either its destination or its source with a different legal endpoint,
// retrying up to maxAttempts times before giving up.
func EdgeRedirect(p float32, w builder.WeightInit, maxAttempts int) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p || len(ind.Edges) == 0 {
			return false
		}

		for attempt := 0; attempt < maxAttempts; attempt++ {
			i := rng.Intn(len(ind.Edges))
			e := ind.Edges[i]

			if rng.Intn(2) == 0 {
				bound := s.Rows[s.RowOf(e.Dest)].NodeStart
				if bound == 0 {
					continue
				}
				newSource := rng.Intn(bound)
				if newSource == e.Source || ind.HasEdge(s.Rows, newSource, e.Dest) {
					continue
				}
				ind.Edges[i] = core.Edge{Source: newSource, Dest: e.Dest}
				ind.RecomputeRowPlan(s.Rows)

				return true
			}

			inputCount := s.InputCount()
			total := s.TotalNodes()
			candidateSpan := total - inputCount
			if candidateSpan <= 0 {
				continue
			}
			newDest := inputCount + rng.Intn(candidateSpan)
			if newDest == e.Dest || s.RowOf(e.Source) >= s.RowOf(newDest) {
				continue
			}
			if ind.HasEdge(s.Rows, e.Source, newDest) || ind.InDegree(s.Rows, newDest) >= s.MaxInDegree {
				continue
			}
			ind.Edges[i] = core.Edge{Source: e.Source, Dest: newDest}
			ind.RecomputeRowPlan(s.Rows)

			return true
		}

		return false
	}
}

// EdgeSwap attempts, with probability p, to pick two distinct edges and
// swap either their destinations or their sources, reverting if the swap
// would violate acyclicity, in-degree, or uniqueness.
func EdgeSwap(p float32) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p || len(ind.Edges) < 2 {
			return false
		}
		i := rng.Intn(len(ind.Edges))
		j := rng.Intn(len(ind.Edges) - 1)
		if j >= i {
			j++
		}
		a, b := ind.Edges[i], ind.Edges[j]

		swapDest := rng.Intn(2) == 0
		var na, nb core.Edge
		if swapDest {
			na, nb = core.Edge{Source: a.Source, Dest: b.Dest}, core.Edge{Source: b.Source, Dest: a.Dest}
		} else {
			na, nb = core.Edge{Source: b.Source, Dest: a.Dest}, core.Edge{Source: a.Source, Dest: b.Dest}
		}
		if !legalEdge(s, na) || !legalEdge(s, nb) || na == nb {
			return false
		}

		trial := append([]core.Edge(nil), ind.Edges...)
		trial[i], trial[j] = na, nb
		if hasDuplicate(trial) || indegreeExceeded(s, trial) {
			return false
		}

		ind.Edges[i], ind.Edges[j] = na, nb
		ind.RecomputeRowPlan(s.Rows)

		return true
	}
}

// WeakEdgePruning scans every edge with probability p and deletes those
// whose |weight| is below threshold. Spec-mandated to run after the other
// structural operators within a generation; callers must order their
// Apply(... , ops...) call accordingly (this operator does not enforce
// ordering itself).
func WeakEdgePruning(p, threshold float32) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		if rng.Float32() >= p {
			return false
		}
		changed := false
		i := 0
		for i < len(ind.Edges) {
			if absf32(ind.Weights[i]) < threshold {
				removeEdgeSlot(ind, i)
				changed = true
				continue
			}
			i++
		}
		if changed {
			ind.RecomputeRowPlan(s.Rows)
		}

		return changed
	}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}

func legalEdge(s *core.Species, e core.Edge) bool {
	return s.RowOf(e.Source) < s.RowOf(e.Dest) && e.Dest >= s.InputCount()
}

func hasDuplicate(edges []core.Edge) bool {
	seen := make(map[core.Edge]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e]; ok {
			return true
		}
		seen[e] = struct{}{}
	}

	return false
}

func indegreeExceeded(s *core.Species, edges []core.Edge) bool {
	indeg := make(map[int]int, len(edges))
	for _, e := range edges {
		indeg[e.Dest]++
		if indeg[e.Dest] > s.MaxInDegree {
			return true
		}
	}

	return false
}

// insertEdgeSlot appends a new edge and its weight; callers recompute the
// row plan afterward.
func insertEdgeSlot(ind *core.Individual, e core.Edge, weight float32) {
	ind.Edges = append(ind.Edges, e)
	ind.Weights = append(ind.Weights, weight)
}

// removeEdgeSlot drops edge index i and its parallel weight slot.
func removeEdgeSlot(ind *core.Individual, i int) {
	ind.Edges = append(ind.Edges[:i], ind.Edges[i+1:]...)
	ind.Weights = append(ind.Weights[:i], ind.Weights[i+1:]...)
}
