// File: methods_edges.go
// Role: Edge array maintenance shared by package builder (initial
//       construction) and package mutate (structural operators):
//       sorting by (row(Dest), Dest, Source) and recomputing the row plan
//       that falls out of that order.
// Determinism: SortEdges uses a stable comparison key (row, dest, source),
//       so equal-key edges (which invariant uniqueness forbids anyway)
//       never reorder between calls.
package core

import "sort"

// SortEdges sorts edges in place by (row(Dest), Dest, Source), the order
// the forward evaluator and the row plan both require.
func SortEdges(rows []Row, edges []Edge) {
	rowOf := func(n int) int { return RowOf(rows, n) }
	sort.Slice(edges, func(i, j int) bool {
		ri, rj := rowOf(edges[i].Dest), rowOf(edges[j].Dest)
		if ri != rj {
			return ri < rj
		}
		if edges[i].Dest != edges[j].Dest {
			return edges[i].Dest < edges[j].Dest
		}
		return edges[i].Source < edges[j].Source
	})
}

// RowOf returns the row index owning node n using a binary search over row
// boundaries. It is the free-function form of Species.RowOf, usable
// wherever only the row slice (not a full *Species) is in scope.
func RowOf(rows []Row, n int) int {
	lo, hi := 0, len(rows)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if rows[mid].NodeStart <= n {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// ComputeRowPlan derives the per-row (node range, edge range) plan from
// rows and an edge array that is already sorted by (row(Dest), Dest,
// Source). Complexity: O(rows + edges).
func ComputeRowPlan(rows []Row, edges []Edge) []RowPlanEntry {
	plan := make([]RowPlanEntry, len(rows))
	edgeIdx := 0
	for r, row := range rows {
		start := edgeIdx
		for edgeIdx < len(edges) && RowOf(rows, edges[edgeIdx].Dest) == r {
			edgeIdx++
		}
		plan[r] = RowPlanEntry{
			NodeStart: row.NodeStart,
			NodeCount: row.NodeCount,
			EdgeStart: start,
			EdgeCount: edgeIdx - start,
		}
	}

	return plan
}

// RecomputeRowPlan sorts ind.Edges and rebuilds ind.RowPlan from rows. Call
// this after any structural change to ind.Edges (spec §4.5: "the edge
// array must be re-sorted and row plans recomputed"). When ind.Weights is
// parallel to ind.Edges, each weight moves with its edge.
func (ind *Individual) RecomputeRowPlan(rows []Row) {
	if len(ind.Weights) != len(ind.Edges) {
		SortEdges(rows, ind.Edges)
	} else {
		weightOf := make(map[Edge]float32, len(ind.Edges))
		for i, e := range ind.Edges {
			weightOf[e] = ind.Weights[i]
		}
		SortEdges(rows, ind.Edges)
		for i, e := range ind.Edges {
			ind.Weights[i] = weightOf[e]
		}
	}
	ind.RowPlan = ComputeRowPlan(rows, ind.Edges)
}

// InDegree returns the number of edges in ind.Edges with the given dest,
// restricted via the row plan to that node's row. Complexity: O(row edge
// count).
func (ind *Individual) InDegree(rows []Row, dest int) int {
	row := RowOf(rows, dest)
	plan := ind.RowPlan[row]
	n := 0
	for _, e := range ind.Edges[plan.EdgeStart : plan.EdgeStart+plan.EdgeCount] {
		if e.Dest == dest {
			n++
		}
	}

	return n
}

// HasEdge reports whether ind has an edge (source, dest), scanning only
// dest's row via the row plan.
func (ind *Individual) HasEdge(rows []Row, source, dest int) bool {
	row := RowOf(rows, dest)
	plan := ind.RowPlan[row]
	for _, e := range ind.Edges[plan.EdgeStart : plan.EdgeStart+plan.EdgeCount] {
		if e.Source == source && e.Dest == dest {
			return true
		}
	}

	return false
}
