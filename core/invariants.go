// File: invariants.go
// Role: The invariant validator from spec component 10 — checked after
//       every build (package builder) and every mutation (package mutate),
//       and by property tests (spec §8).
// Policy: Validate never panics; it returns the first violated invariant
//       wrapped in a sentinel (ErrEdgeNotFeedForward, ErrInDegreeExceeded,
//       ErrDuplicateEdge, ErrActivationNotAllowed, or ErrInvariantViolation
//       for every other check) so callers can log which one failed and
//       roll back the offending change. Output reachability and the
//       species-count bound are not checked here.
package core

import (
	"fmt"

	"github.com/evolab/nevo/activation"
)

// Validate checks the species-level invariants that never change after a
// species is built: row layout is contiguous and ascending, every node
// has a nonempty allowed-activation set, and the template edge set itself
// satisfies acyclicity, in-degree, uniqueness, and sortedness.
func (s *Species) Validate() error {
	if len(s.Rows) < 2 {
		return fmt.Errorf("species %d: fewer than 2 rows: %w", s.ID, ErrInvariantViolation)
	}
	if s.Rows[0].Kind != RowInput {
		return fmt.Errorf("species %d: row 0 is not an input row: %w", s.ID, ErrInvariantViolation)
	}
	if s.Rows[len(s.Rows)-1].Kind != RowOutput {
		return fmt.Errorf("species %d: last row is not an output row: %w", s.ID, ErrInvariantViolation)
	}
	wantStart := 0
	for i, row := range s.Rows {
		if row.NodeStart != wantStart || row.NodeCount <= 0 {
			return fmt.Errorf("species %d: row %d layout discontinuous (start=%d count=%d want start=%d): %w",
				s.ID, i, row.NodeStart, row.NodeCount, wantStart, ErrInvariantViolation)
		}
		wantStart += row.NodeCount
	}
	if len(s.Nodes) != s.TotalNodes() {
		return fmt.Errorf("species %d: %d node specs for %d nodes: %w",
			s.ID, len(s.Nodes), s.TotalNodes(), ErrInvariantViolation)
	}
	for n, spec := range s.Nodes {
		if s.RowOf(n) != spec.Row {
			return fmt.Errorf("species %d: node %d claims row %d, row layout says %d: %w",
				s.ID, n, spec.Row, s.RowOf(n), ErrInvariantViolation)
		}
		if n >= s.InputCount() && len(spec.AllowedActivations) == 0 {
			return fmt.Errorf("species %d: non-input node %d has no allowed activations: %w",
				s.ID, n, ErrInvariantViolation)
		}
		for _, a := range spec.AllowedActivations {
			if !activation.Valid(a) {
				return fmt.Errorf("species %d: node %d allows invalid activation %d: %w",
					s.ID, n, a, ErrInvariantViolation)
			}
		}
	}

	return validateEdgeSet(s, s.TemplateEdges, "template")
}

// Validate checks every invariant in spec §3.2 that depends on an
// individual's own edge set and parameters against its species s.
func (ind *Individual) Validate(s *Species) error {
	if ind.SpeciesID != s.ID {
		return fmt.Errorf("individual: species id %d does not match species %d: %w",
			ind.SpeciesID, s.ID, ErrInvariantViolation)
	}
	if err := validateEdgeSet(s, ind.Edges, "individual"); err != nil {
		return err
	}
	n := s.TotalNodes()
	if len(ind.Weights) != len(ind.Edges) {
		return fmt.Errorf("individual: len(weights)=%d != len(edges)=%d: %w",
			len(ind.Weights), len(ind.Edges), ErrInvariantViolation)
	}
	if len(ind.Biases) != n {
		return fmt.Errorf("individual: len(biases)=%d != total nodes=%d: %w",
			len(ind.Biases), n, ErrInvariantViolation)
	}
	if len(ind.Activations) != n {
		return fmt.Errorf("individual: len(activations)=%d != total nodes=%d: %w",
			len(ind.Activations), n, ErrInvariantViolation)
	}
	if len(ind.NodeParams) != n*4 {
		return fmt.Errorf("individual: len(nodeParams)=%d != 4*total nodes=%d: %w",
			len(ind.NodeParams), n*4, ErrInvariantViolation)
	}
	for node, chosen := range ind.Activations {
		if node < s.InputCount() {
			continue // input nodes are inert and carry no activation choice
		}
		if !allowedActivation(s.Nodes[node].AllowedActivations, chosen) {
			return fmt.Errorf("individual: node %d activation %d not in allowed set: %w",
				node, chosen, ErrActivationNotAllowed)
		}
	}
	expectedPlan := ComputeRowPlan(s.Rows, append([]Edge(nil), ind.Edges...))
	if len(expectedPlan) != len(ind.RowPlan) {
		return fmt.Errorf("individual: row plan length mismatch: %w", ErrInvariantViolation)
	}
	for i := range expectedPlan {
		if expectedPlan[i] != ind.RowPlan[i] {
			return fmt.Errorf("individual: row plan entry %d stale: %w", i, ErrInvariantViolation)
		}
	}

	return nil
}

// validateEdgeSet checks acyclicity (feed-forward), in-degree bound,
// uniqueness, and sortedness for one edge array against s's row/node
// layout.
func validateEdgeSet(s *Species, edges []Edge, label string) error {
	seen := make(map[Edge]struct{}, len(edges))
	indeg := make(map[int]int, len(edges))
	inputCount := s.InputCount()
	totalNodes := s.TotalNodes()

	for i, e := range edges {
		if e.Source < 0 || e.Source >= totalNodes || e.Dest < 0 || e.Dest >= totalNodes {
			return fmt.Errorf("species %d %s edge %d: node index out of range: %w",
				s.ID, label, i, ErrInvariantViolation)
		}
		if s.RowOf(e.Source) >= s.RowOf(e.Dest) {
			return fmt.Errorf("species %d %s edge (%d->%d): not strictly feed-forward: %w",
				s.ID, label, e.Source, e.Dest, ErrEdgeNotFeedForward)
		}
		if e.Dest < inputCount {
			return fmt.Errorf("species %d %s edge (%d->%d): destination is an input node: %w",
				s.ID, label, e.Source, e.Dest, ErrInvariantViolation)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("species %d %s edge (%d->%d): duplicate: %w",
				s.ID, label, e.Source, e.Dest, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}
		indeg[e.Dest]++
		if indeg[e.Dest] > s.MaxInDegree {
			return fmt.Errorf("species %d %s node %d: in-degree %d exceeds bound %d: %w",
				s.ID, label, e.Dest, indeg[e.Dest], s.MaxInDegree, ErrInDegreeExceeded)
		}
		if i > 0 {
			prev := edges[i-1]
			pr, cr := s.RowOf(prev.Dest), s.RowOf(e.Dest)
			less := pr < cr ||
				(pr == cr && prev.Dest < e.Dest) ||
				(pr == cr && prev.Dest == e.Dest && prev.Source < e.Source)
			if !less {
				return fmt.Errorf("species %d %s edge array not sorted at index %d: %w",
					s.ID, label, i, ErrInvariantViolation)
			}
		}
	}

	return nil
}

func allowedActivation(allowed []activation.ID, chosen activation.ID) bool {
	for _, a := range allowed {
		if a == chosen {
			return true
		}
	}

	return false
}
