// SPDX-License-Identifier: MIT
//
// sample.go — the three edge-sampling policies: Dense(p), Sparse(k), and
// Minimal. Each policy is a Sampler value produced by a constructor and
// consumed by SeedTemplate; none of the constructors validate eagerly
// (Dense(0) and Sparse(0) are legal values to construct), because these
// parameters plausibly come from runtime configuration rather than a
// source-code literal — validation happens inside Sample, returning a
// sentinel error.
package builder

import (
	"math/rand"

	"github.com/evolab/nevo/core"
)

// Sampler produces an edge set for a species' row layout.
type Sampler interface {
	Sample(rows []core.Row, maxInDegree int, rng *rand.Rand) ([]core.Edge, error)
}

// SeedTemplate runs sampler against s's row layout and max-in-degree bound,
// installs the result as s.TemplateEdges (sorted), and re-validates s.
func SeedTemplate(s *core.Species, sampler Sampler, rng *rand.Rand) error {
	edges, err := sampler.Sample(s.Rows, s.MaxInDegree, rng)
	if err != nil {
		return err
	}
	core.SortEdges(s.Rows, edges)
	s.TemplateEdges = edges

	return s.Validate()
}

func lowerRowBound(rows []core.Row, v int) int {
	return rows[core.RowOf(rows, v)].NodeStart
}

// denseSampler implements Dense(p): an independent Bernoulli(p) trial per
// candidate edge (u, v) with row(u) < row(v).
type denseSampler struct{ p float64 }

// Dense returns a sampler including every candidate edge independently
// with probability p. p is validated lazily in Sample; values outside
// (0, 1] yield ErrInvalidDensity there.
func Dense(p float64) Sampler { return denseSampler{p: p} }

func (d denseSampler) Sample(rows []core.Row, maxInDegree int, rng *rand.Rand) ([]core.Edge, error) {
	if d.p <= 0 || d.p > 1 {
		return nil, ErrInvalidDensity
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	inputCount := rows[0].NodeCount
	total := rows[len(rows)-1].NodeStart + rows[len(rows)-1].NodeCount
	indeg := make([]int, total)

	var edges []core.Edge
	for v := inputCount; v < total; v++ {
		bound := lowerRowBound(rows, v)
		for u := 0; u < bound; u++ {
			include := rng.Float64() < d.p
			if include && indeg[v] < maxInDegree {
				edges = append(edges, core.Edge{Source: u, Dest: v})
				indeg[v]++
			}
		}
		if indeg[v] == 0 && bound > 0 {
			u := rng.Intn(bound)
			edges = append(edges, core.Edge{Source: u, Dest: v})
			indeg[v]++
		}
	}

	return edges, nil
}

// sparseSampler implements Sparse(k): each non-input node draws exactly
// min(k, maxInDegree, candidateCount) in-edges uniformly without
// replacement from lower rows.
type sparseSampler struct{ k int }

// Sparse returns a sampler giving every non-input node a fixed in-degree.
// k is validated lazily in Sample; k <= 0 yields ErrInvalidDegree there.
func Sparse(k int) Sampler { return sparseSampler{k: k} }

func (sp sparseSampler) Sample(rows []core.Row, maxInDegree int, rng *rand.Rand) ([]core.Edge, error) {
	if sp.k <= 0 {
		return nil, ErrInvalidDegree
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	inputCount := rows[0].NodeCount
	total := rows[len(rows)-1].NodeStart + rows[len(rows)-1].NodeCount

	var edges []core.Edge
	for v := inputCount; v < total; v++ {
		bound := lowerRowBound(rows, v)
		take := sp.k
		if maxInDegree < take {
			take = maxInDegree
		}
		if bound < take {
			take = bound
		}
		if take == 0 {
			continue
		}
		candidates := make([]int, bound)
		for i := range candidates {
			candidates[i] = i
		}
		rng.Shuffle(bound, func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		for _, u := range candidates[:take] {
			edges = append(edges, core.Edge{Source: u, Dest: v})
		}
	}

	return edges, nil
}

// minimalSampler implements Minimal: one random in-edge per non-input
// node, then an augmentation pass guaranteeing every output reaches at
// least one input.
type minimalSampler struct{}

// Minimal returns a sampler giving every non-input node exactly one
// in-edge, then repairing any output left unreachable from every input.
func Minimal() Sampler { return minimalSampler{} }

func (minimalSampler) Sample(rows []core.Row, maxInDegree int, rng *rand.Rand) ([]core.Edge, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	inputCount := rows[0].NodeCount
	total := rows[len(rows)-1].NodeStart + rows[len(rows)-1].NodeCount

	var edges []core.Edge
	for v := inputCount; v < total; v++ {
		bound := lowerRowBound(rows, v)
		if bound == 0 {
			return nil, ErrNoCandidates
		}
		u := rng.Intn(bound)
		edges = append(edges, core.Edge{Source: u, Dest: v})
	}

	edges = ensureInputReachable(rows, edges, inputCount, maxInDegree, rng)

	return edges, nil
}

// ensureInputReachable augments edges, by adding one direct edge from a
// random input node, for every output node whose backward closure over
// edges contains no input node. If the target output is already at its
// in-degree bound, one of its existing edges is evicted first.
func ensureInputReachable(rows []core.Row, edges []core.Edge, inputCount, maxInDegree int, rng *rand.Rand) []core.Edge {
	outputRow := len(rows) - 1
	outStart, outCount := rows[outputRow].NodeStart, rows[outputRow].NodeCount

	for v := outStart; v < outStart+outCount; v++ {
		if reachesInput(edges, v, inputCount) {
			continue
		}
		if countInEdges(edges, v) >= maxInDegree {
			edges = evictOneInEdge(edges, v, rng)
		}
		u := rng.Intn(inputCount)
		edges = append(edges, core.Edge{Source: u, Dest: v})
	}

	return edges
}

func reachesInput(edges []core.Edge, target, inputCount int) bool {
	visited := map[int]bool{target: true}
	queue := []int{target}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n < inputCount {
			return true
		}
		for _, e := range edges {
			if e.Dest == n && !visited[e.Source] {
				visited[e.Source] = true
				queue = append(queue, e.Source)
			}
		}
	}

	return false
}

func countInEdges(edges []core.Edge, dest int) int {
	n := 0
	for _, e := range edges {
		if e.Dest == dest {
			n++
		}
	}

	return n
}

func evictOneInEdge(edges []core.Edge, dest int, rng *rand.Rand) []core.Edge {
	var idx []int
	for i, e := range edges {
		if e.Dest == dest {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return edges
	}
	victim := idx[rng.Intn(len(idx))]

	return append(edges[:victim], edges[victim+1:]...)
}
