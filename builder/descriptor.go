// SPDX-License-Identifier: MIT
//
// descriptor.go — the row-declaration API: AddInputRow / AddHiddenRow /
// AddOutputRow / WithMaxInDegree assemble a *core.Species using the
// functional-option pattern: options mutate a private descriptor, resolved
// into the public type only once, by NewSpecies.
package builder

import (
	"fmt"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/core"
)

// Option customizes a descriptor before NewSpecies resolves it into a
// *core.Species. Options are applied in the order passed to NewSpecies,
// which is also the row declaration order.
type Option func(*descriptor)

type descriptor struct {
	rows        []core.Row
	nodes       []core.NodeSpec
	maxInDegree int
}

func (d *descriptor) appendRow(kind core.RowKind, n int, allowed []activation.ID) {
	start := 0
	if len(d.rows) > 0 {
		last := d.rows[len(d.rows)-1]
		start = last.NodeStart + last.NodeCount
	}
	row := len(d.rows)
	d.rows = append(d.rows, core.Row{Kind: kind, NodeStart: start, NodeCount: n})
	for i := 0; i < n; i++ {
		var a []activation.ID
		if len(allowed) > 0 {
			a = append([]activation.ID(nil), allowed...)
		}
		d.nodes = append(d.nodes, core.NodeSpec{Row: row, AllowedActivations: a})
	}
}

// AddInputRow declares the species' single input row of n nodes. Input
// nodes carry no activation (the forward evaluator copies x straight into
// them), so no allowed-activation set is accepted. Panics if n <= 0.
func AddInputRow(n int) Option {
	if n <= 0 {
		panic("builder: AddInputRow(n<=0)")
	}

	return func(d *descriptor) { d.appendRow(core.RowInput, n, nil) }
}

// AddHiddenRow declares one hidden row of n nodes, each allowed to choose
// its activation from allowed. repeat is a convenience equal to calling
// AddHiddenRow repeat times with the same arguments (spec: "repeat is a
// convenience; semantically equivalent to k calls"); repeat <= 0 is treated
// as 1. Panics if n <= 0 or allowed is empty.
func AddHiddenRow(n int, allowed []activation.ID, repeat int) Option {
	if n <= 0 {
		panic("builder: AddHiddenRow(n<=0)")
	}
	if len(allowed) == 0 {
		panic("builder: AddHiddenRow with empty allowed-activation set")
	}
	if repeat <= 0 {
		repeat = 1
	}

	return func(d *descriptor) {
		for i := 0; i < repeat; i++ {
			d.appendRow(core.RowHidden, n, allowed)
		}
	}
}

// AddOutputRow declares the species' single output row of n nodes. Panics
// if n <= 0 or allowed is empty.
func AddOutputRow(n int, allowed []activation.ID) Option {
	if n <= 0 {
		panic("builder: AddOutputRow(n<=0)")
	}
	if len(allowed) == 0 {
		panic("builder: AddOutputRow with empty allowed-activation set")
	}

	return func(d *descriptor) { d.appendRow(core.RowOutput, n, allowed) }
}

// WithMaxInDegree sets the species' in-degree bound. Panics if d <= 0.
func WithMaxInDegree(maxInDegree int) Option {
	if maxInDegree <= 0 {
		panic("builder: WithMaxInDegree(d<=0)")
	}

	return func(d *descriptor) { d.maxInDegree = maxInDegree }
}

// NewSpecies applies opts in order and resolves the result into a
// *core.Species with an empty TemplateEdges (callers populate it via a
// Sampler and SeedTemplate). Returns ErrTooFewRows, ErrRowOrder, or
// ErrMaxInDegreeNotSet for malformed declarations, and
// core.ErrInvariantViolation if the resolved species otherwise fails
// validation.
func NewSpecies(id int, opts ...Option) (*core.Species, error) {
	d := &descriptor{}
	for _, opt := range opts {
		opt(d)
	}

	if len(d.rows) < 2 {
		return nil, fmt.Errorf("builder: NewSpecies(%d): %w", id, ErrTooFewRows)
	}
	if d.rows[0].Kind != core.RowInput {
		return nil, fmt.Errorf("builder: NewSpecies(%d): first row must be AddInputRow: %w", id, ErrRowOrder)
	}
	if d.rows[len(d.rows)-1].Kind != core.RowOutput {
		return nil, fmt.Errorf("builder: NewSpecies(%d): last row must be AddOutputRow: %w", id, ErrRowOrder)
	}
	for _, r := range d.rows[1 : len(d.rows)-1] {
		if r.Kind != core.RowHidden {
			return nil, fmt.Errorf("builder: NewSpecies(%d): rows between input and output must be hidden: %w", id, ErrRowOrder)
		}
	}
	if d.maxInDegree <= 0 {
		return nil, fmt.Errorf("builder: NewSpecies(%d): %w", id, ErrMaxInDegreeNotSet)
	}

	s := &core.Species{ID: id, Rows: d.rows, Nodes: d.nodes, MaxInDegree: d.maxInDegree}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("builder: NewSpecies(%d): %w", id, err)
	}

	return s, nil
}
