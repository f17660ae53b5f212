// File: forward.go
// Role: the forward evaluator (spec component 4.2).
package eval

import (
	"errors"
	"fmt"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/core"
)

// ErrInputSizeMismatch indicates x's length does not match the species'
// input row node count, or y's length does not match its output row.
var ErrInputSizeMismatch = errors.New("eval: input vector length does not match input row size")

// Forward evaluates individual ind of species s against input x, writing
// the result into y (which must have length s.OutputCount()) and returning
// it. sc is reused scratch space; callers evaluating many steps of the
// same episode should keep one Scratch per goroutine rather than
// allocating fresh state every call.
func Forward(s *core.Species, ind *core.Individual, x []float32, y []float32, sc *Scratch) ([]float32, error) {
	if len(x) != s.InputCount() {
		return nil, fmt.Errorf("%w: got %d want %d", ErrInputSizeMismatch, len(x), s.InputCount())
	}
	if len(y) != s.OutputCount() {
		return nil, fmt.Errorf("%w: output buffer got %d want %d", ErrInputSizeMismatch, len(y), s.OutputCount())
	}

	sc.reset(s.TotalNodes())
	z := sc.z

	inputRow := s.Rows[s.InputRow()]
	copy(z[inputRow.NodeStart:inputRow.NodeStart+inputRow.NodeCount], x)

	for r := 1; r < len(s.Rows); r++ {
		plan := ind.RowPlan[r]
		for i := plan.EdgeStart; i < plan.EdgeStart+plan.EdgeCount; i++ {
			e := ind.Edges[i]
			z[e.Dest] += ind.Weights[i] * z[e.Source]
		}
		for n := plan.NodeStart; n < plan.NodeStart+plan.NodeCount; n++ {
			z[n] += ind.Biases[n]
			z[n] = activation.Apply(ind.Activations[n], z[n], ind.NodeParamSlot(n))
		}
	}

	outputRow := s.Rows[s.OutputRow()]
	copy(y, z[outputRow.NodeStart:outputRow.NodeStart+outputRow.NodeCount])

	return y, nil
}
