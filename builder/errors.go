// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with %w.
//   - Row-declaration option constructors (AddInputRow, WithMaxInDegree, ...)
//     panic on meaningless inputs — a programmer typo, not a runtime
//     condition. Sampler parameters (Dense's p, Sparse's k) are validated at
//     Sample time instead, since they plausibly come from configuration
//     rather than a literal in source.
package builder

import "errors"

// ErrTooFewRows indicates a descriptor declared fewer than the minimum of
// one input row and one output row.
var ErrTooFewRows = errors.New("builder: species needs at least an input row and an output row")

// ErrRowOrder indicates rows were declared out of the required order: the
// first row must be an input row, the last an output row, and every row in
// between a hidden row.
var ErrRowOrder = errors.New("builder: rows must be input, then hidden*, then output")

// ErrMaxInDegreeNotSet indicates WithMaxInDegree was never applied.
var ErrMaxInDegreeNotSet = errors.New("builder: max in-degree was not configured")

// ErrNeedRandSource indicates a sampler or initializer was invoked with a
// nil *rand.Rand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDensity indicates Dense's p is outside the half-open interval
// (0, 1].
var ErrInvalidDensity = errors.New("builder: density must be in (0, 1]")

// ErrInvalidDegree indicates Sparse's k is not positive.
var ErrInvalidDegree = errors.New("builder: degree must be positive")

// ErrNoCandidates indicates a node has no lower-row nodes to draw an
// in-edge from, which can only happen if a hidden/output row is declared
// before any row holding candidate sources — a row-order bug the descriptor
// validation should already have caught.
var ErrNoCandidates = errors.New("builder: node has no candidate source nodes")
