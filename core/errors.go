package core

import "errors"

// Sentinel errors for core operations. Callers branch with errors.Is;
// these are never produced by string formatting, only wrapped with %w.
var (
	// ErrInvariantViolation indicates a topology or parameter invariant
	// (see Species.Validate / Individual.Validate) failed.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrNodeNotFound indicates a referenced node index is out of range.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates a referenced edge was not present.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrRowNotFound indicates a referenced row index is out of range.
	ErrRowNotFound = errors.New("core: row not found")

	// ErrActivationNotAllowed indicates an activation choice is outside a
	// node's allowed set.
	ErrActivationNotAllowed = errors.New("core: activation not allowed for node")

	// ErrInDegreeExceeded indicates an edge insertion would push a node's
	// in-degree above the species' max-in-degree bound.
	ErrInDegreeExceeded = errors.New("core: in-degree bound exceeded")

	// ErrEdgeNotFeedForward indicates an edge would violate row(source) <
	// row(dest) (acyclicity).
	ErrEdgeNotFeedForward = errors.New("core: edge is not strictly feed-forward")

	// ErrDuplicateEdge indicates an edge with the same (source, dest)
	// already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)
