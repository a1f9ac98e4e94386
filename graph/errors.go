package graph

import "errors"

// Sentinel errors for graph construction and lookup, following the same
// convention as the rest of the module: package-qualified messages, wrapped
// with fmt.Errorf("%w: ...") at call sites that have more context to add.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrEdgeNotFound indicates EdgeWeight was called for a pair with no edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrInvalidVertexCount indicates NewGraph was called with n <= 0.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be positive")
)
