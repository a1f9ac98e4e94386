package grparser

import "errors"

var (
	// ErrEmptyInput indicates the reader produced no lines at all.
	ErrEmptyInput = errors.New("grparser: empty input")

	// ErrUnsupportedGraphType indicates the header line named a graph kind
	// other than "d" (directed). Only directed graphs are accepted, since
	// the engine's Graph is always directed (an undirected input is
	// expected to arrive pre-mirrored, one edge line per direction).
	ErrUnsupportedGraphType = errors.New("grparser: unsupported graph type, want \"d\"")

	// ErrMalformedCounts indicates the "|V| |E|" line could not be parsed
	// as two non-negative integers.
	ErrMalformedCounts = errors.New("grparser: malformed vertex/edge count line")

	// ErrMalformedEdge indicates an edge line was not "u v w flag".
	ErrMalformedEdge = errors.New("grparser: malformed edge line")

	// ErrEdgeCountMismatch indicates fewer or more edge lines were present
	// than the header's |E| declared.
	ErrEdgeCountMismatch = errors.New("grparser: edge count does not match header")
)
