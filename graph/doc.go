// Package graph provides the read-only, dense-integer-indexed directed
// graph view the OnePass+ search operates over.
//
// Vertices are identified by a Vertex (an int32 in [0, NumVertices())).
// Edges carry a non-negative float64 weight. The graph is built once per
// query and never mutated while a search is in flight — callers must not
// call AddEdge concurrently with a running search.
//
// Internally a Graph wraps a gonum.org/v1/gonum/graph/simple
// WeightedDirectedGraph, so edge storage, iteration and existence checks
// reuse gonum's adjacency representation rather than a hand-rolled one.
// Vertex values are the same integers as the wrapped graph's int64 node
// ids, just narrowed to int32.
package graph
