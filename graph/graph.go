package graph

import (
	"fmt"
	"math"
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a read-only-during-search, directed, non-negatively weighted
// graph over dense integer vertex ids. It is backed by a gonum
// simple.WeightedDirectedGraph; see doc.go.
type Graph struct {
	n int
	g *simple.WeightedDirectedGraph
}

// NewGraph allocates a graph over numVertices vertices [0, numVertices)
// with no edges. Edges are added with AddEdge before the graph is handed
// to a search; callers must not add edges concurrently with a search.
func NewGraph(numVertices int) (*Graph, error) {
	if numVertices <= 0 {
		return nil, ErrInvalidVertexCount
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < numVertices; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return &Graph{n: numVertices, g: g}, nil
}

// NumVertices returns |V|.
func (gr *Graph) NumVertices() int {
	return gr.n
}

// Vertices returns every vertex id in [0, NumVertices()), in ascending
// order.
func (gr *Graph) Vertices() []Vertex {
	out := make([]Vertex, gr.n)
	for i := range out {
		out[i] = Vertex(i)
	}

	return out
}

// AddEdge inserts (or overwrites) a directed edge from -> to with the given
// non-negative weight. Self-loops and parallel edges (calling AddEdge again
// for the same ordered pair) are permitted; a later call replaces the
// weight of an earlier one for the same pair, since gonum's weighted graph
// has no notion of a multigraph. A self-loop is accepted but not stored,
// since gonum's simple graphs cannot hold one and no loopless path uses it.
func (gr *Graph) AddEdge(from, to Vertex, weight float64) error {
	if err := gr.checkVertex(from); err != nil {
		return err
	}
	if err := gr.checkVertex(to); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}
	if from == to {
		return nil
	}

	gr.g.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(int64(from)),
		T: simple.Node(int64(to)),
		W: weight,
	})

	return nil
}

// HasEdge reports whether a directed edge from -> to exists.
func (gr *Graph) HasEdge(from, to Vertex) bool {
	return gr.g.HasEdgeFromTo(int64(from), int64(to))
}

// EdgeWeight returns the weight of the edge from -> to. Callers must only
// call this for an edge known to exist (see spec: "failure to find a
// queried edge when one is expected is a programming error"); a missing
// edge returns ErrEdgeNotFound rather than panicking, so callers that are
// unsure can still check the error.
func (gr *Graph) EdgeWeight(from, to Vertex) (float64, error) {
	w, ok := gr.g.Weight(int64(from), int64(to))
	if !ok || from == to {
		return 0, fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// OutEdges returns the edges leaving v, ordered by ascending destination
// vertex id so that iteration order — and therefore anything built on top
// of it — is deterministic.
func (gr *Graph) OutEdges(v Vertex) ([]Edge, error) {
	if err := gr.checkVertex(v); err != nil {
		return nil, err
	}

	nodes := gonumgraph.NodesOf(gr.g.From(int64(v)))
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	out := make([]Edge, 0, len(nodes))
	for _, n := range nodes {
		w, _ := gr.g.Weight(int64(v), n.ID())
		out = append(out, Edge{From: v, To: Vertex(n.ID()), Weight: w})
	}

	return out, nil
}

func (gr *Graph) checkVertex(v Vertex) error {
	if v < 0 || int(v) >= gr.n {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return nil
}
