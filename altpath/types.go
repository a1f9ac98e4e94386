package altpath

import "github.com/onepassplus/onepass-plus/graph"

// Path is one member of the result set: a loopless sequence of vertices
// from source to target, plus its total length (sum of edge weights along
// the way). A trivial source == target result is the single-vertex path
// with Length 0.
type Path struct {
	Vertices []graph.Vertex
	Length   float64
}

// pathEdges expands a vertex sequence into its consecutive (from, to)
// edges, looking up each edge's weight in g. Run needs this for P[0] and for
// each admitted label's reconstructed path, and the similarity refresh walk
// needs it for a stale label's path.
func pathEdges(g *graph.Graph, vertices []graph.Vertex) ([]graph.Edge, error) {
	if len(vertices) < 2 {
		return nil, nil
	}
	edges := make([]graph.Edge, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		w, err := g.EdgeWeight(vertices[i], vertices[i+1])
		if err != nil {
			return nil, err
		}
		edges = append(edges, graph.Edge{From: vertices[i], To: vertices[i+1], Weight: w})
	}
	return edges, nil
}
