package graph

// Reverse returns a new Graph with every edge direction flipped: an edge
// u->v with weight w in gr becomes v->u with weight w in the result. This
// is the graph the C2 reverse shortest-path oracle runs ordinary Dijkstra
// on, per spec: "dist_to_t[v] is equivalently a single-source Dijkstra from
// t on the reversed graph."
func (gr *Graph) Reverse() (*Graph, error) {
	rev, err := NewGraph(gr.n)
	if err != nil {
		return nil, err
	}

	for _, v := range gr.Vertices() {
		edges, err := gr.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if err := rev.AddEdge(e.To, e.From, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return rev, nil
}
