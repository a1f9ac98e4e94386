package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/onepassplus/onepass-plus/graph"
)

// From computes shortest-path distances from source to every vertex in g.
// Non-negative edge weights are assumed (the caller — the OnePass+ engine —
// is responsible for constructing g that way; From does not re-validate
// every edge, since this package is re-run on every query and the graph is
// already validated once at graph-construction time instead).
func From(g *graph.Graph, source graph.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || int(source) >= g.NumVertices() {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NumVertices()
	dist := make([]float64, n)
	visited := make([]bool, n)
	var prev []graph.Vertex
	if cfg.ReturnPath {
		prev = make([]graph.Vertex, n)
		for i := range prev {
			prev[i] = -1
		}
	}
	for i := range dist {
		dist[i] = Infinity
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if visited[v] {
				continue
			}
			newDist := dist[u] + e.Weight
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			if prev != nil {
				prev[v] = u
			}
			heap.Push(&pq, &nodeItem{node: v, dist: newDist})
		}
	}

	return &Result{Dist: dist, Prev: prev}, nil
}

// DistanceToTarget computes dist_to_t, the admissible A* lower bound used
// by the search driver: the length of the shortest path from every vertex
// to target in g, by running From on the reversed graph. If target is
// unreachable from a vertex, its entry is Infinity.
func DistanceToTarget(g *graph.Graph, target graph.Vertex) ([]float64, error) {
	rev, err := g.Reverse()
	if err != nil {
		return nil, err
	}

	res, err := From(rev, target)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// nodeItem is one entry in the priority queue: a candidate distance to
// node, valid only if it matches the current best known distance at pop
// time (lazy decrease-key).
type nodeItem struct {
	node graph.Vertex
	dist float64
}

// nodePQ is a container/heap min-heap of *nodeItem ordered by ascending
// distance only; equal distances have no explicit tie-break (container/heap
// is not stable). Determinism comes instead from graph.Graph.OutEdges's
// fixed iteration order, which makes the sequence of pushes — and therefore
// outcomes among equal distances — reproducible run to run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
