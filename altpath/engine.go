package altpath

import (
	"container/heap"
	"log/slog"

	"github.com/onepassplus/onepass-plus/dijkstra"
	"github.com/onepassplus/onepass-plus/graph"
)

// Options configures a Run call via functional options, mirroring the
// dijkstra package's Options/Option pattern (dijkstra.WithReturnPath).
type Options struct {
	Logger *slog.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger attaches a logger that Run uses to record popped, expanded,
// and pruned labels at Debug level (CLI: cmd/onepass-plus's --verbose
// flag). Without WithLogger, Run logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Run computes up to k loopless paths from source to target in g such that
// every pair of returned paths has weighted edge-overlap ratio at most
// theta. The first returned path is always the shortest path; each
// subsequent one is the next best-first candidate that clears the
// dissimilarity bar against every path admitted before it.
//
// Run implements the OnePass+ best-first label search: an A* exploration
// keyed on length-so-far plus an admissible lower bound to target (the
// reverse shortest-path oracle from the dijkstra package), pruned by a
// per-vertex skyline dominance index over similarity vectors, with
// similarity checks deferred and refreshed lazily rather than recomputed
// eagerly on every new acceptance.
func Run(g *graph.Graph, source, target graph.Vertex, k int, theta float64, opts ...Option) ([]Path, error) {
	if err := validateArgs(g, source, target, k, theta); err != nil {
		return nil, err
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == target {
		// The only loopless path from a vertex to itself is the empty one:
		// any nonzero-length route back to source would revisit source,
		// which loop-avoidance forbids anyway. No amount of search turns up
		// a second alternative, so short-circuit rather than let the head
		// label re-discover and re-admit the same trivial path.
		return []Path{{Vertices: []graph.Vertex{source}, Length: 0}}, nil
	}

	distToTarget, err := dijkstra.DistanceToTarget(g, target)
	if err != nil {
		return nil, err
	}
	if distToTarget[source] == dijkstra.Infinity {
		return nil, nil
	}

	sp, err := dijkstra.From(g, source, dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	p0Vertices, ok := sp.PathTo(target)
	if !ok {
		return nil, nil
	}

	r := &runner{
		g:            g,
		theta:        theta,
		k:            k,
		distToTarget: distToTarget,
		target:       target,
		used:         newUsedEdgeIndex(),
		store:        newLabelStore(),
		logger:       cfg.Logger,
	}
	r.sky = newSkylineIndex(r.store)

	p0Edges, err := pathEdges(g, p0Vertices)
	if err != nil {
		return nil, err
	}
	r.accepted = []Path{{Vertices: p0Vertices, Length: sp.Dist[target]}}
	r.used.addPath(0, p0Edges)
	r.step = 1

	if r.step >= k {
		return r.accepted, nil
	}

	headID := r.store.newHead(source, distToTarget[source], k, r.step)
	r.sky.insert(headID)

	pq := &labelPQ{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{id: headID, lowerBound: distToTarget[source], seq: 0})
	r.seq = 1

	for pq.Len() > 0 && r.step < k {
		item := heap.Pop(pq).(*pqItem)
		if err := r.processLabel(item, pq); err != nil {
			return nil, err
		}
	}

	return r.accepted, nil
}

// runner holds all state shared across one Run call's main loop.
type runner struct {
	g            *graph.Graph
	theta        float64
	k            int
	distToTarget []float64
	target       graph.Vertex

	accepted []Path
	used     *usedEdgeIndex
	store    *labelStore
	sky      *skylineIndex

	step int
	seq  int

	logger *slog.Logger
}

// debug logs a label decision at Debug level if the caller attached a
// logger via WithLogger; otherwise it is a no-op.
func (r *runner) debug(msg string, lab *label) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, "step", r.step, "label", *lab)
}

// processLabel handles one popped label: refresh-or-drop, terminal
// admission, or expansion.
func (r *runner) processLabel(item *pqItem, pq *labelPQ) error {
	lab := r.store.get(item.id)
	r.debug("pop", lab)

	if lab.lastCheck < r.step {
		ok, err := r.refresh(item.id, lab)
		if err != nil {
			return err
		}
		lab.lastCheck = r.step
		if !ok {
			r.debug("drop: stale similarity exceeds threshold on refresh", lab)
			return nil
		}
	}

	if lab.node == r.target {
		verts := r.store.path(item.id)
		edges, err := pathEdges(r.g, verts)
		if err != nil {
			return err
		}
		r.accepted = append(r.accepted, Path{Vertices: verts, Length: lab.length})
		r.used.addPath(r.step, edges)
		r.step++
		r.debug("admit path", lab)
		return nil
	}

	return r.expand(item.id, lab, pq)
}

// refresh brings lab.sim up to date against every accepted path admitted
// since lab.lastCheck: walk lab's own path edges and, for each accepted
// index newly in scope, add the weight of every
// edge shared with that path. Reports false (discard) the moment any
// dimension exceeds theta.
func (r *runner) refresh(id labelID, lab *label) (bool, error) {
	from, to := lab.lastCheck, r.step
	verts := r.store.path(id)
	edges, err := pathEdges(r.g, verts)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		for _, idx := range r.used.pathsContaining(e.From, e.To) {
			if idx < from || idx >= to {
				continue
			}
			lab.sim[idx] += e.Weight
			if lab.sim[idx] > r.theta*r.accepted[idx].Length {
				return false, nil
			}
		}
	}
	return true, nil
}

// expand extends lab across every outgoing edge of its vertex, tentatively
// growing the similarity vector and checking the dissimilarity bound, then
// admits any surviving, non-dominated child to the skyline index and
// priority queue.
func (r *runner) expand(id labelID, lab *label, pq *labelPQ) error {
	edges, err := r.g.OutEdges(lab.node)
	if err != nil {
		return err
	}
	for _, e := range edges {
		u := e.To
		if r.store.onPath(id, u) {
			continue
		}

		simPrime := make([]float64, r.k)
		copy(simPrime, lab.sim)
		below := true
		for _, idx := range r.used.pathsContaining(lab.node, u) {
			simPrime[idx] += e.Weight
			if simPrime[idx] > r.theta*r.accepted[idx].Length {
				below = false
				break
			}
		}
		if !below {
			r.debug("skip: tentative similarity exceeds threshold", lab)
			continue
		}

		db := r.distToTarget[u]
		if db == dijkstra.Infinity {
			continue
		}

		childLength := lab.length + e.Weight
		childLB := childLength + db
		childID := r.store.newChild(id, u, childLength, childLB, simPrime, r.step)
		child := r.store.get(childID)
		if r.sky.dominates(child, r.step) {
			r.debug("prune: dominated in skyline", child)
			continue
		}
		r.sky.insert(childID)
		heap.Push(pq, &pqItem{id: childID, lowerBound: childLB, seq: r.seq})
		r.debug("push child", child)
		r.seq++
	}
	return nil
}

// validateArgs checks Run's preconditions.
func validateArgs(g *graph.Graph, source, target graph.Vertex, k int, theta float64) error {
	if g == nil {
		return &InvalidArgumentError{Field: "graph", Reason: "must not be nil"}
	}
	if k < 1 {
		return &InvalidArgumentError{Field: "k", Reason: "must be >= 1"}
	}
	if theta < 0 || theta > 1 {
		return &InvalidArgumentError{Field: "theta", Reason: "must be in [0, 1]"}
	}
	n := g.NumVertices()
	if int(source) < 0 || int(source) >= n {
		return &InvalidArgumentError{Field: "source", Reason: "out of range"}
	}
	if int(target) < 0 || int(target) >= n {
		return &InvalidArgumentError{Field: "target", Reason: "out of range"}
	}
	return nil
}

// pqItem is one priority-queue entry: a label, its A* lower bound, and an
// insertion sequence number that breaks ties deterministically so repeated
// runs on the same input return identical results.
type pqItem struct {
	id         labelID
	lowerBound float64
	seq        int
}

// labelPQ is a container/heap min-heap ordered by (lowerBound, seq).
type labelPQ []*pqItem

func (pq labelPQ) Len() int { return len(pq) }
func (pq labelPQ) Less(i, j int) bool {
	if pq[i].lowerBound != pq[j].lowerBound {
		return pq[i].lowerBound < pq[j].lowerBound
	}
	return pq[i].seq < pq[j].seq
}
func (pq labelPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
