package dijkstra

import (
	"errors"
	"math"

	"github.com/onepassplus/onepass-plus/graph"
)

// Sentinel errors: one exported error per precondition rather than a
// single generic error.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to From.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex is outside the
	// graph's vertex range.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// Infinity is the distance reported for a vertex unreachable from the
// source. It is math.Inf(1) rather than a sentinel finite value so that
// ordinary float64 comparisons ("dist < Infinity") work without special
// casing, mirroring how lightningnetwork-lnd's pathfinder defines its own
// "infinity = math.MaxFloat64" constant for the same reason. math.Inf is a
// function call, not a constant expression, so this is a var — the same
// choice katalvlaran/lvlath makes for its own infinities (matrix's
// Floyd-Warshall, tsp's branch and bound).
var Infinity = math.Inf(1)

// Result holds the outcome of a single From call: the distance from the
// source to every vertex, and — if requested — a predecessor array from
// which any reachable vertex's shortest path can be reconstructed by
// walking backwards to the source.
type Result struct {
	// Dist[v] is the shortest-path length from the source to v, or
	// Infinity if v is unreachable.
	Dist []float64

	// Prev[v] is the predecessor of v on a shortest path from the source,
	// or -1 if v is the source or is unreachable. Nil unless requested via
	// WithReturnPath.
	Prev []graph.Vertex
}

// PathTo reconstructs the shortest path from the source (implicit in the
// Result) to dest, provided Prev was populated. Returns (nil, false) if
// dest is unreachable or Prev was not requested.
func (r *Result) PathTo(dest graph.Vertex) ([]graph.Vertex, bool) {
	if r.Prev == nil {
		return nil, false
	}
	if r.Dist[dest] == Infinity {
		return nil, false
	}

	// Walk backwards from dest to the source (Prev[source] == -1), then
	// reverse.
	path := []graph.Vertex{dest}
	for cur := dest; r.Prev[cur] != -1; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Options configures a From call via functional options.
type Options struct {
	ReturnPath bool
}

// Option is a functional option for From.
type Option func(*Options)

// WithReturnPath requests that From populate Result.Prev so callers can
// reconstruct paths via Result.PathTo.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
