package altpath

import (
	"log/slog"

	"github.com/onepassplus/onepass-plus/graph"
)

// labelID indexes into a labelStore. -1 denotes "no predecessor" (the head
// label at the search source).
type labelID int32

const noPred labelID = -1

// label is one C3 search node: a partial path from source to node, its
// accumulated length, its A* lower bound, a similarity vector against every
// accepted path so far, and the step at which that vector was last brought
// up to date.
//
// Predecessor links are plain labelID values into the owning labelStore's
// slice rather than pointers or reference-counted handles. Since the store
// never reclaims a label mid-search (unlike the C++ original this was
// ported from, which frees a label's shared_ptr once nothing references it
// as a skyline resident, requiring the dominance test to treat an expired
// weak_ptr as "not present"), every labelID handed out stays valid for the
// lifetime of the search — there is no expired-handle case to check.
type label struct {
	node       graph.Vertex
	length     float64
	lowerBound float64
	pred       labelID
	sim        []float64
	lastCheck  int
}

// LogValue implements slog.LogValuer, restoring the original algorithm's
// debug label dump (OnePassLabel::operator<<) as structured log output
// instead of a bespoke ostream format.
func (l label) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("node", l.node),
		slog.Float64("length", l.length),
		slog.Float64("lower_bound", l.lowerBound),
		slog.Any("sim", l.sim),
		slog.Int("last_check", l.lastCheck),
	)
}

// labelStore is the arena backing every label created during a single Run
// call. It is never trimmed mid-search (spec: "no label is ever reclaimed
// mid-search"), so labelID values are stable for the whole call.
type labelStore struct {
	labels []label
}

func newLabelStore() *labelStore {
	return &labelStore{}
}

// newHead creates the label at the search's source vertex: no predecessor,
// zero length, a zeroed similarity vector against all k reserved slots.
func (s *labelStore) newHead(node graph.Vertex, lowerBound float64, k, step int) labelID {
	s.labels = append(s.labels, label{
		node:       node,
		length:     0,
		lowerBound: lowerBound,
		pred:       noPred,
		sim:        make([]float64, k),
		lastCheck:  step,
	})
	return labelID(len(s.labels) - 1)
}

// newChild creates a label extending pred by one edge, with the tentative
// similarity vector sim already computed by the caller during expansion.
func (s *labelStore) newChild(pred labelID, node graph.Vertex, length, lowerBound float64, sim []float64, step int) labelID {
	s.labels = append(s.labels, label{
		node:       node,
		length:     length,
		lowerBound: lowerBound,
		pred:       pred,
		sim:        sim,
		lastCheck:  step,
	})
	return labelID(len(s.labels) - 1)
}

func (s *labelStore) get(id labelID) *label {
	return &s.labels[id]
}

// path reconstructs the vertex sequence from source to id's node by walking
// predecessor links and reversing.
func (s *labelStore) path(id labelID) []graph.Vertex {
	var reversed []graph.Vertex
	for cur := id; cur != noPred; cur = s.labels[cur].pred {
		reversed = append(reversed, s.labels[cur].node)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// onPath reports whether v already appears somewhere on id's partial path,
// the loop-avoidance check performed before a label is allowed to expand
// across an edge.
func (s *labelStore) onPath(id labelID, v graph.Vertex) bool {
	for cur := id; cur != noPred; cur = s.labels[cur].pred {
		if s.labels[cur].node == v {
			return true
		}
	}
	return false
}
