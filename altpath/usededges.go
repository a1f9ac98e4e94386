package altpath

import "github.com/onepassplus/onepass-plus/graph"

type edgeKey struct {
	from, to graph.Vertex
}

// usedEdgeIndex is a direct port of the original algorithm's resEdges /
// update_res_edges bookkeeping: for every edge that appears in some
// accepted path, the set of accepted-path indices that use it. The search
// driver consults it both when tentatively extending a label (which
// accepted paths does this new edge overlap?) and when refreshing a stale
// label's similarity vector against paths accepted since its last check.
type usedEdgeIndex struct {
	index map[edgeKey][]int
}

func newUsedEdgeIndex() *usedEdgeIndex {
	return &usedEdgeIndex{index: make(map[edgeKey][]int)}
}

// addPath registers every edge of a newly accepted path under pathIndex.
func (u *usedEdgeIndex) addPath(pathIndex int, edges []graph.Edge) {
	for _, e := range edges {
		k := edgeKey{e.From, e.To}
		u.index[k] = append(u.index[k], pathIndex)
	}
}

// pathsContaining returns the accepted-path indices whose path uses the
// edge (from, to), in ascending order (paths are appended in acceptance
// order, so no sort is needed).
func (u *usedEdgeIndex) pathsContaining(from, to graph.Vertex) []int {
	return u.index[edgeKey{from, to}]
}
