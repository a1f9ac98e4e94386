package altpath

import "github.com/onepassplus/onepass-plus/graph"

// skylineIndex is C4: for each vertex, the set of labels currently
// resident there for dominance comparisons. A candidate label is dominated
// (and therefore discarded rather than queued) if some resident at the
// same vertex has a similarity vector no worse than the candidate's in
// every accepted-path dimension checked so far.
type skylineIndex struct {
	store   *labelStore
	buckets map[graph.Vertex][]labelID
}

func newSkylineIndex(store *labelStore) *skylineIndex {
	return &skylineIndex{store: store, buckets: make(map[graph.Vertex][]labelID)}
}

func (s *skylineIndex) insert(id labelID) {
	v := s.store.get(id).node
	s.buckets[v] = append(s.buckets[v], id)
}

// dominates reports whether some resident at candidate's vertex dominates
// it: sim[i] <= candidate.sim[i] for every i in [0, step). step is the
// number of accepted-path dimensions meaningful so far; comparing beyond it
// would compare uninitialized reserved slots.
func (s *skylineIndex) dominates(candidate *label, step int) bool {
	for _, id := range s.buckets[candidate.node] {
		resident := s.store.get(id)
		dominated := true
		for i := 0; i < step; i++ {
			if resident.sim[i] > candidate.sim[i] {
				dominated = false
				break
			}
		}
		if dominated {
			return true
		}
	}
	return false
}
