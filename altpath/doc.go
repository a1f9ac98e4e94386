// Package altpath implements the OnePass+ alternative-paths search: given a
// graph.Graph, a source and target vertex, a path budget k and a
// dissimilarity threshold theta, Run returns up to k loopless paths that
// are pairwise dissimilar (weighted edge-overlap ratio at most theta).
//
// The package is organized around the same components the algorithm's
// original description separates:
//
//	label.go     — C3: search labels (partial paths) and their arena store
//	skyline.go   — C4: the per-vertex dominance index that prunes labels
//	               already beaten on every accepted-path dimension
//	usededges.go — the accepted-edge index used both to grow a label's
//	               similarity vector and to lazily refresh a stale one
//	engine.go    — C5: the best-first search driver (Run)
//
// The search is a best-first label expansion ordered by an A* lower bound
// (length so far plus an admissible remaining-distance estimate from the
// dijkstra package's reverse oracle), with similarity checks against
// already-accepted paths deferred until a label is popped rather than
// recomputed on every acceptance — the same lazy-refresh strategy the
// algorithm was designed around, adapted here to Go's container/heap and a
// slice-backed label arena instead of shared_ptr-managed nodes.
package altpath
