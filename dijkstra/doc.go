// Package dijkstra computes single-source shortest paths on a
// non-negatively weighted graph.Graph.
//
// It serves two callers in this module: the OnePass+ search driver uses it
// once, forward, to compute the ordinary shortest path P[0] during
// preparation; and the reverse target-distance oracle uses it on
// graph.Graph.Reverse() to compute dist_to_t, the admissible A* lower bound
// the driver keys its priority queue on.
//
// Complexity: O((V + E) log V) time, O(V + E) space, using a binary heap
// with the same lazy-decrease-key strategy as katalvlaran/lvlath's dijkstra
// package: a shorter distance to a vertex already in the heap is pushed as
// a fresh entry rather than updated in place, and stale entries are
// discarded on pop by checking a visited set.
package dijkstra
