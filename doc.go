// Package onepassplus is the module root for the OnePass+ alternative-paths
// engine: given a directed, non-negatively weighted graph and a source and
// target vertex, it computes up to k loopless paths such that every
// returned path is pairwise dissimilar from every other one below a
// caller-chosen edge-overlap threshold theta.
//
// What is onepass-plus?
//
//	A best-first label-expansion search over a static weighted graph:
//		• graph      — read-only adjacency view, dense integer vertex ids
//		• dijkstra   — single-source shortest paths, used for the first
//		               (shortest) path and for the reverse target-distance
//		               oracle that drives the A* lower bound
//		• altpath    — the OnePass+ search itself: labels, the per-vertex
//		               skyline dominance index, and the best-first driver
//		• grparser   — reads the textual .gr graph description format
//		• cmd/onepass-plus — the command-line frontend
//
// Under the hood, everything is organized under independent subpackages:
//
//	graph/    — adjacency, edge weights, reversal
//	dijkstra/ — non-negative single-source shortest paths
//	altpath/  — labels, skyline dominance, the search driver
//	grparser/ — .gr graph file parsing
//	cmd/      — CLI entry point
//
// OnePass+ is one of a family of alternative-path algorithms (the others,
// ESX and Penalty, are not implemented here) that share the same graph and
// CLI plumbing but differ in how they explore and prune candidate paths.
package onepassplus
