// Package grparser reads the textual .gr graph description format: a
// header line "d" (directed), followed by a "|V| |E|" line, followed by
// |E| lines of the form "u v w flag" giving a 0-based directed edge from u
// to v with non-negative weight w. The trailing flag column is accepted
// but ignored.
//
// Parsing is deliberately kept outside the altpath search engine (it is an
// external collaborator, not part of the core), the same separation the
// engine's specification draws between the graph description format and
// the in-memory graph.Graph the engine actually consumes.
package grparser
