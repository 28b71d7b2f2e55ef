// Package graphbuild turns a railway's (junction-injected) track polylines
// into an undirected multigraph: it interns coordinates into dense vertex
// ids, splits degree-4 "X" crossings that are really two independent
// through-lines, and (once the caller has bound stations to vertices) prunes
// unlabeled dead-end switchback spurs.
package graphbuild
