// Package dsu provides a disjoint-set (union-find) structure over dense
// integer ids, with path compression and union-by-size.
//
// The component splitter needs connectivity bookkeeping over already-dense
// station indices, so the forest is slice-backed rather than map-backed.
package dsu
