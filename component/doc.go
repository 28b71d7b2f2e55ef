// Package component splits the full station set into connected components
// using the provisional BFS neighbor edges, renumbers each component to a
// dense local index range, and carries the per-component local adjacency
// topology and orient need.
package component
