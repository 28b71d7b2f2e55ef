// Package stationbind maps each station's platform polylines onto the
// nearest vertex of a built graph, producing the StationIndices and
// HasStation tables the neighbor BFS and switchback pruning both depend on.
package stationbind
