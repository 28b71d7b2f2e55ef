// Package topology classifies a station component's shape from its BFS
// neighbor degree sequence: None, LinearList, Circle, WithLoop, or
// WithBranches.
package topology
