// Package pipeline wires the per-railway passes — junction injection,
// graph building, station binding, neighbor BFS, component splitting,
// topology classification, and orientation — into the next-station
// inference engine, and offers a concurrent multi-railway driver.
package pipeline
