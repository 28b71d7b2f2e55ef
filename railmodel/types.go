package railmodel

import "github.com/kaede-rail/railtopo/geo"

// Station is one raw station record: a code, the railway it belongs to, a
// display name, and the platform polylines describing its physical layout.
// A station may have more than one platform polyline (e.g. separate
// up/down platforms); each contributes one candidate binding vertex.
type Station struct {
	Code      int
	RailwayID int
	Name      string
	Platforms []geo.Polyline
}

// Railway is the raw set of track polylines belonging to one railway id.
// Polylines are disjoint line strings: adjacency between them is not given
// and must be reconstructed.
type Railway struct {
	ID    int
	Paths []geo.Polyline
}

// Input is the raw input to one per-railway pass: the track polylines for
// the railway and the stations that belong to it, already filtered by
// railway id by the caller (the engine processes one railway at a time).
type Input struct {
	Railway  Railway
	Stations []Station
}
