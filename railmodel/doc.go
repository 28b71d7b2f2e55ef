// Package railmodel holds the immutable raw-data records the core pipeline
// consumes: stations (with platform polylines) and railways (with track
// polyline sets), produced by an external parser collaborator.
//
// These are plain value types, not the handle-linked Station/Railway/
// Company/StationGroup records of the secondary identity pipeline (see the
// identity package): the core only ever needs a station's code, its owning
// railway, its name, and its platform geometry.
package railmodel
