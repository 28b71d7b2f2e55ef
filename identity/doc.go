// Package identity is the secondary, cross-dataset pipeline: it reconciles
// station and railway identities across three independently sourced
// datasets (a target dataset, a reference dataset it is resolved against,
// and a route dataset used only for shinkansen synthesis) and assembles the
// derived shinkansen sub-network by borrowing adjacency from the route
// dataset.
//
// Station, Railway, Company, and StationGroup reference each other with
// integer handles into flat per-Database slices rather than pointers.
package identity
