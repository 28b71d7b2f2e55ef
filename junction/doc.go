// Package junction inserts implicit junction vertices into a railway's track
// polylines where one polyline's endpoint lies on another polyline's
// interior segment, splitting the host polyline at that point.
//
// Raw track data expresses a junction as two polylines that share an
// endpoint on one side only — a stub ending mid-span of the other line.
// Without injection the graph builder (package graphbuild) would leave the
// two lines disconnected at every such T-intersection.
package junction
