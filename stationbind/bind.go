package stationbind

import (
	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/graphbuild"
	"github.com/kaede-rail/railtopo/railmodel"
)

// Binding is the result of mapping stations onto graph vertices.
//
// StationIndices[i] holds one vertex id per platform polyline of station i,
// chosen as the nearest graph vertex to that polyline's midpoint.
//
// HasStation is indexed by vertex id; HasStation[v] == -1 means no station
// claims v, otherwise it is the owning station's index into the input
// station slice. Overlapping claims are resolved by source order: later
// stations overwrite earlier ones. This is intentional and must
// not be "fixed" to a stable tie-break.
type Binding struct {
	StationIndices [][]graphbuild.VId
	HasStation     []int
}

// Bind maps every station's platform polylines onto their nearest vertex in
// g, in station order, so that later stations overwrite earlier ones on a
// shared vertex.
func Bind(g *graphbuild.Graph, stations []railmodel.Station) *Binding {
	b := &Binding{
		StationIndices: make([][]graphbuild.VId, len(stations)),
		HasStation:     make([]int, g.NumVertices()),
	}
	for v := range b.HasStation {
		b.HasStation[v] = -1
	}

	for i, st := range stations {
		for _, platform := range st.Platforms {
			mid := platform.Midpoint()
			vid := nearestVertex(g, mid)
			b.StationIndices[i] = append(b.StationIndices[i], vid)
			b.HasStation[vid] = i
		}
	}

	return b
}

func nearestVertex(g *graphbuild.Graph, p geo.Pos) graphbuild.VId {
	best := graphbuild.VId(0)
	bestDist := p.Dist(g.Pos[0])
	for v := 1; v < g.NumVertices(); v++ {
		d := p.Dist(g.Pos[v])
		if d < bestDist {
			bestDist = d
			best = graphbuild.VId(v)
		}
	}
	return best
}
