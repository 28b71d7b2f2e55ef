package graphbuild

import "github.com/kaede-rail/railtopo/geo"

// Build interns every polyline vertex into a dense id (first-occurrence
// order), links consecutive vertices of each polyline with an undirected
// edge, and counts PathKinds per vertex. It then splits degree-4 crossings
// that are not true 4-way junctions.
func Build(paths []geo.Polyline) *Graph {
	g := &Graph{}
	index := make(map[geo.Pos]VId)

	intern := func(p geo.Pos) VId {
		if id, ok := index[p]; ok {
			return id
		}
		id := g.addVertex(p)
		index[p] = id
		return id
	}

	for _, path := range paths {
		seenInThisPath := make(map[VId]bool, len(path))
		prev := VId(-1)
		for _, p := range path {
			id := intern(p)
			if !seenInThisPath[id] {
				g.PathKinds[id]++
				seenInThisPath[id] = true
			}
			if prev != -1 {
				g.addEdge(prev, id)
			}
			prev = id
		}
	}

	splitCrossings(g)
	return g
}
