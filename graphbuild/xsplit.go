package graphbuild

// splitCrossings restores two distinct "through" paths at every degree-4
// vertex that is really just two polylines crossing at the same coordinate
// (PathKinds < 4, i.e. fewer than 4 distinct polylines actually meet there):
// it duplicates the vertex at the same position and moves the last two
// adjacency entries onto the duplicate, rewriting their back-edges.
//
// Only vertices present before this pass runs are considered: duplicates
// created here have degree 2, never degree 4, so the pass does not recurse
// into its own output.
func splitCrossings(g *Graph) {
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		if g.Degree(v) != 4 || g.PathKinds[v] >= 4 {
			continue
		}

		moved := append([]VId(nil), g.Adj[v][2:4]...)
		g.Adj[v] = append([]VId(nil), g.Adj[v][:2]...)

		vPrime := g.addVertex(g.Pos[v])
		g.PathKinds[vPrime] = g.PathKinds[v]
		g.Adj[vPrime] = moved

		for _, nb := range moved {
			g.Adj[nb] = replaceOneOccurrence(g.Adj[nb], v, vPrime)
		}
	}
}

// replaceOneOccurrence rewrites the first occurrence of oldID in adj to
// newID, used to retarget a back-edge onto a freshly split vertex.
func replaceOneOccurrence(adj []VId, oldID, newID VId) []VId {
	for i, v := range adj {
		if v == oldID {
			adj[i] = newID
			return adj
		}
	}
	return adj
}
