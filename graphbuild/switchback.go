package graphbuild

import "github.com/soniakeys/bits"

// PruneSwitchbacks removes unlabeled dead-end chains: while a vertex has
// degree 1 and is not claimed by any station (hasStation[v] == -1), its sole
// edge is removed, and the prune continues along the chain from its former
// neighbor until a station or a branch is reached.
//
// hasStation is indexed by vertex id; it must already reflect the station
// binder's output, since pruning must never remove a vertex a station
// is bound to.
func (g *Graph) PruneSwitchbacks(hasStation []int) {
	removed := bits.New(g.NumVertices())
	var queue []VId
	for v := 0; v < g.NumVertices(); v++ {
		if g.Degree(v) == 1 && hasStation[v] == -1 {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if removed.Bit(v) != 0 || hasStation[v] != -1 || g.Degree(v) != 1 {
			continue
		}

		nb := g.Adj[v][0]
		g.Adj[v] = nil
		removed.SetBit(v, 1)
		g.Adj[nb] = removeOneOccurrence(g.Adj[nb], v)

		if removed.Bit(nb) == 0 && hasStation[nb] == -1 && g.Degree(nb) == 1 {
			queue = append(queue, nb)
		}
	}
}
