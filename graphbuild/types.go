package graphbuild

import "github.com/kaede-rail/railtopo/geo"

// VId is a dense vertex id assigned by first-occurrence order during Build.
type VId = int

// Graph is the derived undirected multigraph over a railway's track
// polylines. Adjacency lists may contain parallel edges; PathKinds[v] counts
// how many distinct polylines pass through v.
type Graph struct {
	Pos       []geo.Pos
	Adj       [][]VId
	PathKinds []int
}

// Degree returns the number of adjacency-list entries for v, counting
// parallel edges individually.
func (g *Graph) Degree(v VId) int {
	return len(g.Adj[v])
}

// NumVertices returns the number of vertices currently in the graph.
func (g *Graph) NumVertices() int {
	return len(g.Pos)
}

func (g *Graph) addVertex(p geo.Pos) VId {
	id := len(g.Pos)
	g.Pos = append(g.Pos, p)
	g.Adj = append(g.Adj, nil)
	g.PathKinds = append(g.PathKinds, 0)
	return id
}

func (g *Graph) addEdge(u, v VId) {
	g.Adj[u] = append(g.Adj[u], v)
	g.Adj[v] = append(g.Adj[v], u)
}

// removeOneOccurrence removes the first occurrence of target from adj,
// preserving the order of remaining entries.
func removeOneOccurrence(adj []VId, target VId) []VId {
	for i, v := range adj {
		if v == target {
			return append(adj[:i], adj[i+1:]...)
		}
	}
	return adj
}
