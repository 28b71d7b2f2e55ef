package component

import (
	"sort"

	"github.com/kaede-rail/railtopo/dsu"
	"github.com/kaede-rail/railtopo/neighbor"
)

// Component is one connected subset of the full station index space,
// renumbered to a dense [0, size) local id range. GlobalIndices[local] is
// the original station index; LocalLeft/LocalRight mirror neighbor.Result
// but with station indices translated to local ids.
type Component struct {
	GlobalIndices []int
	LocalLeft     [][]int
	LocalRight    [][]int
}

// Size returns the number of stations in the component.
func (c Component) Size() int { return len(c.GlobalIndices) }

// Degrees returns, per local id, the undirected neighbor count
// (len(LocalLeft[v]) + len(LocalRight[v])), as consumed by the topology
// classifier.
func (c Component) Degrees() []int {
	degrees := make([]int, c.Size())
	for v := range degrees {
		degrees[v] = len(c.LocalLeft[v]) + len(c.LocalRight[v])
	}
	return degrees
}

// Split partitions the full station set into connected components using
// union-find over the provisional BFS edges, and renumbers each
// component densely, preserving the ascending order of its original global
// indices. Components are returned in first-discovery order (ascending by
// the smallest global index they contain).
func Split(results []neighbor.Result) []Component {
	d := dsu.New(len(results))
	for i, r := range results {
		for _, j := range r.Left {
			d.Union(i, j)
		}
		for _, j := range r.Right {
			d.Union(i, j)
		}
	}

	groups := d.Groups()
	components := make([]Component, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		components = append(components, buildComponent(results, members))
	}

	sort.Slice(components, func(a, b int) bool {
		return components[a].GlobalIndices[0] < components[b].GlobalIndices[0]
	})
	return components
}

func buildComponent(results []neighbor.Result, members []int) Component {
	globalToLocal := make(map[int]int, len(members))
	for local, global := range members {
		globalToLocal[global] = local
	}

	c := Component{
		GlobalIndices: members,
		LocalLeft:     make([][]int, len(members)),
		LocalRight:    make([][]int, len(members)),
	}
	for local, global := range members {
		for _, j := range results[global].Left {
			c.LocalLeft[local] = append(c.LocalLeft[local], globalToLocal[j])
		}
		for _, j := range results[global].Right {
			c.LocalRight[local] = append(c.LocalRight[local], globalToLocal[j])
		}
	}
	return c
}
