package orient

import "github.com/kaede-rail/railtopo/component"

// WithBranches orients the catch-all tree/branch-bearing shape:
//
//  1. Seed DAG construction from vertex 0: propagate a direction bit along
//     BFS, directing each undirected edge according to whether it was
//     reached via the upstream vertex's provisional right or left,
//     combined with the propagation direction inherited along the BFS
//     tree.
//  2. Topological sort; on failure (a cycle), apply the one-shot repair
//     below to the provisional left/right sets and rebuild.
//  3. Longest-path peeling over the resulting DAG, committing each
//     iteration's path into the final alignedRoot until every vertex is
//     visited.
//  4. Emit right = alignedRoot[v], left = {u : v in alignedRoot[u]}.
func WithBranches(c component.Component) (Orientation, error) {
	left := copySets(c.LocalLeft)
	right := copySets(c.LocalRight)

	root := buildSeedDAG(c, left, right)
	order, ok := topoSort(root, c.Size())
	if !ok {
		repair(left, right)
		root = buildSeedDAG(c, left, right)
		order, ok = topoSort(root, c.Size())
		if !ok {
			return Orientation{}, ErrTopologicalSortFailed
		}
	}

	alignedRoot := peelLongestPaths(root, order, c.Size())

	o := newOrientation(c.Size())
	for v, children := range alignedRoot {
		o.Right[v] = append([]int(nil), children...)
		for _, w := range children {
			o.Left[w] = append(o.Left[w], v)
		}
	}
	return o, nil
}

func copySets(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, s := range in {
		out[i] = append([]int(nil), s...)
	}
	return out
}

func contains(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}

// buildSeedDAG directs every undirected edge of the component using the
// provisional left/right sets, returning the directed adjacency. Components
// are connected by construction, so the BFS from 0 reaches every vertex.
func buildSeedDAG(c component.Component, left, right [][]int) [][]int {
	n := c.Size()
	root := make([][]int, n)
	visited := make([]bool, n)
	dirBit := make([]int, n)
	seenEdge := make(map[[2]int]bool)

	visited[0] = true
	dirBit[0] = 1
	queue := []int{0}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range append(append([]int{}, left[u]...), right[u]...) {
			key := edgeKey(u, v)
			if seenEdge[key] {
				continue
			}
			seenEdge[key] = true

			bit := 0
			if contains(right[u], v) {
				bit = 1
			}
			effective := bit
			if dirBit[u] == 0 {
				effective = 1 - bit
			}

			if effective == 1 {
				root[u] = append(root[u], v)
			} else {
				root[v] = append(root[v], u)
			}

			if !visited[v] {
				visited[v] = true
				dirBit[v] = effective
				queue = append(queue, v)
			}
		}
	}

	return root
}

func edgeKey(u, v int) [2]int {
	if u < v {
		return [2]int{u, v}
	}
	return [2]int{v, u}
}

// repair implements the targeted one-shot cycle fix: a vertex with
// no left and a two-element right has its whole right moved to left; a
// vertex with a two-element left and no right has one element popped from
// left onto right. This heuristic is preserved exactly, not generalized.
func repair(left, right [][]int) {
	for v := range left {
		switch {
		case len(left[v]) == 0 && len(right[v]) == 2:
			left[v], right[v] = right[v], nil
		case len(left[v]) == 2 && len(right[v]) == 0:
			last := len(left[v]) - 1
			right[v] = []int{left[v][last]}
			left[v] = left[v][:last]
		}
	}
}

// topoSort runs Kahn's algorithm over root; ok is false if a cycle remains.
func topoSort(root [][]int, n int) ([]int, bool) {
	indegree := make([]int, n)
	for _, children := range root {
		for _, w := range children {
			indegree[w]++
		}
	}

	var queue []int
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		order = append(order, v)
		for _, w := range root[v] {
			indegree[w]--
			if indegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	return order, len(order) == n
}

// peelLongestPaths repeatedly extracts the longest directed path whose
// edges lead into not-yet-visited vertices, commits those edges, and marks
// the newly reached vertices visited, until every vertex has been visited.
func peelLongestPaths(root [][]int, topoOrder []int, n int) [][]int {
	aligned := make([][]int, n)
	visited := make([]bool, n)

	for {
		allVisited := true
		for _, v := range visited {
			if !v {
				allVisited = false
				break
			}
		}
		if allVisited {
			break
		}

		dp := make([]int, n)
		next := make([]int, n)
		for i := range next {
			next[i] = -1
		}

		for i := len(topoOrder) - 1; i >= 0; i-- {
			v := topoOrder[i]
			for _, w := range root[v] {
				if visited[w] {
					continue
				}
				candidate := 1 + dp[w]
				if candidate > dp[v] {
					dp[v] = candidate
					next[v] = w
				}
			}
		}

		best := -1
		bestDP := -1
		for v := 0; v < n; v++ {
			if dp[v] > bestDP {
				bestDP = dp[v]
				best = v
			}
		}

		if bestDP <= 0 {
			// No vertex can extend into fresh territory: every remaining
			// unvisited vertex is isolated from the visited frontier by
			// already-consumed edges. Mark one unvisited vertex directly
			// to guarantee termination.
			for v := 0; v < n; v++ {
				if !visited[v] {
					visited[v] = true
					break
				}
			}
			continue
		}

		v := best
		if !visited[v] {
			visited[v] = true
		}
		for next[v] != -1 {
			w := next[v]
			aligned[v] = append(aligned[v], w)
			visited[w] = true
			v = w
		}
	}

	return aligned
}
