package neighbor

import (
	"math"
	"sort"

	"github.com/kaede-rail/railtopo/graphbuild"
)

// Thresholds holds the two empirically-tuned magic constants the BFS and
// direction bucketing depend on. Do not "fix" these values: 0.33 and
// 0.1 reflect tuning against real data, not a principled derivation.
type Thresholds struct {
	// TurnCos is the turn-cosine threshold below which a turn is admitted as
	// "roughly straight" during BFS traversal.
	TurnCos float64
	// DirectionBucket is the radian tolerance used to decide whether two
	// departure angles belong to the same provisional direction.
	DirectionBucket float64
}

// DefaultThresholds returns the tuned production values.
func DefaultThresholds() Thresholds {
	return Thresholds{TurnCos: 0.33, DirectionBucket: 0.1}
}

// Result is the provisional BFS outcome for one station: the undirected
// neighbor set (as station indices) split into two directions. The
// left/right labels are provisional; the orientation engine makes
// them globally consistent.
type Result struct {
	Left  []int
	Right []int
}

// Run executes the multi-source BFS for station i.
//
// hasStation is indexed by vertex id; stationIndices[k] is the
// list of vertex ids bound to station k.
func Run(g *graphbuild.Graph, hasStation []int, stationIndices [][]graphbuild.VId, i int, th Thresholds) Result {
	n := g.NumVertices()
	visited := make([]int, n)
	prev := make([]graphbuild.VId, n)
	for v := 0; v < n; v++ {
		visited[v] = -1
		prev[v] = -1
	}

	queue := make([]graphbuild.VId, 0, len(stationIndices[i]))
	for _, s := range stationIndices[i] {
		if visited[s] == -1 {
			visited[s] = 0
			queue = append(queue, s)
		}
	}

	var nextStations []graphbuild.VId

	for head := 0; head < len(queue); head++ {
		pos := queue[head]
		p := prev[pos]
		deg := g.Degree(pos)

		for _, x := range g.Adj[pos] {
			if visited[x] != -1 {
				continue
			}

			admit := p == -1 || deg == 2
			if !admit {
				px := g.Pos[x].Sub(g.Pos[pos])
				pp := g.Pos[p].Sub(g.Pos[pos])
				admit = px.ArgCos(pp) < th.TurnCos
			}
			if !admit {
				continue
			}

			visited[x] = visited[pos] + 1
			prev[x] = pos

			if hasStation[x] == -1 || hasStation[x] == i {
				queue = append(queue, x)
			} else {
				nextStations = append(nextStations, x)
			}
		}
	}

	return classifyDirections(g, prev, nextStations, hasStation, th.DirectionBucket)
}

// classifyDirections buckets next stations by second-hop angle: the first
// discovered next-station vertex defines direction 0; every other vertex is
// placed in direction 0 iff its departure angle is within bucket radians of
// the first one's (mod wraparound at 2*pi), else direction 1.
func classifyDirections(g *graphbuild.Graph, prev []graphbuild.VId, nextStations []graphbuild.VId, hasStation []int, bucket float64) Result {
	var res Result
	if len(nextStations) == 0 {
		return res
	}

	theta0 := departureAngle(g, prev, nextStations[0])

	dir0 := map[int]bool{}
	dir1 := map[int]bool{}

	for idx, vtx := range nextStations {
		owner := hasStation[vtx]
		if idx == 0 {
			dir0[owner] = true
			continue
		}
		theta := departureAngle(g, prev, vtx)
		diff := math.Abs(theta0 - theta)
		if diff < bucket || math.Abs(2*math.Pi-diff) < bucket {
			dir0[owner] = true
		} else {
			dir1[owner] = true
		}
	}

	res.Left = sortedKeys(dir0)
	res.Right = sortedKeys(dir1)
	return res
}

// departureAngle walks back from n to the second-hop vertex (the one whose
// predecessor is a BFS source) and returns the polar angle of the step that
// left the station, representing "which way we left station i".
func departureAngle(g *graphbuild.Graph, prev []graphbuild.VId, n graphbuild.VId) float64 {
	p := n
	for prev[prev[p]] != -1 {
		p = prev[p]
	}
	return g.Pos[p].Sub(g.Pos[prev[p]]).Arg()
}

func sortedKeys(m map[int]bool) []int {
	if len(m) == 0 {
		return nil
	}
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
