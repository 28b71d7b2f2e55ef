package orient

import (
	"errors"

	"github.com/kaede-rail/railtopo/component"
)

// ErrNoDegreeOneVertex is returned when LinearList or WithLoop orientation
// is attempted on a component lacking the degree-1 vertex their shape
// requires.
var ErrNoDegreeOneVertex = errors.New("orient: expected a degree-1 vertex")

// ErrTopologicalSortFailed is returned when the one-shot DAG repair does
// not produce an acyclic seed graph. A violation indicates
// malformed input, not a recoverable condition.
var ErrTopologicalSortFailed = errors.New("orient: topological sort failed after repair")

// TieBreak compares two local station ids for the WithLoop junction tie
// break: it must report whether a's first platform polyline's first
// Pos sorts lexicographically before b's.
type TieBreak func(a, b int) bool

// Orientation is the final, globally consistent left/right assignment for
// one component, indexed by local station id.
type Orientation struct {
	Left  [][]int
	Right [][]int
}

func newOrientation(n int) Orientation {
	return Orientation{Left: make([][]int, n), Right: make([][]int, n)}
}

// neighbors returns the undirected neighbor set of v as the union of its
// provisional left and right sets.
func neighbors(c component.Component, v int) []int {
	out := make([]int, 0, len(c.LocalLeft[v])+len(c.LocalRight[v]))
	out = append(out, c.LocalLeft[v]...)
	out = append(out, c.LocalRight[v]...)
	return out
}

// otherNeighbor returns v's first neighbor other than excl, for a degree-2
// vertex. Panics if v has no such neighbor, which would indicate a topology
// misclassification; further such neighbors are not checked for.
func otherNeighbor(c component.Component, v, excl int) int {
	for _, n := range neighbors(c, v) {
		if n != excl {
			return n
		}
	}
	panic("orient: expected a neighbor other than the excluded one")
}

func findDegreeOne(c component.Component) (int, bool) {
	for v, d := range c.Degrees() {
		if d == 1 {
			return v, true
		}
	}
	return 0, false
}
