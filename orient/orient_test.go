package orient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaede-rail/railtopo/component"
	"github.com/kaede-rail/railtopo/orient"
)

func threeStationLineComponent() component.Component {
	return component.Component{
		GlobalIndices: []int{0, 1, 2},
		LocalLeft:     [][]int{nil, {0}, {1}},
		LocalRight:    [][]int{{1}, {2}, nil},
	}
}

func TestLinearThreeStations(t *testing.T) {
	c := threeStationLineComponent()
	o, err := orient.Linear(c)
	require.NoError(t, err)

	assert.Empty(t, o.Left[0])
	assert.Equal(t, []int{1}, o.Right[0])

	assert.Equal(t, []int{0}, o.Left[1])
	assert.Equal(t, []int{2}, o.Right[1])

	assert.Equal(t, []int{1}, o.Left[2])
	assert.Empty(t, o.Right[2])
}

func squareLoopComponent() component.Component {
	// A 4-cycle: 0-1-2-3-0.
	return component.Component{
		GlobalIndices: []int{0, 1, 2, 3},
		LocalLeft:     [][]int{{3}, {0}, {1}, {2}},
		LocalRight:    [][]int{{1}, {2}, {3}, {0}},
	}
}

func TestCircleFourStations(t *testing.T) {
	c := squareLoopComponent()
	o := orient.Circle(c)

	for v := 0; v < 4; v++ {
		require.Len(t, o.Left[v], 1)
		require.Len(t, o.Right[v], 1)
	}

	// Walking right 4 times returns to the origin.
	cur := 0
	for i := 0; i < 4; i++ {
		cur = o.Right[cur][0]
	}
	assert.Equal(t, 0, cur)
}

func TestWithLoopTieBreakOrdersJunctionRight(t *testing.T) {
	// Trunk: 0 (deg1) -> 1 (junction, deg3). Loop: 1-2-3-1.
	c := component.Component{
		GlobalIndices: []int{0, 1, 2, 3},
		LocalLeft:     [][]int{nil, {0}, {1}, {2}},
		LocalRight:    [][]int{{1}, {2, 3}, {3}, {1}},
	}

	// tieBreak: 2 < 3.
	o, err := orient.WithLoop(c, func(a, b int) bool { return a < b })
	require.NoError(t, err)

	assert.Equal(t, []int{1}, o.Right[0])
	assert.Equal(t, []int{0}, o.Left[1])
	assert.Equal(t, []int{2, 3}, o.Right[1])
	assert.Equal(t, []int{1}, o.Left[2])
	assert.Equal(t, []int{3}, o.Right[2])
	assert.Equal(t, []int{2}, o.Left[3])
	assert.Equal(t, []int{1}, o.Right[3])
}

func branchedYComponent() component.Component {
	// A Y shape: trunk 0-1 (as stations, 0 and junction vertex folded into
	// station 1), branches to 2 and 3. Here stations are 0 (trunk end), 1
	// (junction-adjacent station), 2 and 3 (branch ends); 1 connects to
	// both 2 and 3.
	return component.Component{
		GlobalIndices: []int{0, 1, 2, 3},
		LocalLeft:     [][]int{nil, {0}, {1}, {1}},
		LocalRight:    [][]int{{1}, {2, 3}, nil, nil},
	}
}

func TestWithBranchesProducesTwoElementRightAtJunction(t *testing.T) {
	c := branchedYComponent()
	o, err := orient.WithBranches(c)
	require.NoError(t, err)

	// The junction-adjacent station 1 carries both branch ends on its right.
	assert.ElementsMatch(t, []int{2, 3}, o.Right[1])

	// Every vertex must be covered: union of left/right equals neighbors.
	for v := 0; v < c.Size(); v++ {
		got := append(append([]int{}, o.Left[v]...), o.Right[v]...)
		want := append(append([]int{}, c.LocalLeft[v]...), c.LocalRight[v]...)
		assert.ElementsMatch(t, want, got, "vertex %d", v)
	}
}
