package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/graphbuild"
)

func TestBuildLinearPath(t *testing.T) {
	path := geo.Polyline{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}
	g := graphbuild.Build([]geo.Polyline{path})

	require.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))
}

func TestBuildInternsSharedVertices(t *testing.T) {
	a := geo.Polyline{geo.New(0, 0), geo.New(1, 0)}
	b := geo.Polyline{geo.New(1, 0), geo.New(1, 1)}
	g := graphbuild.Build([]geo.Polyline{a, b})

	require.Equal(t, 3, g.NumVertices())
	// The shared vertex (1,0) should have degree 2.
	var sharedDeg int
	for v := 0; v < g.NumVertices(); v++ {
		if g.Pos[v].Equal(geo.New(1, 0)) {
			sharedDeg = g.Degree(v)
		}
	}
	assert.Equal(t, 2, sharedDeg)
}

func TestBuildPathKindsCountsDistinctPolylines(t *testing.T) {
	a := geo.Polyline{geo.New(0, 0), geo.New(1, 0)}
	b := geo.Polyline{geo.New(1, 0), geo.New(2, 0)}
	c := geo.Polyline{geo.New(1, 0), geo.New(1, 1)}
	g := graphbuild.Build([]geo.Polyline{a, b, c})

	for v := 0; v < g.NumVertices(); v++ {
		if g.Pos[v].Equal(geo.New(1, 0)) {
			assert.Equal(t, 3, g.PathKinds[v])
		}
	}
}

func TestXSplitsFalseCrossing(t *testing.T) {
	// Two lines crossing at (1,1): NS line and EW line, sharing only the
	// crossing coordinate, each contributing 2 of the 4 edges there.
	ns := geo.Polyline{geo.New(0, 1), geo.New(1, 1), geo.New(2, 1)}
	ew := geo.Polyline{geo.New(1, 0), geo.New(1, 1), geo.New(1, 2)}
	g := graphbuild.Build([]geo.Polyline{ns, ew})

	// The crossing coordinate should now be represented by two vertices,
	// each of degree 2 (PathKinds was 2 < 4, so the X-split fires).
	var crossDegrees []int
	for v := 0; v < g.NumVertices(); v++ {
		if g.Pos[v].Equal(geo.New(1, 1)) {
			crossDegrees = append(crossDegrees, g.Degree(v))
		}
	}
	require.Len(t, crossDegrees, 2)
	assert.Equal(t, 2, crossDegrees[0])
	assert.Equal(t, 2, crossDegrees[1])
}

func TestPruneSwitchbacksRemovesUnlabeledSpur(t *testing.T) {
	trunk := geo.Polyline{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}
	spur := geo.Polyline{geo.New(1, 0), geo.New(1, 0.1)}
	g := graphbuild.Build([]geo.Polyline{trunk, spur})

	hasStation := make([]int, g.NumVertices())
	for i := range hasStation {
		hasStation[i] = -1
	}
	// Stations at the trunk endpoints only.
	for v := 0; v < g.NumVertices(); v++ {
		if g.Pos[v].Equal(geo.New(0, 0)) {
			hasStation[v] = 0
		}
		if g.Pos[v].Equal(geo.New(2, 0)) {
			hasStation[v] = 1
		}
	}

	g.PruneSwitchbacks(hasStation)

	for v := 0; v < g.NumVertices(); v++ {
		if g.Pos[v].Equal(geo.New(1, 0.1)) {
			assert.Equal(t, 0, g.Degree(v), "spur tip should be fully pruned")
		}
		if g.Pos[v].Equal(geo.New(1, 0)) {
			assert.Equal(t, 2, g.Degree(v), "junction vertex should keep only its trunk edges")
		}
	}
}

func TestPruneSwitchbacksKeepsLabeledDeadEnd(t *testing.T) {
	trunk := geo.Polyline{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}
	g := graphbuild.Build([]geo.Polyline{trunk})

	hasStation := []int{0, -1, 1}
	g.PruneSwitchbacks(hasStation)

	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))
}
