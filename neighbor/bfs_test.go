package neighbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/graphbuild"
	"github.com/kaede-rail/railtopo/neighbor"
	"github.com/kaede-rail/railtopo/railmodel"
	"github.com/kaede-rail/railtopo/stationbind"
)

// buildThreeStationLine places stations at (0,0), (1,0),
// (2,0) on a single polyline.
func buildThreeStationLine(t *testing.T) (*graphbuild.Graph, *stationbind.Binding) {
	t.Helper()
	track := geo.Polyline{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}
	g := graphbuild.Build([]geo.Polyline{track})

	stations := []railmodel.Station{
		{Code: 0, Platforms: []geo.Polyline{{geo.New(0, 0)}}},
		{Code: 1, Platforms: []geo.Polyline{{geo.New(1, 0)}}},
		{Code: 2, Platforms: []geo.Polyline{{geo.New(2, 0)}}},
	}
	b := stationbind.Bind(g, stations)
	return g, b
}

func TestRunThreeStationLineMiddleSeesBothEnds(t *testing.T) {
	g, b := buildThreeStationLine(t)
	th := neighbor.DefaultThresholds()

	res0 := neighbor.Run(g, b.HasStation, b.StationIndices, 0, th)
	res1 := neighbor.Run(g, b.HasStation, b.StationIndices, 1, th)
	res2 := neighbor.Run(g, b.HasStation, b.StationIndices, 2, th)

	// Station 0 sees only station 1.
	require.Len(t, append(res0.Left, res0.Right...), 1)
	assert.Contains(t, append(res0.Left, res0.Right...), 1)

	// Station 1 (pass-through, degree 2) sees both 0 and 2, one per side.
	all1 := append(append([]int{}, res1.Left...), res1.Right...)
	require.Len(t, all1, 2)
	assert.Contains(t, all1, 0)
	assert.Contains(t, all1, 2)
	assert.NotEqual(t, res1.Left, res1.Right)

	// Station 2 sees only station 1.
	all2 := append(res2.Left, res2.Right...)
	require.Len(t, all2, 1)
	assert.Contains(t, all2, 1)
}

func TestRunAllProducesOneResultPerStation(t *testing.T) {
	g, b := buildThreeStationLine(t)
	th := neighbor.DefaultThresholds()

	results := neighbor.RunAll(g, b.HasStation, b.StationIndices, th)
	require.Len(t, results, 3)
}
