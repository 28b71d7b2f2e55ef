package pipeline_test

import (
	"fmt"

	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/neighbor"
	"github.com/kaede-rail/railtopo/pipeline"
	"github.com/kaede-rail/railtopo/railmodel"
)

// ExampleRun infers next-station adjacency for a three-station line: the
// endpoints get a single right/left neighbor, the middle one of each.
func ExampleRun() {
	input := railmodel.Input{
		Railway: railmodel.Railway{
			ID:    1,
			Paths: []geo.Polyline{{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}},
		},
		Stations: []railmodel.Station{
			{Code: 100, Platforms: []geo.Polyline{{geo.New(0, 0)}}},
			{Code: 200, Platforms: []geo.Polyline{{geo.New(1, 0)}}},
			{Code: 300, Platforms: []geo.Polyline{{geo.New(2, 0)}}},
		},
	}

	out, err := pipeline.Run(input, neighbor.DefaultThresholds())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range out {
		fmt.Println(s.StationCode, s.Left, s.Right)
	}
	// Output:
	// 100 [] [200]
	// 200 [100] [300]
	// 300 [200] []
}
