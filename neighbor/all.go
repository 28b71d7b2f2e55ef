package neighbor

import "github.com/kaede-rail/railtopo/graphbuild"

// RunAll runs Run for every station in stationIndices and returns one
// Result per station index, in order.
func RunAll(g *graphbuild.Graph, hasStation []int, stationIndices [][]graphbuild.VId, th Thresholds) []Result {
	results := make([]Result, len(stationIndices))
	for i := range stationIndices {
		results[i] = Run(g, hasStation, stationIndices, i, th)
	}
	return results
}
