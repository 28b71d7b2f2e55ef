package pipeline

import (
	"github.com/kaede-rail/railtopo/component"
	"github.com/kaede-rail/railtopo/graphbuild"
	"github.com/kaede-rail/railtopo/junction"
	"github.com/kaede-rail/railtopo/neighbor"
	"github.com/kaede-rail/railtopo/orient"
	"github.com/kaede-rail/railtopo/railmodel"
	"github.com/kaede-rail/railtopo/stationbind"
	"github.com/kaede-rail/railtopo/topology"
)

// NextStaInfo is one station's final directed neighbor assignment, with
// station indices resolved to the raw station codes that escape the
// per-railway pass.
type NextStaInfo struct {
	StationCode int
	Index       int
	Left        []int
	Right       []int
}

// Run executes the full per-railway pipeline
// and returns one NextStaInfo per station, ordered by connected component
// (first-discovery order) and then by ascending input station index within
// each component.
func Run(input railmodel.Input, th neighbor.Thresholds) ([]NextStaInfo, error) {
	paths := junction.Inject(input.Railway.Paths)
	g := graphbuild.Build(paths)

	binding := stationbind.Bind(g, input.Stations)
	g.PruneSwitchbacks(binding.HasStation)

	results := neighbor.RunAll(g, binding.HasStation, binding.StationIndices, th)
	comps := component.Split(results)

	var out []NextStaInfo
	offset := 0
	for _, c := range comps {
		t := topology.Classify(c.Degrees())
		tieBreak := platformTieBreak(input.Stations, c)

		o, err := orient.Orient(c, t, tieBreak)
		if err != nil {
			return nil, err
		}

		for local := 0; local < c.Size(); local++ {
			global := c.GlobalIndices[local]
			station := input.Stations[global]

			out = append(out, NextStaInfo{
				StationCode: station.Code,
				Index:       offset + local,
				Left:        resolveCodes(input.Stations, c, o.Left[local]),
				Right:       resolveCodes(input.Stations, c, o.Right[local]),
			})
		}
		offset += c.Size()
	}

	return out, nil
}

func resolveCodes(stations []railmodel.Station, c component.Component, locals []int) []int {
	if len(locals) == 0 {
		return nil
	}
	codes := make([]int, len(locals))
	for i, local := range locals {
		codes[i] = stations[c.GlobalIndices[local]].Code
	}
	return codes
}

// platformTieBreak compares two local station ids by their first platform
// polyline's first Pos, lexicographically.
func platformTieBreak(stations []railmodel.Station, c component.Component) orient.TieBreak {
	return func(a, b int) bool {
		pa := stations[c.GlobalIndices[a]].Platforms[0].First()
		pb := stations[c.GlobalIndices[b]].Platforms[0].First()
		return pa.Less(pb)
	}
}
