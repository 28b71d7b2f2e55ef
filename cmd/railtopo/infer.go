package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaede-rail/railtopo/config"
	"github.com/kaede-rail/railtopo/decode"
	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/jsonio"
	"github.com/kaede-rail/railtopo/pipeline"
	"github.com/kaede-rail/railtopo/railmodel"
)

var (
	inferInputPath  string
	inferOutputPath string
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer next-station adjacency for every railway in an input file",
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().StringVar(&inferInputPath, "input", "", "path to the raw railway/station token file (required)")
	inferCmd.Flags().StringVar(&inferOutputPath, "output", "", "path to write JSON output (default: stdout)")
	_ = inferCmd.MarkFlagRequired("input")
}

func runInfer(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	f, err := os.Open(inferInputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	inputs, err := parseRailways(f)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	driver := pipeline.NewDriver(cfg.Thresholds())
	results, err := driver.RunAll(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	out := os.Stdout
	if inferOutputPath != "" {
		f, err := os.Create(inferOutputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	for _, r := range results {
		if r.Err != nil {
			// A single malformed railway does not poison the others:
			// log it and continue emitting the rest.
			log.Error("railway pass failed", "railwayID", r.RailwayID, "error", r.Err)
			continue
		}
		log.Info("railway processed", "railwayID", r.RailwayID, "stations", len(r.Stations))
		if err := jsonio.Encode(out, r.Stations); err != nil {
			return fmt.Errorf("encoding railway %d: %w", r.RailwayID, err)
		}
	}
	return nil
}

// parseRailways reads the whitespace-token input convention:
//
//	<numRailways>
//	for each railway:
//	  <railwayID> <numPaths>
//	  for each path: <numPoints> then numPoints * (Decimal Decimal)
//	  <numStations>
//	  for each station: <code> <base64Name> <numPlatforms>
//	    for each platform: <numPoints> then numPoints * (Decimal Decimal)
func parseRailways(f *os.File) ([]railmodel.Input, error) {
	tr := decode.NewTokenReader(f)

	numRailways, err := tr.Int()
	if err != nil {
		return nil, err
	}

	inputs := make([]railmodel.Input, 0, numRailways)
	for r := int64(0); r < numRailways; r++ {
		railwayID, err := tr.Int()
		if err != nil {
			return nil, err
		}

		numPaths, err := tr.Int()
		if err != nil {
			return nil, err
		}
		paths := make([]geo.Polyline, 0, numPaths)
		for p := int64(0); p < numPaths; p++ {
			path, err := parsePolyline(tr)
			if err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}

		numStations, err := tr.Int()
		if err != nil {
			return nil, err
		}
		stations := make([]railmodel.Station, 0, numStations)
		for s := int64(0); s < numStations; s++ {
			st, err := parseStation(tr, int(railwayID))
			if err != nil {
				return nil, err
			}
			stations = append(stations, st)
		}

		inputs = append(inputs, railmodel.Input{
			Railway:  railmodel.Railway{ID: int(railwayID), Paths: paths},
			Stations: stations,
		})
	}
	return inputs, nil
}

func parsePolyline(tr *decode.TokenReader) (geo.Polyline, error) {
	n, err := tr.Int()
	if err != nil {
		return nil, err
	}
	pl := make(geo.Polyline, 0, n)
	for i := int64(0); i < n; i++ {
		p, err := tr.Pos(decode.ScalePrimary)
		if err != nil {
			return nil, err
		}
		pl = append(pl, p)
	}
	return pl, nil
}

func parseStation(tr *decode.TokenReader, railwayID int) (railmodel.Station, error) {
	code, err := tr.Int()
	if err != nil {
		return railmodel.Station{}, err
	}
	rawName, err := tr.Token()
	if err != nil {
		return railmodel.Station{}, err
	}
	numPlatforms, err := tr.Int()
	if err != nil {
		return railmodel.Station{}, err
	}
	platforms := make([]geo.Polyline, 0, numPlatforms)
	for p := int64(0); p < numPlatforms; p++ {
		pl, err := parsePolyline(tr)
		if err != nil {
			return railmodel.Station{}, err
		}
		platforms = append(platforms, pl)
	}
	return railmodel.Station{
		Code:      int(code),
		RailwayID: railwayID,
		Name:      decode.Base64Decode(rawName),
		Platforms: platforms,
	}, nil
}
