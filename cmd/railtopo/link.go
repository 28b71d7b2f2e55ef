package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kaede-rail/railtopo/decode"
	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/identity"
)

var (
	linkTargetPath    string
	linkReferencePath string
	linkRoutePath     string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Reconcile station and railway identities across datasets, and synthesize the shinkansen sub-network",
	RunE:  runLink,
}

func init() {
	linkCmd.Flags().StringVar(&linkTargetPath, "target", "", "the eki_data-shaped database being resolved (required)")
	linkCmd.Flags().StringVar(&linkReferencePath, "reference", "", "the ekispert_data-shaped database to resolve against (required)")
	linkCmd.Flags().StringVar(&linkRoutePath, "route", "", "the kokudo_route-shaped database shinkansen adjacency is borrowed from (optional)")
	_ = linkCmd.MarkFlagRequired("target")
	_ = linkCmd.MarkFlagRequired("reference")
}

// linkOutput is the JSON summary of one link run.
type linkOutput struct {
	StationPairs    []identity.StationPair `json:"stationPairs"`
	UnknownStations int                    `json:"unknownStations"`
	RailwayPairs    []identity.RailwayPair `json:"railwayPairs"`
	UnknownRailways int                    `json:"unknownRailways"`
}

func runLink(cmd *cobra.Command, args []string) error {
	log := newLogger()

	target, err := loadDatabase(linkTargetPath)
	if err != nil {
		return fmt.Errorf("loading target: %w", err)
	}
	reference, err := loadDatabase(linkReferencePath)
	if err != nil {
		return fmt.Errorf("loading reference: %w", err)
	}

	stationPairs, unknownStations := identity.LinkStationsName(target, reference)
	log.Info("stations linked", "resolved", len(stationPairs), "unknown", len(unknownStations))

	railwayPairs, unknownRailways := identity.LinkRailwaysColor(target, reference, stationPairs)
	log.Info("railways linked", "resolved", len(railwayPairs), "unknown", len(unknownRailways))

	if linkRoutePath != "" {
		route, err := loadDatabase(linkRoutePath)
		if err != nil {
			return fmt.Errorf("loading route: %w", err)
		}
		synthStations, synthRailways := identity.SynthesizeShinkansen(
			target, reference, route,
			identity.DefaultShinkansenSeeds(), identity.ValidNonShinkansenRailNames(),
		)
		stationPairs = append(stationPairs, synthStations...)
		railwayPairs = append(railwayPairs, synthRailways...)
		log.Info("shinkansen synthesized", "stations", len(synthStations), "railways", len(synthRailways))
	}

	return json.NewEncoder(os.Stdout).Encode(linkOutput{
		StationPairs:    stationPairs,
		UnknownStations: len(unknownStations),
		RailwayPairs:    railwayPairs,
		UnknownRailways: len(unknownRailways),
	})
}

// loadDatabase reads the identity.Database token-file convention:
//
//	<numCompanies>
//	for each: <code> <base64Name>
//	<numRailways>
//	for each: <code> <base64Name> <companyIndex>
//	<numGroups>
//	for each: <code> <base64Name> <stationCnt>
//	<numStations>
//	for each: <code> <groupIndex> <railwayIndex> <lat> <lng> <numLeft> <leftIndex...> <numRight> <rightIndex...>
//
// Left/Right indices are only meaningful for a route ("kokudo_route")
// database: SynthesizeShinkansen assumes route stations already carry
// resolved adjacency from an upstream inference run.
func loadDatabase(path string) (*identity.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tr := decode.NewTokenReader(f)
	db := &identity.Database{}

	numCompanies, err := tr.Int()
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < numCompanies; i++ {
		code, err := tr.Int()
		if err != nil {
			return nil, err
		}
		name, err := tr.Token()
		if err != nil {
			return nil, err
		}
		db.Companies = append(db.Companies, identity.Company{Code: int(code), Name: decode.Base64Decode(name)})
	}

	numRailways, err := tr.Int()
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < numRailways; i++ {
		code, err := tr.Int()
		if err != nil {
			return nil, err
		}
		name, err := tr.Token()
		if err != nil {
			return nil, err
		}
		companyIdx, err := tr.Int()
		if err != nil {
			return nil, err
		}
		db.Railways = append(db.Railways, identity.Railway{
			Code:    int(code),
			Name:    decode.Base64Decode(name),
			Company: identity.CompanyID(companyIdx),
		})
	}

	numGroups, err := tr.Int()
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < numGroups; i++ {
		code, err := tr.Int()
		if err != nil {
			return nil, err
		}
		name, err := tr.Token()
		if err != nil {
			return nil, err
		}
		stationCnt, err := tr.Int()
		if err != nil {
			return nil, err
		}
		db.Groups = append(db.Groups, identity.StationGroup{
			Code:       int(code),
			Name:       decode.Base64Decode(name),
			StationCnt: int(stationCnt),
		})
	}

	numStations, err := tr.Int()
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < numStations; i++ {
		st, err := parseIdentityStation(tr)
		if err != nil {
			return nil, err
		}
		db.Stations = append(db.Stations, st)
	}

	db.Build()
	return db, nil
}

func parseIdentityStation(tr *decode.TokenReader) (identity.Station, error) {
	code, err := tr.Int()
	if err != nil {
		return identity.Station{}, err
	}
	groupIdx, err := tr.Int()
	if err != nil {
		return identity.Station{}, err
	}
	railwayIdx, err := tr.Int()
	if err != nil {
		return identity.Station{}, err
	}
	lat, err := tr.Decimal(decode.ScaleLinker)
	if err != nil {
		return identity.Station{}, err
	}
	lng, err := tr.Decimal(decode.ScaleLinker)
	if err != nil {
		return identity.Station{}, err
	}

	left, err := parseIdentityNeighbors(tr)
	if err != nil {
		return identity.Station{}, err
	}
	right, err := parseIdentityNeighbors(tr)
	if err != nil {
		return identity.Station{}, err
	}

	return identity.Station{
		Code:    int(code),
		Group:   identity.GroupID(groupIdx),
		Railway: identity.RailwayID(railwayIdx),
		Pos:     geo.New(lat, lng),
		Left:    left,
		Right:   right,
	}, nil
}

func parseIdentityNeighbors(tr *decode.TokenReader) ([]identity.StationID, error) {
	n, err := tr.Int()
	if err != nil {
		return nil, err
	}
	out := make([]identity.StationID, 0, n)
	for i := int64(0); i < n; i++ {
		idx, err := tr.Int()
		if err != nil {
			return nil, err
		}
		out = append(out, identity.StationID(idx))
	}
	return out, nil
}
