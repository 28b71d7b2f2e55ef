package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaede-rail/railtopo/geo"
	"github.com/kaede-rail/railtopo/identity"
)

func buildDatabaseWithCompanies(stations []identity.Station, groups []identity.StationGroup, railways []identity.Railway, companies []identity.Company) *identity.Database {
	db := &identity.Database{Stations: stations, Groups: groups, Railways: railways, Companies: companies}
	db.Build()
	return db
}

func TestLinkRailwaysColorExactNameAndCompanyMatch(t *testing.T) {
	target := buildDatabaseWithCompanies(
		[]identity.Station{
			{Code: 1, Group: 0, Railway: 0, Pos: geo.New(35.0, 139.0)},
			{Code: 2, Group: 1, Railway: 0, Pos: geo.New(35.1, 139.1)},
		},
		[]identity.StationGroup{{Code: 1, Name: "A", StationCnt: 1}, {Code: 2, Name: "B", StationCnt: 1}},
		[]identity.Railway{{Code: 10, Name: "山手線", Company: 0}},
		[]identity.Company{{Code: 100, Name: "JR東日本"}},
	)
	reference := buildDatabaseWithCompanies(
		[]identity.Station{
			{Code: 201, Group: 0, Railway: 0, Pos: geo.New(35.0, 139.0)},
			{Code: 202, Group: 1, Railway: 0, Pos: geo.New(35.1, 139.1)},
		},
		[]identity.StationGroup{{Code: 201, Name: "A", StationCnt: 1}, {Code: 202, Name: "B", StationCnt: 1}},
		[]identity.Railway{{Code: 210, Name: "山手線", Company: 0}},
		[]identity.Company{{Code: 300, Name: "JR東日本"}},
	)

	pairs, unknown := identity.LinkRailwaysColor(target, reference, nil)

	assert.Empty(t, unknown)
	if assert.Len(t, pairs, 1) {
		assert.Equal(t, identity.RailwayPair{TargetCode: 10, ReferenceCode: 210}, pairs[0])
	}
}

func TestLinkRailwaysColorFullRosterAvgDist(t *testing.T) {
	target := buildDatabaseWithCompanies(
		[]identity.Station{
			{Code: 1, Group: 0, Railway: 0, Pos: geo.New(35.00, 139.00)},
			{Code: 2, Group: 1, Railway: 0, Pos: geo.New(35.01, 139.01)},
		},
		[]identity.StationGroup{{Code: 1, Name: "甲", StationCnt: 1}, {Code: 2, Name: "乙", StationCnt: 1}},
		[]identity.Railway{{Code: 10, Name: "新路線", Company: 0}},
		[]identity.Company{{Code: 100, Name: "私鉄"}},
	)
	reference := buildDatabaseWithCompanies(
		[]identity.Station{
			{Code: 201, Group: 0, Railway: 0, Pos: geo.New(35.0001, 139.0001)},
			{Code: 202, Group: 1, Railway: 0, Pos: geo.New(35.0101, 139.0101)},
		},
		[]identity.StationGroup{{Code: 201, Name: "甲駅", StationCnt: 1}, {Code: 202, Name: "乙駅", StationCnt: 1}},
		[]identity.Railway{{Code: 210, Name: "別名路線", Company: 0}},
		[]identity.Company{{Code: 300, Name: "別会社"}},
	)

	pairs, unknown := identity.LinkRailwaysColor(target, reference, nil)

	assert.Empty(t, unknown)
	if assert.Len(t, pairs, 1) {
		assert.Equal(t, identity.RailwayPair{TargetCode: 10, ReferenceCode: 210}, pairs[0])
	}
}

func TestLinkRailwaysColorUnresolvedWhenNoCandidateMatches(t *testing.T) {
	target := buildDatabaseWithCompanies(
		[]identity.Station{{Code: 1, Group: 0, Railway: 0, Pos: geo.New(35.0, 139.0)}},
		[]identity.StationGroup{{Code: 1, Name: "甲", StationCnt: 1}},
		[]identity.Railway{{Code: 10, Name: "新路線", Company: 0}},
		[]identity.Company{{Code: 100, Name: "私鉄"}},
	)
	reference := buildDatabaseWithCompanies(
		[]identity.Station{{Code: 201, Group: 0, Railway: 0, Pos: geo.New(40.0, 145.0)}},
		[]identity.StationGroup{{Code: 201, Name: "遠い駅", StationCnt: 1}},
		[]identity.Railway{{Code: 210, Name: "遠方線", Company: 0}},
		[]identity.Company{{Code: 300, Name: "別会社"}},
	)

	pairs, unknown := identity.LinkRailwaysColor(target, reference, nil)

	assert.Empty(t, pairs)
	assert.Equal(t, []identity.RailwayID{0}, unknown)
}
