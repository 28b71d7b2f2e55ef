package identity

import "github.com/kaede-rail/railtopo/geo"

// CompanyID, RailwayID, GroupID, and StationID are arena indices into a
// Database's flat slices. Records never hold pointers to each other.
type CompanyID int
type RailwayID int
type GroupID int
type StationID int

// Company is an operating company.
type Company struct {
	Code int
	Name string
}

// Railway is a named line belonging to a company.
type Railway struct {
	Code    int
	Name    string
	Company CompanyID
}

// StationGroup is the station-name grouping shared by stations that serve
// the same physical location across railways (e.g. a transfer hub).
type StationGroup struct {
	Code       int
	Name       string
	StationCnt int
}

// Station is one railway's stop at a station group, with its resolved
// left/right adjacency (populated either by an upstream pipeline's output
// or, for synthesized shinkansen stations, by SynthesizeShinkansen).
type Station struct {
	Code    int
	Group   GroupID
	Railway RailwayID
	Pos     geo.Pos
	Left    []StationID
	Right   []StationID
}

// Database is one source dataset's flat station/railway/company/group
// tables, plus the code-based indices the identity pipeline needs.
type Database struct {
	Stations  []Station
	Groups    []StationGroup
	Railways  []Railway
	Companies []Company

	stationByCode       map[int]StationID
	railwayStationsByID map[RailwayID][]StationID
}

// Build (re)indexes Stations by code and by owning railway. Must be called
// after all stations are appended and before any lookup method is used.
func (d *Database) Build() {
	d.stationByCode = make(map[int]StationID, len(d.Stations))
	d.railwayStationsByID = make(map[RailwayID][]StationID)
	for i, st := range d.Stations {
		id := StationID(i)
		d.stationByCode[st.Code] = id
		d.railwayStationsByID[st.Railway] = append(d.railwayStationsByID[st.Railway], id)
	}
}

// StationByCode returns the station with the given code.
func (d *Database) StationByCode(code int) (StationID, bool) {
	id, ok := d.stationByCode[code]
	return id, ok
}

// RailwayStations returns every station belonging to railway r, in
// insertion order.
func (d *Database) RailwayStations(r RailwayID) []StationID {
	return d.railwayStationsByID[r]
}

// AddLeft records a directed left-adjacency from a to b.
func (d *Database) AddLeft(a, b StationID) {
	d.Stations[a].Left = append(d.Stations[a].Left, b)
}

// AddRight records a directed right-adjacency from a to b.
func (d *Database) AddRight(a, b StationID) {
	d.Stations[a].Right = append(d.Stations[a].Right, b)
}
