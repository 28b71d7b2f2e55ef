package identity

import (
	"sort"
	"strings"

	"github.com/kaede-rail/railtopo/geo"
)

// ShinkansenSeed is one entry of the fixed seed table used to register
// reference-dataset shinkansen railways under a target-dataset company.
type ShinkansenSeed struct {
	RailwayCode int
	CompanyCode int
	RailwayName string
}

// DefaultShinkansenSeeds lists every operating shinkansen line. The Chūō
// Shinkansen is deliberately absent until it opens.
func DefaultShinkansenSeeds() []ShinkansenSeed {
	return []ShinkansenSeed{
		{1002, 3, "東海道新幹線"},
		{1003, 4, "山陽新幹線"},
		{1004, 2, "東北新幹線"},
		{1005, 2, "上越新幹線"},
		{1007, 2, "山形新幹線"},
		{1008, 2, "秋田新幹線"},
		{1009, 2, "北陸新幹線"},
		{1010, 6, "九州新幹線"},
		{1011, 1, "北海道新幹線"},
		{1012, 6, "西九州新幹線"},
	}
}

// ValidNonShinkansenRailNames names conventional (non-"新幹線"-suffixed)
// railways that the route dataset should still treat as shinkansen-like
// for adjacency borrowing: conventional lines that carry shinkansen
// services over shinkansen-gauge track.
func ValidNonShinkansenRailNames() map[string]bool {
	return map[string]bool{
		"奥羽線":  true,
		"上越線":  true,
		"北陸線":  true,
		"田沢湖線": true,
	}
}

func isShinkansenRailwayName(name string, validNames map[string]bool) bool {
	return strings.Contains(name, shinkansenMarker) || validNames[name]
}

// SynthesizeShinkansen registers the seed shinkansen railways into target,
// copies over the reference dataset's stations for each (matching them to
// existing target stations within 1.5km when the group names agree, else
// creating a fresh group), then derives left/right adjacency for the new
// stations by borrowing distances from route (the route dataset), whose
// stations are assumed to already carry resolved Left/Right from an
// upstream pipeline run.
//
// Returns the new station-pair and railway-pair links created along the
// way, mirroring LinkStationsName/LinkRailwaysColor's output shape so
// callers can merge them into the same pair lists.
func SynthesizeShinkansen(target, reference, route *Database, seeds []ShinkansenSeed, validNames map[string]bool) (stationPairs []StationPair, railwayPairs []RailwayPair) {
	seedByCode := make(map[int]CompanyID)
	for _, seed := range seeds {
		for c, company := range target.Companies {
			if company.Code == seed.CompanyCode {
				seedByCode[seed.RailwayCode] = CompanyID(c)
				break
			}
		}
	}

	newRailwayOf := make(map[RailwayID]RailwayID) // reference railway -> target railway
	for _, seed := range seeds {
		companyID, ok := seedByCode[seed.RailwayCode]
		if !ok {
			continue
		}
		targetRailwayID := RailwayID(len(target.Railways))
		target.Railways = append(target.Railways, Railway{Code: seed.RailwayCode, Name: seed.RailwayName, Company: companyID})

		for r, rail := range reference.Railways {
			if !strings.Contains(rail.Name, shinkansenMarker) {
				continue
			}
			if rail.Code != seed.RailwayCode {
				continue
			}
			newRailwayOf[RailwayID(r)] = targetRailwayID
		}
	}

	for refRailwayID, targetRailwayID := range newRailwayOf {
		railwayPairs = append(railwayPairs, RailwayPair{
			TargetCode:    target.Railways[targetRailwayID].Code,
			ReferenceCode: reference.Railways[refRailwayID].Code,
		})

		for _, refStationID := range reference.RailwayStations(refRailwayID) {
			refStation := reference.Stations[refStationID]
			refName := reference.Groups[refStation.Group].Name

			// 越後湯沢 already appears on the Jōetsu Shinkansen proper;
			// copying it again from the branch-suffixed line would create
			// a duplicate station.
			if refName == "越後湯沢" && strings.Contains(reference.Railways[refRailwayID].Name, "上越新幹線(") {
				continue
			}

			match, found := findAlmostSameNameStation(refName, refStation.Pos, target)
			var newStationID StationID
			if found && refStation.Pos.DistKM(target.Stations[match].Pos) <= 1.5 {
				target.Groups[target.Stations[match].Group].StationCnt++
				newStationID = StationID(len(target.Stations))
				target.Stations = append(target.Stations, Station{
					Code:    10_000_000 + refStation.Code,
					Group:   target.Stations[match].Group,
					Railway: targetRailwayID,
					Pos:     refStation.Pos,
				})
			} else {
				groupName := refName
				if i := strings.IndexByte(groupName, '('); i >= 0 {
					groupName = groupName[:i]
				}
				groupID := GroupID(len(target.Groups))
				target.Groups = append(target.Groups, StationGroup{Code: 10_000_000 + refStation.Code, Name: groupName, StationCnt: 1})
				newStationID = StationID(len(target.Stations))
				target.Stations = append(target.Stations, Station{
					Code:    10_000_000 + refStation.Code,
					Group:   groupID,
					Railway: targetRailwayID,
					Pos:     refStation.Pos,
				})
			}
			stationPairs = append(stationPairs, StationPair{
				TargetCode:    target.Stations[newStationID].Code,
				ReferenceCode: refStation.Code,
			})
		}
	}

	target.Build()
	borrowAdjacency(target, route, validNames)
	dedupeStationAdjacency(target)

	return stationPairs, railwayPairs
}

// findAlmostSameNameStation returns the station in target whose group name
// almostSame-matches name and is nearest to pos.
func findAlmostSameNameStation(name string, pos geo.Pos, target *Database) (StationID, bool) {
	best := StationID(0)
	bestDist := 0.0
	found := false
	for i, st := range target.Stations {
		if !almostSame(name, target.Groups[st.Group].Name) {
			continue
		}
		d := pos.DistKM(st.Pos)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = StationID(i)
		}
	}
	return best, found
}

// borrowAdjacency derives left/right neighbors for every newly synthesized
// shinkansen station in target by finding, among the route dataset's
// shinkansen-like stations with a matching group name, the nearest station
// (by BFS hop distance along route's existing Left/Right) belonging to
// another station in the same target railway.
func borrowAdjacency(target, route *Database, validNames map[string]bool) {
	routeCounterparts := func(st Station) []StationID {
		var out []StationID
		for i, rs := range route.Stations {
			if !isShinkansenRailwayName(route.Railways[rs.Railway].Name, validNames) {
				continue
			}
			if almostSame(target.Groups[st.Group].Name, route.Groups[rs.Group].Name) {
				out = append(out, StationID(i))
			}
		}
		return out
	}

	for r, railway := range target.Railways {
		if !strings.Contains(railway.Name, shinkansenMarker) {
			continue
		}
		railwayID := RailwayID(r)
		stations := target.RailwayStations(railwayID)

		for _, stationID := range stations {
			station := target.Stations[stationID]
			myRoutes := routeCounterparts(station)

			minLeftDist, minRightDist := 100000, 100000
			var minLeftStation, minRightStation StationID
			haveLeft, haveRight := false, false

			for _, otherID := range stations {
				if otherID == stationID {
					continue
				}
				otherRoutes := routeCounterparts(target.Stations[otherID])
				for _, myRoute := range myRoutes {
					for _, otherRoute := range otherRoutes {
						if d := bfsDist(route, myRoute, otherRoute, left); d >= 1 && d < minLeftDist {
							minLeftDist = d
							minLeftStation = otherID
							haveLeft = true
						}
						if d := bfsDist(route, myRoute, otherRoute, right); d >= 1 && d < minRightDist {
							minRightDist = d
							minRightStation = otherID
							haveRight = true
						}
					}
				}
			}

			if haveLeft {
				target.AddLeft(stationID, minLeftStation)
				target.AddRight(minLeftStation, stationID)
			}
			if haveRight {
				target.AddRight(stationID, minRightStation)
				target.AddLeft(minRightStation, stationID)
			}
		}
	}
}

type direction int

const (
	left direction = iota
	right
)

// bfsDist walks route's Left or Right adjacency from `from`, returning the
// hop count to target, or 100000 if unreachable.
func bfsDist(route *Database, from, dest StationID, dir direction) int {
	const unreachable = 100000
	dist := map[StationID]int{from: 0}
	queue := []StationID{from}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		var neighbors []StationID
		if dir == left {
			neighbors = route.Stations[cur].Left
		} else {
			neighbors = route.Stations[cur].Right
		}
		for _, next := range neighbors {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	if d, ok := dist[dest]; ok {
		return d
	}
	return unreachable
}

// dedupeStationAdjacency sorts and deduplicates the Left/Right lists of
// every shinkansen station: adjacency borrowing may record the same
// neighbor from more than one route counterpart.
func dedupeStationAdjacency(target *Database) {
	for i, st := range target.Stations {
		if !strings.Contains(target.Railways[st.Railway].Name, shinkansenMarker) {
			continue
		}
		target.Stations[i].Left = dedupeStationIDsByCode(target, target.Stations[i].Left)
		target.Stations[i].Right = dedupeStationIDsByCode(target, target.Stations[i].Right)
	}
}

func dedupeStationIDsByCode(target *Database, ids []StationID) []StationID {
	if len(ids) == 0 {
		return nil
	}
	sorted := append([]StationID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return target.Stations[sorted[i]].Code < target.Stations[sorted[j]].Code })
	out := sorted[:1]
	for _, id := range sorted[1:] {
		if target.Stations[id].Code != target.Stations[out[len(out)-1]].Code {
			out = append(out, id)
		}
	}
	return out
}
