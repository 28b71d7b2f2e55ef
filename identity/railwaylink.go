package identity

import (
	"sort"

	"github.com/katalvlaran/lvlath/dtw"

	"github.com/kaede-rail/railtopo/geo"
)

// RailwayPair links a target-dataset railway code to the reference-dataset
// railway code it was resolved to.
type RailwayPair struct {
	TargetCode    int
	ReferenceCode int
}

// LinkRailwaysColor resolves target-dataset railways to reference-dataset
// railways. It tries, per target railway,
// in order: an exact (name, company-name) match; a match via any
// single-station (StationCnt == 1) sharing a group name; a full-roster
// match where the average per-station distance under one of several sort
// orders (or either direction's nearest-neighbor assignment, or a DTW
// alignment of both rosters' distances from a common origin) is at most
// 1.0. Railways left unresolved are retried using the already-resolved
// station pairs: a railway with every linkable station pointing at the
// same reference railway is accepted.
func LinkRailwaysColor(target, reference *Database, stationPairs []StationPair) (pairs []RailwayPair, unknown []RailwayID) {
	for r, railway := range target.Railways {
		railwayID := RailwayID(r)
		targetStations := target.RailwayStations(railwayID)
		if len(targetStations) == 0 {
			continue
		}
		resolved := false

		for s, subRailway := range reference.Railways {
			subRailwayID := RailwayID(s)
			subStations := reference.RailwayStations(subRailwayID)
			if len(subStations) == 0 {
				continue
			}

			if railway.Name == subRailway.Name &&
				target.Companies[railway.Company].Name == reference.Companies[subRailway.Company].Name {
				pairs = append(pairs, RailwayPair{TargetCode: railway.Code, ReferenceCode: subRailway.Code})
				resolved = true
				break
			}

			if singleStationNameMatch(target, targetStations, reference, subStations) {
				pairs = append(pairs, RailwayPair{TargetCode: railway.Code, ReferenceCode: subRailway.Code})
				resolved = true
				break
			}

			if len(targetStations) != len(subStations) {
				continue
			}
			if fullRosterAvgDist(target, targetStations, reference, subStations) <= 1.0 {
				pairs = append(pairs, RailwayPair{TargetCode: railway.Code, ReferenceCode: subRailway.Code})
				resolved = true
				break
			}
		}

		if !resolved {
			unknown = append(unknown, railwayID)
		}
	}

	resolveFromStationPairs(target, reference, stationPairs, &pairs, &unknown)
	return pairs, dedupeRailwayIDs(unknown)
}

// singleStationNameMatch reports whether the target roster's first
// single-station group has a same-named single-station counterpart on the
// reference roster. found is sticky: once the first such group matches, the
// pair is accepted and later single-station groups are not re-checked. This
// heuristic is preserved exactly, not tightened to an all-groups check.
func singleStationNameMatch(target *Database, targetStations []StationID, reference *Database, subStations []StationID) bool {
	found := false
	for _, tsID := range targetStations {
		ts := target.Stations[tsID]
		if target.Groups[ts.Group].StationCnt != 1 {
			continue
		}
		for _, ssID := range subStations {
			ss := reference.Stations[ssID]
			if reference.Groups[ss.Group].StationCnt != 1 {
				continue
			}
			if target.Groups[ts.Group].Name == reference.Groups[ss.Group].Name {
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return found
}

// fullRosterAvgDist tries every sort-key pairing and both nearest-neighbor
// directions, returning the smallest resulting average distance.
func fullRosterAvgDist(target *Database, targetStations []StationID, reference *Database, subStations []StationID) float64 {
	keys := []func(*Database, StationID) float64{
		func(d *Database, id StationID) float64 { return d.Stations[id].Pos.Lat },
		func(d *Database, id StationID) float64 { return d.Stations[id].Pos.Lng },
		func(d *Database, id StationID) float64 { return d.Stations[id].Pos.Lat + d.Stations[id].Pos.Lng },
	}

	best := 1e9
	for _, key := range keys {
		d := avgDistBySortKey(target, targetStations, reference, subStations, key)
		if d < best {
			best = d
		}
	}
	// Lexicographic Pos order (lat, then lng) as its own variant.
	if d := avgDistByPosOrder(target, targetStations, reference, subStations); d < best {
		best = d
	}
	// Group-name order as its own variant.
	if d := avgDistByNameOrder(target, targetStations, reference, subStations); d < best {
		best = d
	}

	if d := nearestDist(target, targetStations, reference, subStations); d < best {
		best = d
	}
	if d := nearestDist(reference, subStations, target, targetStations); d < best {
		best = d
	}
	if d := avgDistByDTW(target, targetStations, reference, subStations); d < best {
		best = d
	}
	return best
}

// avgDistByDTW aligns each roster's stations, in their original (insertion)
// order, as a sequence of distances from the target roster's first station,
// and returns the DTW alignment cost normalized by combined roster length.
// Both sequences share that origin, so rosters far apart score far apart;
// unlike the fixed-order variants above, the two insertion orders need not
// pair up station for station.
func avgDistByDTW(target *Database, ts []StationID, reference *Database, ss []StationID) float64 {
	origin := target.Stations[ts[0]].Pos
	a := sequenceParam(target, ts, origin)
	b := sequenceParam(reference, ss, origin)
	opts := dtw.DefaultOptions()
	dist, _, err := dtw.DTW(a, b, &opts)
	if err != nil {
		return 1e9
	}
	return dist / float64(len(a)+len(b))
}

func sequenceParam(d *Database, ids []StationID, origin geo.Pos) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = origin.DistKM(d.Stations[id].Pos)
	}
	return out
}

func avgDistBySortKey(target *Database, ts []StationID, reference *Database, ss []StationID, key func(*Database, StationID) float64) float64 {
	a := append([]StationID(nil), ts...)
	b := append([]StationID(nil), ss...)
	sort.Slice(a, func(i, j int) bool { return key(target, a[i]) < key(target, a[j]) })
	sort.Slice(b, func(i, j int) bool { return key(reference, b[i]) < key(reference, b[j]) })
	return pairedAvgDist(target, a, reference, b)
}

func avgDistByPosOrder(target *Database, ts []StationID, reference *Database, ss []StationID) float64 {
	a := append([]StationID(nil), ts...)
	b := append([]StationID(nil), ss...)
	sort.Slice(a, func(i, j int) bool { return target.Stations[a[i]].Pos.Less(target.Stations[a[j]].Pos) })
	sort.Slice(b, func(i, j int) bool { return reference.Stations[b[i]].Pos.Less(reference.Stations[b[j]].Pos) })
	return pairedAvgDist(target, a, reference, b)
}

func avgDistByNameOrder(target *Database, ts []StationID, reference *Database, ss []StationID) float64 {
	a := append([]StationID(nil), ts...)
	b := append([]StationID(nil), ss...)
	nameOf := func(d *Database, id StationID) string { return d.Groups[d.Stations[id].Group].Name }
	sort.Slice(a, func(i, j int) bool { return nameOf(target, a[i]) < nameOf(target, a[j]) })
	sort.Slice(b, func(i, j int) bool { return nameOf(reference, b[i]) < nameOf(reference, b[j]) })
	return pairedAvgDist(target, a, reference, b)
}

func pairedAvgDist(target *Database, a []StationID, reference *Database, b []StationID) float64 {
	var total float64
	for i := range a {
		ta := target.Stations[a[i]]
		tb := reference.Stations[b[i]]
		if almostSame(target.Groups[ta.Group].Name, reference.Groups[tb.Group].Name) {
			continue
		}
		total += ta.Pos.DistKM(tb.Pos)
	}
	return total / float64(len(a))
}

// nearestDist greedily matches each station in from to its nearest
// not-yet-used station in to, accumulating distance for non-name-matching
// pairs.
func nearestDist(from *Database, fromStations []StationID, to *Database, toStations []StationID) float64 {
	used := make(map[int]bool)
	var total float64
	for _, fID := range fromStations {
		f := from.Stations[fID]
		var best StationID
		bestSet := false
		for _, tID := range toStations {
			t := to.Stations[tID]
			if used[t.Code] {
				continue
			}
			if !bestSet {
				best = tID
				bestSet = true
				continue
			}
			bestStation := to.Stations[best]
			if f.Pos.DistKM(bestStation.Pos) > f.Pos.DistKM(t.Pos) ||
				almostSame(from.Groups[f.Group].Name, to.Groups[t.Group].Name) {
				best = tID
			}
		}
		if !bestSet {
			continue
		}
		bestStation := to.Stations[best]
		if !almostSame(from.Groups[f.Group].Name, to.Groups[bestStation.Group].Name) {
			total += f.Pos.DistKM(bestStation.Pos)
		}
		used[bestStation.Code] = true
	}
	return total / float64(len(fromStations))
}

func resolveFromStationPairs(target, reference *Database, stationPairs []StationPair, pairs *[]RailwayPair, unknown *[]RailwayID) {
	sameStation := make(map[int]int, len(stationPairs))
	for _, p := range stationPairs {
		sameStation[p.TargetCode] = p.ReferenceCode
	}

	remaining := (*unknown)[:0]
	for _, railwayID := range *unknown {
		railway := target.Railways[railwayID]
		seen := map[RailwayID]bool{}
		for _, st := range target.Stations {
			if st.Railway != railwayID {
				continue
			}
			subCode, ok := sameStation[st.Code]
			if !ok {
				continue
			}
			subID, ok := reference.StationByCode(subCode)
			if !ok {
				continue
			}
			seen[reference.Stations[subID].Railway] = true
		}
		if len(seen) != 1 {
			remaining = append(remaining, railwayID)
			continue
		}
		var only RailwayID
		for id := range seen {
			only = id
		}
		*pairs = append(*pairs, RailwayPair{TargetCode: railway.Code, ReferenceCode: reference.Railways[only].Code})
	}
	*unknown = remaining
}

func dedupeRailwayIDs(ids []RailwayID) []RailwayID {
	if len(ids) == 0 {
		return nil
	}
	sorted := append([]RailwayID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:1]
	for _, id := range sorted[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
