package identity

import "strings"

// StationPair links a target-dataset station code to the reference-dataset
// station code it was resolved to.
type StationPair struct {
	TargetCode    int
	ReferenceCode int
}

// almostSame reports whether two station/railway names match once either
// one's parenthesized suffix (e.g. a disambiguating branch note) is
// stripped.
func almostSame(s, t string) bool {
	if s == t {
		return true
	}
	if i := strings.IndexByte(s, '('); i >= 0 && s[:i] == t {
		return true
	}
	if i := strings.IndexByte(t, '('); i >= 0 && t[:i] == s {
		return true
	}
	return false
}

const shinkansenMarker = "新幹線"

// LinkStationsName resolves every station in target to the nearest
// plausible station of the same station-group name in reference: an exact
// group-name match picks the candidate minimizing great-circle distance
// plus 0.1 * edit distance between railway names; otherwise the closest
// reference station is accepted only if its adjusted distance is under
// 0.03 or its group name matches exactly.
func LinkStationsName(target, reference *Database) (pairs []StationPair, unknown []StationID) {
	nameIndex := make(map[string][]StationID, len(reference.Stations))
	for i, st := range reference.Stations {
		name := reference.Groups[st.Group].Name
		nameIndex[name] = append(nameIndex[name], StationID(i))
	}

	for i, station := range target.Stations {
		targetName := target.Groups[station.Group].Name
		targetRailName := target.Railways[station.Railway].Name

		if candidates, ok := nameIndex[targetName]; ok {
			minDist := 1e9
			minID := candidates[0]
			for _, candID := range candidates {
				cand := reference.Stations[candID]
				refRailName := reference.Railways[cand.Railway].Name
				if strings.Contains(refRailName, shinkansenMarker) {
					continue
				}
				d := station.Pos.DistKM(cand.Pos) + float64(StrDist(targetRailName, refRailName))*0.1
				if d < minDist {
					minDist = d
					minID = candID
				}
			}
			pairs = append(pairs, StationPair{TargetCode: station.Code, ReferenceCode: reference.Stations[minID].Code})
			continue
		}

		minDist := 1e9
		minID := StationID(0)
		for candID := range reference.Stations {
			cand := reference.Stations[candID]
			refRailName := reference.Railways[cand.Railway].Name
			if strings.Contains(refRailName, shinkansenMarker) {
				continue
			}
			d := station.Pos.DistKM(cand.Pos)
			if almostSame(targetName, reference.Groups[cand.Group].Name) {
				d -= 1
			}
			if almostSame(targetRailName, refRailName) {
				d -= 1
			}
			if d < minDist {
				minDist = d
				minID = StationID(candID)
			}
		}

		nearest := reference.Stations[minID]
		if minDist >= 0.03 && targetName != reference.Groups[nearest.Group].Name {
			unknown = append(unknown, StationID(i))
		} else {
			pairs = append(pairs, StationPair{TargetCode: station.Code, ReferenceCode: nearest.Code})
		}
	}

	return pairs, unknown
}
