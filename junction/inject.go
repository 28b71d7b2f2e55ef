package junction

import "github.com/kaede-rail/railtopo/geo"

// Inject returns paths with an implicit vertex inserted (and the host
// polyline split) at every T-intersection between a polyline endpoint and
// another polyline's interior. It does not mutate paths.
//
// The search restarts from scratch after every split, since splitting
// changes indices and introduces a new polyline endpoint that itself may
// need to participate in further injections. One split at a time keeps
// the scan simple and the result stable.
func Inject(paths []geo.Polyline) []geo.Polyline {
	result := make([]geo.Polyline, len(paths))
	copy(result, paths)

	for {
		p, j, k, found := findInjection(result)
		if !found {
			break
		}
		result = splitAt(result, j, k, p)
	}
	return result
}

// findInjection scans every ordered pair (i, j), i != j, and each endpoint of
// paths[i] for the first interior-segment match on paths[j].
func findInjection(paths []geo.Polyline) (p geo.Pos, j, k int, found bool) {
	for i := range paths {
		for _, endpoint := range [2]geo.Pos{paths[i].First(), paths[i].Last()} {
			for j = range paths {
				if i == j {
					continue
				}
				if hasVertex(paths[j], endpoint) {
					continue
				}
				if seg, ok := findSegment(paths[j], endpoint); ok {
					return endpoint, j, seg, true
				}
			}
		}
	}
	return geo.Pos{}, 0, 0, false
}

// hasVertex reports whether p exactly equals any vertex of path.
func hasVertex(path geo.Polyline, p geo.Pos) bool {
	for _, v := range path {
		if v.Equal(p) {
			return true
		}
	}
	return false
}

// findSegment returns the index k of the first consecutive segment
// (path[k], path[k+1]) whose closed span contains p.
func findSegment(path geo.Polyline, p geo.Pos) (int, bool) {
	for k := 0; k+1 < len(path); k++ {
		if geo.SegmentContains(path[k], path[k+1], p) {
			return k, true
		}
	}
	return 0, false
}

// splitAt splits paths[j] at its segment k into a prefix ending in p and a
// suffix starting with p.
func splitAt(paths []geo.Polyline, j, k int, p geo.Pos) []geo.Polyline {
	host := paths[j]

	prefix := make(geo.Polyline, k+1, k+2)
	copy(prefix, host[:k+1])
	prefix = append(prefix, p)

	suffix := make(geo.Polyline, 1, len(host)-k)
	suffix[0] = p
	suffix = append(suffix, host[k+1:]...)

	paths[j] = prefix
	return append(paths, suffix)
}
