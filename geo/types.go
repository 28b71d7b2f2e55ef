package geo

import "math"

// earthRadiusKM is the mean Earth radius used for great-circle distance.
const earthRadiusKM = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Pos is a 2D coordinate stored as (lat, lng), treated as a value type.
type Pos struct {
	Lat float64
	Lng float64
}

// New builds a Pos from a (lat, lng) pair.
func New(lat, lng float64) Pos { return Pos{Lat: lat, Lng: lng} }

// Equal reports bit-exact coordinate equality.
func (p Pos) Equal(o Pos) bool { return p.Lat == o.Lat && p.Lng == o.Lng }

// Less gives the lexicographic order: lat first, then lng.
func (p Pos) Less(o Pos) bool {
	if p.Lat != o.Lat {
		return p.Lat < o.Lat
	}
	return p.Lng < o.Lng
}

// Sub returns p - o as a free vector.
func (p Pos) Sub(o Pos) Pos { return Pos{Lat: p.Lat - o.Lat, Lng: p.Lng - o.Lng} }

// Dot returns the dot product of p and o treated as vectors.
func (p Pos) Dot(o Pos) float64 { return p.Lat*o.Lat + p.Lng*o.Lng }

// Cross returns the 2D scalar cross product of p and o treated as vectors.
func (p Pos) Cross(o Pos) float64 { return p.Lat*o.Lng - p.Lng*o.Lat }

// Abs returns the Euclidean norm of p treated as a vector.
func (p Pos) Abs() float64 { return math.Sqrt(p.Lat*p.Lat + p.Lng*p.Lng) }

// Dist returns the planar (Euclidean) distance between p and o.
func (p Pos) Dist(o Pos) float64 {
	dLat := p.Lat - o.Lat
	dLng := p.Lng - o.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// DistKM returns the great-circle distance between p and o in kilometers,
// treating Lat/Lng as degrees.
func (p Pos) DistKM(o Pos) float64 {
	if p.Equal(o) {
		// cos²+sin² can round to just under 1, which acos turns into a
		// small nonzero distance for a point and itself.
		return 0
	}
	lat1, lat2 := p.Lat*degToRad, o.Lat*degToRad
	dLng := (o.Lng - p.Lng) * degToRad
	cosC := math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLng) + math.Sin(lat1)*math.Sin(lat2)
	// Guard against acos domain errors from floating-point overshoot at ~0/180 degrees.
	if cosC > 1 {
		cosC = 1
	} else if cosC < -1 {
		cosC = -1
	}
	return math.Acos(cosC) * earthRadiusKM
}

// ArgCos returns the cosine of the angle between p and o treated as vectors
// anchored at the origin, i.e. Dot(o) / (Abs() * o.Abs()).
func (p Pos) ArgCos(o Pos) float64 {
	return p.Dot(o) / (p.Abs() * o.Abs())
}

// Arg returns atan2(Lng, Lat), the polar angle of p treated as a vector.
func (p Pos) Arg() float64 {
	return math.Atan2(p.Lng, p.Lat)
}

// Polyline is an ordered sequence of positions. Endpoint order only matters
// for junction injection; elsewhere a Polyline is an unordered set of
// adjacent segments.
type Polyline []Pos

// Midpoint returns the element at index floor(len/2), the representative
// position used to bind a platform polyline to a graph vertex. Panics if the
// polyline is empty, matching the invariant that platform polylines have at
// least one point.
func (pl Polyline) Midpoint() Pos {
	return pl[len(pl)/2]
}

// First returns the first position of the polyline.
func (pl Polyline) First() Pos { return pl[0] }

// Last returns the last position of the polyline.
func (pl Polyline) Last() Pos { return pl[len(pl)-1] }

// SegmentContains reports whether point p lies on the closed segment [a, b],
// using the same projection + perpendicular-distance test as junction
// injection: p must project within [a, b] and lie within 1e-6 of the line
// through a and b.
func SegmentContains(a, b, p Pos) bool {
	ab := b.Sub(a)
	ba := a.Sub(b)
	if ab.Dot(p.Sub(a)) < 0 {
		return false
	}
	if ba.Dot(p.Sub(b)) < 0 {
		return false
	}
	abLen := ab.Abs()
	if abLen == 0 {
		return a.Equal(p)
	}
	perp := math.Abs(ab.Cross(p.Sub(a))) / abLen
	return perp < 1e-6
}
