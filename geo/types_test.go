package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaede-rail/railtopo/geo"
)

func TestPosEqualIsExact(t *testing.T) {
	a := geo.New(1.00001, 2.00002)
	b := geo.New(1.00001, 2.00002)
	c := geo.New(1.00001, 2.000021)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPosLessLexicographic(t *testing.T) {
	assert.True(t, geo.New(1, 5).Less(geo.New(2, 0)))
	assert.True(t, geo.New(1, 0).Less(geo.New(1, 1)))
	assert.False(t, geo.New(1, 1).Less(geo.New(1, 1)))
}

func TestDistPlanar(t *testing.T) {
	a := geo.New(0, 0)
	b := geo.New(3, 4)
	assert.InDelta(t, 5.0, a.Dist(b), 1e-12)
}

func TestDistKMZeroForSamePoint(t *testing.T) {
	a := geo.New(35.0, 139.0)
	assert.InDelta(t, 0.0, a.DistKM(a), 1e-9)
}

func TestArgCosOrthogonal(t *testing.T) {
	a := geo.New(1, 0)
	b := geo.New(0, 1)
	assert.InDelta(t, 0.0, a.ArgCos(b), 1e-12)
}

func TestArgCosOpposite(t *testing.T) {
	a := geo.New(1, 0)
	b := geo.New(-1, 0)
	assert.InDelta(t, -1.0, a.ArgCos(b), 1e-12)
}

func TestArg(t *testing.T) {
	p := geo.New(0, 1)
	assert.InDelta(t, math.Pi/2, p.Arg(), 1e-12)
}

func TestSegmentContainsMidpoint(t *testing.T) {
	a, b := geo.New(0, 0), geo.New(2, 0)
	mid := geo.New(1, 0)
	require.True(t, geo.SegmentContains(a, b, mid))
}

func TestSegmentContainsRejectsOffLine(t *testing.T) {
	a, b := geo.New(0, 0), geo.New(2, 0)
	off := geo.New(1, 0.01)
	assert.False(t, geo.SegmentContains(a, b, off))
}

func TestSegmentContainsRejectsBeyondEndpoints(t *testing.T) {
	a, b := geo.New(0, 0), geo.New(2, 0)
	beyond := geo.New(3, 0)
	assert.False(t, geo.SegmentContains(a, b, beyond))
}

func TestPolylineMidpointAndEndpoints(t *testing.T) {
	pl := geo.Polyline{geo.New(0, 0), geo.New(1, 0), geo.New(2, 0)}
	assert.Equal(t, geo.New(1, 0), pl.Midpoint())
	assert.Equal(t, geo.New(0, 0), pl.First())
	assert.Equal(t, geo.New(2, 0), pl.Last())
}
