package geo_test

import (
	"fmt"

	"github.com/kaede-rail/railtopo/geo"
)

// ExamplePos_Dist shows planar distance between two positions treated as
// plain 2D points.
func ExamplePos_Dist() {
	a := geo.New(0, 0)
	b := geo.New(3, 4)
	fmt.Println(a.Dist(b))
	// Output:
	// 5
}

// ExamplePos_Less demonstrates the lexicographic order: lat first, then lng.
func ExamplePos_Less() {
	fmt.Println(geo.New(1, 9).Less(geo.New(2, 0)))
	fmt.Println(geo.New(1, 9).Less(geo.New(1, 9)))
	// Output:
	// true
	// false
}

// ExampleSegmentContains tests a point against the closed segment it lies on.
func ExampleSegmentContains() {
	a, b := geo.New(0, 0), geo.New(2, 0)
	fmt.Println(geo.SegmentContains(a, b, geo.New(1, 0)))
	fmt.Println(geo.SegmentContains(a, b, geo.New(3, 0)))
	// Output:
	// true
	// false
}
