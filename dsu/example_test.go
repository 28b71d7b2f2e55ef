package dsu_test

import (
	"fmt"

	"github.com/kaede-rail/railtopo/dsu"
)

// ExampleDSU merges two pairs out of five singletons and inspects the
// resulting connectivity.
func ExampleDSU() {
	d := dsu.New(5)
	d.Union(0, 1)
	d.Union(3, 4)

	fmt.Println(d.Connected(0, 1))
	fmt.Println(d.Connected(1, 3))
	fmt.Println(d.SetCount())
	// Output:
	// true
	// false
	// 3
}
