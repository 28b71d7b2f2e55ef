package orient

import "github.com/kaede-rail/railtopo/component"

// Circle orients a Circle component: starting at vertex 0, either
// neighbor is chosen as its right; walking the cycle then assigns
// left={predecessor}, right={successor} at every vertex, closing back at
// vertex 0.
func Circle(c component.Component) Orientation {
	o := newOrientation(c.Size())
	if c.Size() == 0 {
		return o
	}

	nbrs := neighbors(c, 0)
	right0 := nbrs[0]

	order := []int{0}
	prev, cur, next := -1, 0, right0
	for next != 0 {
		order = append(order, next)
		prev, cur = cur, next
		next = otherNeighbor(c, cur, prev)
	}

	n := len(order)
	for i, v := range order {
		o.Left[v] = []int{order[(i-1+n)%n]}
		o.Right[v] = []int{order[(i+1)%n]}
	}
	return o
}
