package orient

import "github.com/kaede-rail/railtopo/component"

// Linear orients a LinearList component: starting from a degree-1
// endpoint, it walks the chain assigning left={predecessor},
// right={successor} at every internal vertex, leaving the starting
// endpoint's left empty and the terminal endpoint's right empty.
func Linear(c component.Component) (Orientation, error) {
	start, ok := findDegreeOne(c)
	if !ok {
		return Orientation{}, ErrNoDegreeOneVertex
	}

	o := newOrientation(c.Size())
	prev := -1
	cur := start

	for {
		if prev != -1 {
			o.Left[cur] = []int{prev}
		}
		nbrs := neighbors(c, cur)
		var next int = -1
		for _, n := range nbrs {
			if n != prev {
				next = n
				break
			}
		}
		if next == -1 {
			break
		}
		o.Right[cur] = []int{next}
		prev = cur
		cur = next
	}

	return o, nil
}
