package orient

import "github.com/kaede-rail/railtopo/component"

// WithLoop orients a lollipop-shaped component: a trunk from the single
// degree-1 vertex to the single degree-3 junction, then a cycle attached at
// the junction.
//
// The trunk is oriented exactly like Linear. At the junction, the two
// candidate loop neighbors are tie-broken by tieBreak (first platform
// polyline's first Pos, lexicographically): the smaller goes first in
// right, so right={a, b} preserves that order. The loop is then walked
// once from a back around to b, closing at the junction.
//
// The result is not symmetric at the junction: its right lists both a and
// b and its left only the trunk predecessor, while b's left is b's loop
// predecessor and b's right is the junction.
func WithLoop(c component.Component, tieBreak TieBreak) (Orientation, error) {
	start, ok := findDegreeOne(c)
	if !ok {
		return Orientation{}, ErrNoDegreeOneVertex
	}

	o := newOrientation(c.Size())
	prev := -1
	cur := start

	// Walk the trunk until the degree-3 junction is reached.
	for len(neighbors(c, cur)) != 3 {
		if prev != -1 {
			o.Left[cur] = []int{prev}
		}
		next := otherNeighbor(c, cur, prev)
		o.Right[cur] = []int{next}
		prev, cur = cur, next
	}

	junction := cur
	if prev != -1 {
		o.Left[junction] = []int{prev}
	}

	var candidates []int
	for _, n := range neighbors(c, junction) {
		if n != prev {
			candidates = append(candidates, n)
		}
	}
	a, b := candidates[0], candidates[1]
	if !tieBreak(a, b) {
		a, b = b, a
	}
	o.Right[junction] = []int{a, b}

	// Walk the loop from a back to the junction via b, closing it.
	loopPrev := junction
	loopCur := a
	for {
		o.Left[loopCur] = []int{loopPrev}
		next := otherNeighbor(c, loopCur, loopPrev)
		if next == junction {
			o.Right[loopCur] = []int{junction}
			break
		}
		o.Right[loopCur] = []int{next}
		loopPrev, loopCur = loopCur, next
	}

	return o, nil
}
