package orient

import (
	"github.com/kaede-rail/railtopo/component"
	"github.com/kaede-rail/railtopo/topology"
)

// Orient dispatches to the shape-specific orientation strategy for c's
// classified topology type. tieBreak is only consulted for WithLoop.
func Orient(c component.Component, t topology.Type, tieBreak TieBreak) (Orientation, error) {
	switch t {
	case topology.None:
		return newOrientation(c.Size()), nil
	case topology.LinearList:
		return Linear(c)
	case topology.Circle:
		return Circle(c), nil
	case topology.WithLoop:
		return WithLoop(c, tieBreak)
	default:
		return WithBranches(c)
	}
}
