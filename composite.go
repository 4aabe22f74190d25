package shapes

import (
	"fmt"
	"slices"
)

// Composite is an ordered union of shapes of any kind. It carries no
// geometric invariants beyond the well-formedness of its members.
type Composite struct {
	Members []Shape
}

// CompositeOf builds a composite from its members, in order.
func CompositeOf(members ...Shape) Composite {
	return Composite{Members: slices.Clone(members)}
}

func (c Composite) String() string {
	return fmt.Sprintf("Composite(%v)", c.Members)
}

// Points returns the concatenation of each member's points, in member order.
func (c Composite) Points() []Point {
	var points []Point
	for _, m := range c.Members {
		points = append(points, m.Points()...)
	}
	return points
}

func (c Composite) moved(m motion) Shape {
	members := make([]Shape, len(c.Members))
	for i, member := range c.Members {
		members[i] = member.moved(m)
	}
	return Composite{Members: members}
}
