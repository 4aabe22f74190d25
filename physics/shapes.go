// Package physics attaches kernel shapes to chipmunk bodies so that a
// physics layer can reuse the same geometry it queries through the kernel.
// It only converts shapes; collision response stays with chipmunk.
package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapes"
)

// Attach creates the chipmunk collision shapes for the given kernel shape
// and binds them to body. Chains become one segment per edge, so concave
// polygons work without a hull. Composites attach every member.
//
// Attach panics on a Line whose parameter range is not finite: an infinite
// ray has no chipmunk representation.
func Attach(body *cp.Body, s shapes.Shape) []*cp.Shape {
	switch s := s.(type) {
	case shapes.Point:
		return []*cp.Shape{cp.NewCircle(body, 0, cpVecOf(s))}

	case shapes.Line:
		return []*cp.Shape{segmentOf(body, s)}

	case shapes.Circle:
		return []*cp.Shape{cp.NewCircle(body, s.Radius, cpVecOf(s.Center))}

	case shapes.Polygon:
		return segmentsOf(body, s)

	case shapes.Polyline:
		return segmentsOf(body, s)

	case shapes.Composite:
		var attached []*cp.Shape
		for _, m := range s.Members {
			attached = append(attached, Attach(body, m)...)
		}
		return attached
	}

	return nil
}

func segmentOf(body *cp.Body, l shapes.Line) *cp.Shape {
	if math.IsInf(l.TMin, 0) || math.IsInf(l.TMax, 0) {
		panic("physics: cannot attach a line with an infinite parameter range")
	}

	return cp.NewSegment(body, cpVecOf(l.At(l.TMin)), cpVecOf(l.At(l.TMax)), 0)
}

func segmentsOf(body *cp.Body, c shapes.Chain) []*cp.Shape {
	segments := make([]*cp.Shape, len(c.Edges()))
	for i, e := range c.Edges() {
		segments[i] = segmentOf(body, e)
	}
	return segments
}

func cpVecOf(p shapes.Point) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}
