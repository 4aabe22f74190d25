package shapes

const circleSweepSteps = 4

// Extrude returns the region swept by s while it moves from identity to the
// rigid motion (x, y, angle). The result kind depends on the input:
//
//   - Point: the Line from the point to its transformed position.
//   - Line: the four vertex Polygon bounded by the segment, its transformed
//     copy and the two connecting sides.
//   - Polygon, Polyline: a Composite of the per edge extrusions.
//   - Composite: a Composite of the per member extrusions.
//   - Circle: a Composite of five circle copies at evenly spaced fractions
//     of the motion. A continuously rotating disk has no exact polygonal
//     sweep, so this is a discretized approximation, not an exact volume.
func Extrude(s Shape, x, y float64, angle Deg) Shape {
	switch s := s.(type) {
	case Point:
		return LineBetween(s, motionOf(x, y, angle).apply(s))

	case Line:
		m := motionOf(x, y, angle)
		quad, _ := PolygonOf(s.P1, s.P2, m.apply(s.P2), m.apply(s.P1))
		return quad

	case Circle:
		members := make([]Shape, 0, circleSweepSteps+1)
		for i := 0; i <= circleSweepSteps; i++ {
			f := float64(i) / circleSweepSteps
			members = append(members, Transform(s, x*f, y*f, angle*Deg(f)))
		}
		return CompositeOf(members...)

	case Polygon:
		return extrudeEdges(s, x, y, angle)

	case Polyline:
		return extrudeEdges(s, x, y, angle)

	case Composite:
		members := make([]Shape, len(s.Members))
		for i, m := range s.Members {
			members[i] = Extrude(m, x, y, angle)
		}
		return Composite{Members: members}
	}

	return s
}

func extrudeEdges(c Chain, x, y float64, angle Deg) Composite {
	members := make([]Shape, len(c.Edges()))
	for i, e := range c.Edges() {
		members[i] = Extrude(e, x, y, angle)
	}
	return Composite{Members: members}
}
