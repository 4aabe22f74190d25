package shapes

import "math"

// motion is a rigid motion: a rotation about the origin followed by a
// translation. It preserves distances and angles.
type motion struct {
	sin, cos float64
	dx, dy   float64
}

func motionOf(x, y float64, angle Deg) motion {
	sin, cos := math.Sincos(angle.Rad().Radians())
	return motion{sin: sin, cos: cos, dx: x, dy: y}
}

func (m motion) apply(p Point) Point {
	return Point{
		X: p.X*m.cos - p.Y*m.sin + m.dx,
		Y: p.X*m.sin + p.Y*m.cos + m.dy,
	}
}

// Transform returns the shape moved by the rigid motion that rotates about
// the origin by angle degrees and then translates by (x, y). The result is
// of the same kind as s; a circle keeps its radius, chains keep their
// connectivity.
func Transform(s Shape, x, y float64, angle Deg) Shape {
	return s.moved(motionOf(x, y, angle))
}
