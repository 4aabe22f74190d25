package shapes

import "math"

// Intersects reports whether the two shapes share at least one point.
// All boundaries are inclusive, so touching shapes intersect. The test is
// symmetric in its arguments.
//
// Chains count as their edges and composites as their members: a polygon
// intersects another shape iff any of its edges does, and a composite iff
// any of its members does. Two chains intersect iff any edge of one
// intersects any edge of the other, so a polygon strictly containing
// another does not intersect it; use Inside for containment.
func Intersects(a, b Shape) bool {
	if c, ok := a.(Composite); ok {
		return anyMemberIntersects(c, b)
	}
	if c, ok := b.(Composite); ok {
		return anyMemberIntersects(c, a)
	}
	if c, ok := a.(Chain); ok {
		return anyEdgeIntersects(c, b)
	}
	if c, ok := b.(Chain); ok {
		return anyEdgeIntersects(c, a)
	}

	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Point:
			return a == b
		case Line:
			return pointOnLine(a, b)
		case Circle:
			return pointMeetsCircle(a, b)
		}

	case Line:
		switch b := b.(type) {
		case Point:
			return pointOnLine(b, a)
		case Line:
			return lineMeetsLine(a, b)
		case Circle:
			return lineMeetsCircle(a, b)
		}

	case Circle:
		switch b := b.(type) {
		case Point:
			return pointMeetsCircle(b, a)
		case Line:
			return lineMeetsCircle(b, a)
		case Circle:
			return a.Center.DistanceTo(b.Center) <= a.Radius+b.Radius
		}
	}

	return false
}

func anyMemberIntersects(c Composite, other Shape) bool {
	for _, m := range c.Members {
		if Intersects(m, other) {
			return true
		}
	}
	return false
}

func anyEdgeIntersects(c Chain, other Shape) bool {
	for _, e := range c.Edges() {
		if Intersects(e, other) {
			return true
		}
	}
	return false
}

// looseLE reports a <= b, except that two equal infinite values compare
// false. The parameter range checks below use it so that a line degenerated
// to TMin == TMax == ±Inf intersects nothing; with a plain <= two such rays
// would report an intersection everywhere. Keep this exact: relaxing it
// changes observable results for infinite-line inputs.
func looseLE(a, b float64) bool {
	if a == b && math.IsInf(a, 0) {
		return false
	}
	return a <= b
}

func withinLoose(l Line, t float64) bool {
	return looseLE(l.TMin, t) && looseLE(t, l.TMax)
}

func within(l Line, t float64) bool {
	return l.TMin <= t && t <= l.TMax
}

// pointOnLine solves for the parameter placing p on the carrier line of l
// and tests it against the parameter range. A zero extent on either axis is
// solved on the other axis alone.
func pointOnLine(p Point, l Line) bool {
	d := l.Delta()

	switch {
	case d.X == 0 && d.Y == 0:
		return p == l.P1
	case d.X == 0:
		return p.X == l.P1.X && withinLoose(l, (p.Y-l.P1.Y)/d.Y)
	case d.Y == 0:
		return p.Y == l.P1.Y && withinLoose(l, (p.X-l.P1.X)/d.X)
	}

	tx := (p.X - l.P1.X) / d.X
	ty := (p.Y - l.P1.Y) / d.Y
	return tx == ty && withinLoose(l, tx)
}

// lineMeetsLine solves the 2x2 system of the two carrier lines. A zero
// determinant means parallel or collinear lines; those intersect iff one
// line's defining point lies on the other.
func lineMeetsLine(a, b Line) bool {
	da, db := a.Delta(), b.Delta()

	det := da.Cross(db)
	if det == 0 {
		return pointOnLine(a.P1, b) || pointOnLine(a.P2, b) ||
			pointOnLine(b.P1, a) || pointOnLine(b.P2, a)
	}

	diff := b.P1.Sub(a.P1)
	ta := diff.Cross(db) / det
	tb := diff.Cross(da) / det
	return withinLoose(a, ta) && withinLoose(b, tb)
}

func pointMeetsCircle(p Point, c Circle) bool {
	return p.DistanceTo(c.Center) <= c.Radius
}

func lineMeetsCircle(l Line, c Circle) bool {
	if l.Delta() == (Point{}) {
		return pointMeetsCircle(l.P1, c)
	}

	t1, t2, ok := lineCircleRoots(l, c)
	if !ok {
		return false
	}
	return within(l, t1) || within(l, t2)
}

// lineCircleRoots solves |l.At(t) − c.Center|² = c.Radius² for t. ok is
// false when the carrier line misses the circle.
func lineCircleRoots(l Line, c Circle) (t1, t2 float64, ok bool) {
	d := l.Delta()
	f := l.P1.Sub(c.Center)

	qa := d.Dot(d)
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - c.Radius*c.Radius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, 0, false
	}

	sq := math.Sqrt(disc)
	return (-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa), true
}
