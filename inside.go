package shapes

import "math"

// Inside reports whether probe lies inside container, boundary inclusive:
// touching counts as inside.
//
// The test casts a half-infinite ray from the probe in direction angle
// (degrees) and counts boundary crossings. The result does not depend on
// the angle unless the ray is exactly collinear with a container edge, so
// any angle that avoids the container's edge directions works.
//
// A compound probe is inside iff it intersects the container or any of its
// representative points does. A composite container holds the probe iff any
// member does.
func Inside(container, probe Shape, angle Deg) bool {
	p, ok := probe.(Point)
	if !ok {
		if Intersects(container, probe) {
			return true
		}
		for _, q := range probe.Points() {
			if Inside(container, q, angle) {
				return true
			}
		}
		return false
	}

	switch c := container.(type) {
	case Point:
		return c == p
	case Line:
		return pointOnLine(p, c)
	case Circle:
		return pointInCircle(p, c, angle)
	case Polygon:
		return pointInChain(p, c, angle)
	case Polyline:
		return pointInChain(p, c, angle)
	case Composite:
		for _, m := range c.Members {
			if Inside(m, p, angle) {
				return true
			}
		}
	}

	return false
}

// castRay returns the ray used by the containment tests. It starts at p and
// extends backward along direction angle: parameter range (-Inf, 0].
func castRay(p Point, angle Deg) Line {
	return Line{
		P1:   p,
		P2:   p.Add(unitAt(angle)),
		TMin: math.Inf(-1),
		TMax: 0,
	}
}

// pointInChain is the parity rule: p is inside iff the cast ray crosses an
// odd number of edges.
func pointInChain(p Point, c Chain, angle Deg) bool {
	ray := castRay(p, angle)

	crossings := 0
	for _, e := range c.Edges() {
		if lineMeetsLine(ray, e) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// pointInCircle casts the same ray through the circle. The point is inside
// iff the two quadratic roots disagree about lying in the ray's range: the
// ray then leaves the disk exactly once, while a pass-through from outside
// enters and leaves.
func pointInCircle(p Point, c Circle, angle Deg) bool {
	ray := castRay(p, angle)

	t1, t2, ok := lineCircleRoots(ray, c)
	if !ok {
		return false
	}
	return within(ray, t1) != within(ray, t2)
}
