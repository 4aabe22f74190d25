package shapes

// Simplest returns whichever of the two shapes is the cheaper representative
// to keep working with. This is a complexity order, not a geometric
// predicate. From simplest to most complex: Point, chains with fewer than
// two edges, Line, Polygon/Polyline ranked by edge count, Circle, Composite.
// Ties return the first argument, so the result is deterministic for every
// ordered pair of kinds.
func Simplest(a, b Shape) Shape {
	ra, rb := simplicity(a), simplicity(b)

	if rb < ra {
		return b
	}
	if ra == rb {
		ca, aok := a.(Chain)
		cb, bok := b.(Chain)
		if aok && bok && len(cb.Edges()) < len(ca.Edges()) {
			return b
		}
	}
	return a
}

func simplicity(s Shape) int {
	switch s := s.(type) {
	case Point:
		return 0
	case Line:
		return 2
	case Polygon:
		return chainSimplicity(s)
	case Polyline:
		return chainSimplicity(s)
	case Circle:
		return 4
	}
	return 5
}

func chainSimplicity(c Chain) int {
	// a degenerate chain ranks below Line
	if len(c.Edges()) < 2 {
		return 1
	}
	return 3
}
