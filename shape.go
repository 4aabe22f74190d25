package shapes

// Shape is the closed union of the kernel's shape kinds: Point, Line,
// Circle, Polygon, Polyline and Composite. The operations of this package
// dispatch over every pair of kinds, so the union cannot be extended from
// outside.
type Shape interface {
	// Points returns a finite, representative vertex set for the shape.
	// It is exact for polygonal shapes and a sampled approximation for
	// circles.
	Points() []Point

	moved(m motion) Shape
}
