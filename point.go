package shapes

import (
	"fmt"
	"math"
)

// Point is a 2D point. It doubles as the vector type of this package, so it
// carries the usual vector algebra.
type Point struct {
	X, Y float64
}

// Pt builds a Point from its coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

func (p Point) Mul(scalar float64) Point {
	p.X *= scalar
	p.Y *= scalar
	return p
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the 2D cross product, the z component of the 3D one.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) LengthSqr() float64 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return p.Sub(other).Length()
}

func (p Point) Normalized() Point {
	length := p.Length()
	p.X /= length
	p.Y /= length
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%v, y=%v)", p.X, p.Y)
}

// Points returns the point itself.
func (p Point) Points() []Point {
	return []Point{p}
}

func (p Point) moved(m motion) Shape {
	return m.apply(p)
}
