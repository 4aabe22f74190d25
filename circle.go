package shapes

import (
	"fmt"
	"math"
)

// Circle is the closed disk around Center. A negative radius is not
// validated; the behavior of the predicates on such a circle is undefined
// and the caller's responsibility.
type Circle struct {
	Center Point
	Radius float64
}

// CircleOf returns the circle of radius r centered at (x, y).
func CircleOf(x, y, r float64) Circle {
	return Circle{Center: Pt(x, y), Radius: r}
}

// CircleAround returns the circle of radius r centered at center.
func CircleAround(center Point, r float64) Circle {
	return Circle{Center: center, Radius: r}
}

const defaultCircleSamples = 20

// Sample returns n evenly angularly spaced points on the circle boundary,
// starting at angle zero.
func (c Circle) Sample(n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		a := Rad(float64(i) * 2 * math.Pi / float64(n))
		points = append(points, c.Center.Add(Pt(a.Cos(), a.Sin()).Mul(c.Radius)))
	}
	return points
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(center=%s, r=%v)", c.Center, c.Radius)
}

// Points returns a 20 point approximation of the circle boundary.
func (c Circle) Points() []Point {
	return c.Sample(defaultCircleSamples)
}

func (c Circle) moved(m motion) Shape {
	return Circle{Center: m.apply(c.Center), Radius: c.Radius}
}
