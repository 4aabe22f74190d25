package shapes

import (
	"fmt"
	"math"
)

// Line is the parametric family P(t) = P1 + t·(P2 − P1) restricted to
// t in [TMin, TMax]. TMin=0, TMax=1 makes it the segment between P1 and P2,
// one infinite bound makes it a ray, two make it a full line.
type Line struct {
	P1, P2     Point
	TMin, TMax float64
}

// LineBetween returns the segment connecting a and b.
func LineBetween(a, b Point) Line {
	return Line{P1: a, P2: b, TMin: 0, TMax: 1}
}

// LineOf returns the segment from (x1, y1) to (x2, y2).
func LineOf(x1, y1, x2, y2 float64) Line {
	return LineBetween(Pt(x1, y1), Pt(x2, y2))
}

// LineWithRange returns the line through (x1, y1) and (x2, y2) restricted
// to the parameter range [tmin, tmax].
func LineWithRange(x1, y1, x2, y2, tmin, tmax float64) Line {
	return Line{P1: Pt(x1, y1), P2: Pt(x2, y2), TMin: tmin, TMax: tmax}
}

// LineAtAngle returns the full infinite line through origin in direction
// angle (degrees). Restrict it with WithRange to get a ray or segment.
func LineAtAngle(origin Point, angle Deg) Line {
	return Line{
		P1:   origin,
		P2:   origin.Add(unitAt(angle)),
		TMin: math.Inf(-1),
		TMax: math.Inf(1),
	}
}

// WithRange returns a copy of the line restricted to [tmin, tmax].
func (l Line) WithRange(tmin, tmax float64) Line {
	l.TMin = tmin
	l.TMax = tmax
	return l
}

// Delta returns the direction vector P2 − P1.
func (l Line) Delta() Point {
	return l.P2.Sub(l.P1)
}

// At returns the point at parameter t.
func (l Line) At(t float64) Point {
	return l.P1.Add(l.Delta().Mul(t))
}

// Length returns the distance between the two defining points. For rays and
// full lines this is the length of the parameter unit, not of the shape.
func (l Line) Length() float64 {
	return l.Delta().Length()
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s, t=[%v, %v])", l.P1, l.P2, l.TMin, l.TMax)
}

// Points returns the two defining points.
func (l Line) Points() []Point {
	return []Point{l.P1, l.P2}
}

func (l Line) moved(m motion) Shape {
	return Line{
		P1:   m.apply(l.P1),
		P2:   m.apply(l.P2),
		TMin: l.TMin,
		TMax: l.TMax,
	}
}
