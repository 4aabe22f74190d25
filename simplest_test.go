package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimplest_Order(t *testing.T) {
	point := Pt(0, 0)
	line := LineOf(0, 0, 1, 0)
	tri := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(0, 1))
	quad := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	circle := CircleOf(0, 0, 1)
	comp := CompositeOf(point, circle)

	require.Equal(t, Shape(point), Simplest(point, line))
	require.Equal(t, Shape(point), Simplest(line, point))
	require.Equal(t, Shape(point), Simplest(point, comp))

	require.Equal(t, Shape(line), Simplest(line, tri))
	require.Equal(t, Shape(line), Simplest(tri, line))
	require.Equal(t, Shape(line), Simplest(line, circle))

	require.Equal(t, Shape(tri), Simplest(tri, quad))
	require.Equal(t, Shape(tri), Simplest(quad, tri))
	require.Equal(t, Shape(tri), Simplest(tri, circle))
	require.Equal(t, Shape(quad), Simplest(circle, quad))

	require.Equal(t, Shape(circle), Simplest(circle, comp))
	require.Equal(t, Shape(circle), Simplest(comp, circle))
}

func TestSimplest_DegenerateChains(t *testing.T) {
	line := LineOf(0, 0, 1, 0)
	// a single vertex closes onto itself: one edge
	dot := mustPolygon(t, Pt(3, 3))
	stick := mustPolyline(t, Pt(0, 0), Pt(1, 1))

	// chains with fewer than two edges rank below Line
	require.Equal(t, Shape(dot), Simplest(line, dot))
	require.Equal(t, Shape(stick), Simplest(line, stick))
	require.Equal(t, Shape(stick), Simplest(stick, line))

	// among chains the edge count decides
	tri := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(0, 1))
	require.Equal(t, Shape(stick), Simplest(tri, stick))
}

func TestSimplest_TiesKeepFirstArgument(t *testing.T) {
	a := LineOf(0, 0, 1, 0)
	b := LineOf(5, 5, 6, 6)
	require.Equal(t, Shape(a), Simplest(a, b))
	require.Equal(t, Shape(b), Simplest(b, a))

	ca := CircleOf(0, 0, 1)
	cb := CircleOf(9, 9, 2)
	require.Equal(t, Shape(ca), Simplest(ca, cb))
	require.Equal(t, Shape(cb), Simplest(cb, ca))

	pa := Pt(0, 0)
	pb := Pt(1, 1)
	require.Equal(t, Shape(pa), Simplest(pa, pb))

	ta := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(0, 1))
	tb := mustPolygon(t, Pt(5, 5), Pt(6, 5), Pt(5, 6))
	require.Equal(t, Shape(ta), Simplest(ta, tb))
	require.Equal(t, Shape(tb), Simplest(tb, ta))
}
