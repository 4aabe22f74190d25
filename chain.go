package shapes

import (
	"errors"
	"fmt"
	"slices"
)

// Chain is the capability shared by the vertex-chain shapes: an ordered list
// of vertices connected by edges. Polygon closes the loop, Polyline does
// not. Predicate and containment logic is written once against this
// interface.
type Chain interface {
	Shape

	// Vertices returns the ordered vertex list.
	Vertices() []Point
	// Edges returns the edges connecting consecutive vertices.
	Edges() []Line
}

// Polygon is a closed boundary: edge i connects vertex i to vertex
// (i+1) mod n. Fewer than three vertices yield a degenerate polygon, which
// is constructible because Simplest ranks it, but the predicates treat it
// as the caller's responsibility.
type Polygon struct {
	vertices []Point
	edges    []Line
}

// PolygonOf builds a polygon from an ordered vertex list, closing the loop
// from the last vertex back to the first.
func PolygonOf(vertices ...Point) (Polygon, error) {
	if len(vertices) == 0 {
		return Polygon{}, errors.New("shapes: a polygon needs at least one vertex")
	}

	vs := slices.Clone(vertices)
	edges := make([]Line, len(vs))
	for i := range vs {
		edges[i] = LineBetween(vs[i], vs[(i+1)%len(vs)])
	}

	return Polygon{vertices: vs, edges: edges}, nil
}

func (p Polygon) Vertices() []Point {
	return p.vertices
}

func (p Polygon) Edges() []Line {
	return p.edges
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon(%v)", p.vertices)
}

// Points returns the stored vertex list.
func (p Polygon) Points() []Point {
	return p.vertices
}

func (p Polygon) moved(m motion) Shape {
	moved, _ := PolygonOf(applyAll(m, p.vertices)...)
	return moved
}

// Polyline is an open chain: edge i connects vertex i to vertex i+1, and the
// chain never closes.
type Polyline struct {
	vertices []Point
	edges    []Line
}

// PolylineOf builds an open chain from an ordered vertex list. It fails if
// fewer than two vertices are given.
func PolylineOf(vertices ...Point) (Polyline, error) {
	if len(vertices) < 2 {
		return Polyline{}, fmt.Errorf("shapes: a polyline needs at least two vertices, got %d", len(vertices))
	}

	vs := slices.Clone(vertices)
	edges := make([]Line, len(vs)-1)
	for i := range edges {
		edges[i] = LineBetween(vs[i], vs[i+1])
	}

	return Polyline{vertices: vs, edges: edges}, nil
}

func (p Polyline) Vertices() []Point {
	return p.vertices
}

func (p Polyline) Edges() []Line {
	return p.edges
}

func (p Polyline) String() string {
	return fmt.Sprintf("Polyline(%v)", p.vertices)
}

// Points returns the stored vertex list.
func (p Polyline) Points() []Point {
	return p.vertices
}

func (p Polyline) moved(m motion) Shape {
	moved, _ := PolylineOf(applyAll(m, p.vertices)...)
	return moved
}

func applyAll(m motion, points []Point) []Point {
	moved := make([]Point, len(points))
	for i, p := range points {
		moved[i] = m.apply(p)
	}
	return moved
}
