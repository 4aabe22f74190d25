// Package shapes is a 2D computational-geometry kernel: immutable shape
// values plus the predicates, transforms and sweeps needed to reason about
// their spatial relationships.
//
// The shape kinds are Point, Line (a parametric segment, ray or infinite
// line), Circle, Polygon, Polyline and Composite. Intersects answers
// pairwise intersection for every combination of kinds, Inside answers
// ray-cast containment, Transform and Extrude move and sweep shapes, and
// Simplest picks the cheaper of two shapes.
//
// Every value is immutable and every operation is a pure function, so shapes
// can be shared and queried concurrently without synchronization.
package shapes
