// Package geom holds the axis-aligned box and transform math shared by the
// runtime, the gameplay components and the drawing backends.
package geom

import "math"

// Point is a position in some coordinate space.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle given by its origin and size.
// A box with zero width or height has no collidable extent.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// NewBox creates a box from origin and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, Width: w, Height: h}
}

func (b Box) Left() float64   { return b.X }
func (b Box) Top() float64    { return b.Y }
func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Corners returns the four corners in the order top-left, bottom-left,
// top-right, bottom-right.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{X: b.Left(), Y: b.Top()},
		{X: b.Left(), Y: b.Bottom()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
	}
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// PointInBox reports whether p lies inside b. All four edges count as inside.
func PointInBox(b Box, p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// BoxOverlapsBox reports whether any corner of b lies inside a.
//
// This is a one-directional corner test, not a rectangle intersection: it
// misses a containing b whose corners are all outside a, and boxes that
// cross without either holding a corner of the other. Collision behaviour
// depends on it, so it must not be replaced with a symmetric test.
func BoxOverlapsBox(a, b Box) bool {
	for _, c := range b.Corners() {
		if PointInBox(a, c) {
			return true
		}
	}
	return false
}

// Enclose folds boxes into a conservative bound by taking the coordinate-wise
// maximum of every field, starting from the zero box.
//
// The result is anchored at the largest origin seen rather than the smallest,
// so it is not a true union. Object bounding boxes rely on this shape.
func Enclose(boxes ...Box) Box {
	var out Box
	for _, b := range boxes {
		out.X = math.Max(out.X, b.X)
		out.Y = math.Max(out.Y, b.Y)
		out.Width = math.Max(out.Width, b.Width)
		out.Height = math.Max(out.Height, b.Height)
	}
	return out
}
