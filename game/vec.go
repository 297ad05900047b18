package game

import (
	"math"

	"github.com/plus3/skiff/geom"
)

// up is the reference direction angles are measured from.
var up = geom.Point{X: 0, Y: 1}

func add(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func sub(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func scale(v geom.Point, s float64) geom.Point {
	return geom.Point{X: v.X * s, Y: v.Y * s}
}

func dot(a, b geom.Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components.
func Normalize(v geom.Point) geom.Point {
	l := math.Hypot(v.X, v.Y)
	return geom.Point{X: v.X / l, Y: v.Y / l}
}

// Angle returns the unsigned angle in radians between v and the +Y axis.
// The result is NaN for a zero vector.
func Angle(v geom.Point) float64 {
	// rounding can push the cosine just past ±1; NaN passes through
	c := math.Max(-1, math.Min(1, dot(up, Normalize(v))))
	return math.Acos(c)
}

// Finite reports whether both components are real numbers.
func Finite(v geom.Point) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
