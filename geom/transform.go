package geom

import "math"

// Transform is a 2-D affine matrix
//
//	| A B Tx |
//	| C D Ty |
//
// mapping local coordinates into surface coordinates. The zero value is not
// usable; start from Identity.
type Transform struct {
	A, B, Tx float64
	C, D, Ty float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate appends a translation applied before t, so that local point
// (0,0) of the result maps to where (dx,dy) mapped under t.
func (t Transform) Translate(dx, dy float64) Transform {
	return t.Multiply(Transform{A: 1, D: 1, Tx: dx, Ty: dy})
}

// Scale appends a scale applied before t.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Multiply(Transform{A: sx, D: sy})
}

// Rotate appends a rotation by theta radians applied before t.
func (t Transform) Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return t.Multiply(Transform{A: cos, B: -sin, C: sin, D: cos})
}

// Multiply returns t·o, the transform that applies o first and then t.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.B*o.C,
		B:  t.A*o.B + t.B*o.D,
		Tx: t.A*o.Tx + t.B*o.Ty + t.Tx,
		C:  t.C*o.A + t.D*o.C,
		D:  t.C*o.B + t.D*o.D,
		Ty: t.C*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Apply maps a local point into the target space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.Tx,
		Y: t.C*p.X + t.D*p.Y + t.Ty,
	}
}

// ApplyBox maps a box and returns the axis-aligned box covering the result.
// For translate/scale-only transforms this is exact.
func (t Transform) ApplyBox(b Box) Box {
	corners := b.Corners()
	first := t.Apply(corners[0])
	minX, maxX, minY, maxY := first.X, first.X, first.Y, first.Y
	for _, c := range corners[1:] {
		p := t.Apply(c)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
