package ecs

import (
	"image/color"

	"github.com/plus3/skiff/geom"
)

// Surface is the immediate-mode drawing backend a Draw pass renders into.
// Shapes are given in local coordinates and mapped by the transform.
type Surface interface {
	FillRect(t geom.Transform, r geom.Box, c color.Color)
	StrokeRect(t geom.Transform, r geom.Box, width float64, c color.Color)
	Line(t geom.Transform, from, to geom.Point, width float64, c color.Color)
}
