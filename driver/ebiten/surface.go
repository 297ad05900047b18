package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

// Canvas draws shapes onto an ebiten image. Rectangles are mapped through
// the transform as their axis-aligned bounds.
type Canvas struct {
	Image     *ebiten.Image
	Antialias bool
}

var _ ecs.Surface = (*Canvas)(nil)

func (c *Canvas) FillRect(t geom.Transform, r geom.Box, clr color.Color) {
	b := t.ApplyBox(r)
	vector.DrawFilledRect(c.Image, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, c.Antialias)
}

func (c *Canvas) StrokeRect(t geom.Transform, r geom.Box, width float64, clr color.Color) {
	b := t.ApplyBox(r)
	vector.StrokeRect(c.Image, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), float32(width), clr, c.Antialias)
}

func (c *Canvas) Line(t geom.Transform, from, to geom.Point, width float64, clr color.Color) {
	a, b := t.Apply(from), t.Apply(to)
	vector.StrokeLine(c.Image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, c.Antialias)
}
