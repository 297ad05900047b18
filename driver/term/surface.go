package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

const (
	fillRune   = '█'
	strokeRune = '▒'
	lineRune   = '·'
)

// Cells rasterises shapes into terminal cells. The transform is expected to
// map world units to cell units.
type Cells struct {
	Screen tcell.Screen
}

var _ ecs.Surface = (*Cells)(nil)

func (c *Cells) FillRect(t geom.Transform, r geom.Box, clr color.Color) {
	x0, y0, x1, y1 := cellSpan(t.ApplyBox(r))
	style := styleFor(clr)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, fillRune, style)
		}
	}
}

func (c *Cells) StrokeRect(t geom.Transform, r geom.Box, _ float64, clr color.Color) {
	x0, y0, x1, y1 := cellSpan(t.ApplyBox(r))
	style := styleFor(clr)
	for x := x0; x <= x1; x++ {
		c.set(x, y0, strokeRune, style)
		c.set(x, y1, strokeRune, style)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, strokeRune, style)
		c.set(x1, y, strokeRune, style)
	}
}

func (c *Cells) Line(t geom.Transform, from, to geom.Point, _ float64, clr color.Color) {
	a, b := t.Apply(from), t.Apply(to)
	style := styleFor(clr)

	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps == 0 {
		c.set(int(math.Floor(a.X)), int(math.Floor(a.Y)), lineRune, style)
		return
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := a.X + (b.X-a.X)*f
		y := a.Y + (b.Y-a.Y)*f
		c.set(int(math.Floor(x)), int(math.Floor(y)), lineRune, style)
	}
}

func (c *Cells) set(x, y int, r rune, style tcell.Style) {
	w, h := c.Screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.Screen.SetContent(x, y, r, nil, style)
}

// cellSpan returns the inclusive cell range covered by b. Every box covers
// at least one cell so small shapes stay visible.
func cellSpan(b geom.Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X))
	y0 = int(math.Floor(b.Y))
	x1 = max(x0, int(math.Ceil(b.X+b.Width))-1)
	y1 = max(y0, int(math.Ceil(b.Y+b.Height))-1)
	return x0, y0, x1, y1
}

func styleFor(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}
