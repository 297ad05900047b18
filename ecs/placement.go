package ecs

import "github.com/plus3/skiff/geom"

// Placement pins a position-agnostic component to a rectangle on screen.
// Draw is translated to the rectangle's origin, and pointer events are
// forwarded in the inner component's local space only when they land inside
// the rectangle. All other capabilities pass through unchanged.
type Placement struct {
	Inner  Component
	Bounds geom.Box
}

var _ Component = (*Placement)(nil)

// NewPlacement places inner at (x, y), sized by inner's own bounding box.
func NewPlacement(inner Component, x, y float64) *Placement {
	bb := inner.BoundingBox()
	return NewPlacementBounds(inner, x, y, bb.Width, bb.Height)
}

// NewPlacementBounds places inner in an explicit rectangle.
func NewPlacementBounds(inner Component, x, y, w, h float64) *Placement {
	return &Placement{
		Inner:  inner,
		Bounds: geom.NewBox(x, y, w, h),
	}
}

func (p *Placement) Tick(ft FrameTime, w *World) {
	p.Inner.Tick(ft, w)
}

func (p *Placement) Draw(t geom.Transform, s Surface) {
	p.Inner.Draw(t.Translate(p.Bounds.X, p.Bounds.Y), s)
}

func (p *Placement) OnPress(b Button, w *World) {
	p.Inner.OnPress(b, w)
}

func (p *Placement) OnRelease(b Button, w *World) {
	p.Inner.OnRelease(b, w)
}

func (p *Placement) OnClick(x, y float64, w *World) {
	if lx, ly, ok := p.local(x, y); ok {
		p.Inner.OnClick(lx, ly, w)
	}
}

func (p *Placement) OnDrag(x, y float64, w *World) {
	if lx, ly, ok := p.local(x, y); ok {
		p.Inner.OnDrag(lx, ly, w)
	}
}

func (p *Placement) OnDestroy(w *World) {
	p.Inner.OnDestroy(w)
}

// BoundingBox is the placement rectangle.
func (p *Placement) BoundingBox() geom.Box {
	return p.Bounds
}

func (p *Placement) Collidable() bool {
	return p.Inner.Collidable()
}

func (p *Placement) local(x, y float64) (float64, float64, bool) {
	if !geom.PointInBox(p.Bounds, geom.Point{X: x, Y: y}) {
		return 0, 0, false
	}
	return x - p.Bounds.X, y - p.Bounds.Y, true
}
