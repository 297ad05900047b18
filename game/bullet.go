package game

import (
	"image/color"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

const bulletSize = 2

// Bullet travels in a straight line. It removes itself once it leaves the
// arena, and on its first hit it removes both itself and the object it hit.
// The firing object is never hit.
type Bullet struct {
	ecs.Base
	Color color.RGBA
	Pos   geom.Point
	Dir   geom.Point
	Owner ecs.UUID
	Arena geom.Box
}

func (b *Bullet) Tick(_ ecs.FrameTime, w *ecs.World) {
	b.Pos = add(b.Pos, b.Dir)

	self := w.Current()
	if !geom.PointInBox(b.Arena, b.Pos) {
		w.Destroy(self)
		return
	}

	for _, hit := range w.Query(b.BoundingBox()) {
		if hit.ID() == b.Owner || hit == self {
			continue
		}
		w.Destroy(hit)
		w.Destroy(self)
		return
	}
}

func (b *Bullet) Draw(t geom.Transform, s ecs.Surface) {
	s.FillRect(t, b.BoundingBox(), b.Color)
}

func (b *Bullet) BoundingBox() geom.Box {
	return geom.NewBox(b.Pos.X, b.Pos.Y, bulletSize, bulletSize)
}
