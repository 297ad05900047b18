package game

import (
	"image/color"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

// Cycle hands out respawn positions in a fixed rotation.
type Cycle struct {
	points []geom.Point
	next   int
}

// NewCycle creates a rotation over points. An empty cycle never respawns.
func NewCycle(points ...geom.Point) *Cycle {
	return &Cycle{points: append([]geom.Point(nil), points...)}
}

// Next returns the next position and advances the rotation.
func (c *Cycle) Next() (geom.Point, bool) {
	if c == nil || len(c.points) == 0 {
		return geom.Point{}, false
	}
	p := c.points[c.next]
	c.next = (c.next + 1) % len(c.points)
	return p, true
}

// TargetConfig describes a target.
type TargetConfig struct {
	Name    string
	Color   color.RGBA
	Box     geom.Box
	Respawn *Cycle
	Score   *Score
}

// Target is a collidable box. When destroyed it adds to the shared score and,
// if it has a respawn cycle, spawns a replacement at the cycle's next
// position.
type Target struct {
	ecs.Base
	Color   color.RGBA
	Box     geom.Box
	Respawn *Cycle
	Score   *Score
	name    string
}

// NewTarget builds a target object.
func NewTarget(f Factory, cfg TargetConfig) *ecs.GameObject {
	if cfg.Name == "" {
		cfg.Name = "target"
	}
	return f.NewObject(cfg.Name, &Target{
		Color:   cfg.Color,
		Box:     cfg.Box,
		Respawn: cfg.Respawn,
		Score:   cfg.Score,
		name:    cfg.Name,
	})
}

func (t *Target) OnDestroy(w *ecs.World) {
	if t.Score != nil {
		t.Score.Set(t.Score.Get() + 1)
	}

	p, ok := t.Respawn.Next()
	if !ok {
		return
	}
	w.Spawn(NewTarget(w, TargetConfig{
		Name:    t.name,
		Color:   t.Color,
		Box:     geom.NewBox(p.X, p.Y, t.Box.Width, t.Box.Height),
		Respawn: t.Respawn,
		Score:   t.Score,
	}))
}

func (t *Target) Draw(tr geom.Transform, s ecs.Surface) {
	s.FillRect(tr, t.Box, t.Color)
	s.StrokeRect(tr, t.Box, 1, Black)
}

func (t *Target) BoundingBox() geom.Box { return t.Box }
func (t *Target) Collidable() bool      { return true }
