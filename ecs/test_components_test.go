package ecs_test

import (
	"fmt"
	"image/color"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

// Common test components

// probe records every capability it receives into a shared trace.
type probe struct {
	ecs.Base
	id    string
	trace *[]string
	box   geom.Box
	solid bool

	tick    func(w *ecs.World)
	destroy func(w *ecs.World)
}

func newProbe(trace *[]string, id string) *probe {
	return &probe{id: id, trace: trace}
}

func (p *probe) record(format string, args ...any) {
	if p.trace != nil {
		*p.trace = append(*p.trace, fmt.Sprintf(format, args...))
	}
}

func (p *probe) Tick(_ ecs.FrameTime, w *ecs.World) {
	p.record("tick:%s", p.id)
	if p.tick != nil {
		p.tick(w)
	}
}

func (p *probe) Draw(t geom.Transform, s ecs.Surface) {
	s.FillRect(t, p.box, color.White)
}

func (p *probe) OnPress(b ecs.Button, _ *ecs.World) {
	p.record("press:%s:%s", p.id, b)
}

func (p *probe) OnRelease(b ecs.Button, _ *ecs.World) {
	p.record("release:%s:%s", p.id, b)
}

func (p *probe) OnClick(x, y float64, _ *ecs.World) {
	p.record("click:%s:%g,%g", p.id, x, y)
}

func (p *probe) OnDrag(x, y float64, _ *ecs.World) {
	p.record("drag:%s:%g,%g", p.id, x, y)
}

func (p *probe) OnDestroy(w *ecs.World) {
	p.record("destroy:%s", p.id)
	if p.destroy != nil {
		p.destroy(w)
	}
}

func (p *probe) BoundingBox() geom.Box { return p.box }
func (p *probe) Collidable() bool      { return p.solid }

// solidBox is a collidable component with a fixed box.
type solidBox struct {
	ecs.Base
	box geom.Box
}

func (s solidBox) BoundingBox() geom.Box { return s.box }
func (s solidBox) Collidable() bool      { return true }

// recordingSurface keeps every shape in screen space.
type recordingSurface struct {
	fills   []geom.Box
	strokes []geom.Box
	lines   [][2]geom.Point
}

func (s *recordingSurface) FillRect(t geom.Transform, r geom.Box, _ color.Color) {
	s.fills = append(s.fills, t.ApplyBox(r))
}

func (s *recordingSurface) StrokeRect(t geom.Transform, r geom.Box, _ float64, _ color.Color) {
	s.strokes = append(s.strokes, t.ApplyBox(r))
}

func (s *recordingSurface) Line(t geom.Transform, from, to geom.Point, _ float64, _ color.Color) {
	s.lines = append(s.lines, [2]geom.Point{t.Apply(from), t.Apply(to)})
}

func names(objects []*ecs.GameObject) []string {
	out := make([]string, len(objects))
	for i, obj := range objects {
		out[i] = obj.Name()
	}
	return out
}
