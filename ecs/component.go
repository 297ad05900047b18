package ecs

import "github.com/plus3/skiff/geom"

// Component is a unit of behaviour. Every capability may be left as a no-op
// by embedding Base and overriding only what the component needs.
//
// The World passed to a capability is valid only for the duration of that
// call; components must not retain it.
type Component interface {
	// Tick advances the component by one frame.
	Tick(ft FrameTime, w *World)
	// Draw emits shapes into s through t. It must not change gameplay state.
	Draw(t geom.Transform, s Surface)
	OnPress(b Button, w *World)
	OnRelease(b Button, w *World)
	// OnClick and OnDrag receive pointer coordinates in the component's own
	// space, already translated by any enclosing Placement.
	OnClick(x, y float64, w *World)
	OnDrag(x, y float64, w *World)
	// OnDestroy runs once when the owning object is reconciled out of the
	// live set. It cannot veto the destruction.
	OnDestroy(w *World)
	// BoundingBox is the extent in local coordinates.
	BoundingBox() geom.Box
	// Collidable opts the component into collision queries.
	Collidable() bool
}

// Base implements every Component capability as a no-op with a zero box.
type Base struct{}

func (Base) Tick(FrameTime, *World)           {}
func (Base) Draw(geom.Transform, Surface)     {}
func (Base) OnPress(Button, *World)           {}
func (Base) OnRelease(Button, *World)         {}
func (Base) OnClick(float64, float64, *World) {}
func (Base) OnDrag(float64, float64, *World)  {}
func (Base) OnDestroy(*World)                 {}
func (Base) BoundingBox() geom.Box            { return geom.Box{} }
func (Base) Collidable() bool                 { return false }

var _ Component = Base{}
