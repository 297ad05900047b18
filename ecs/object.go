package ecs

import (
	"slices"
	"strconv"

	"github.com/plus3/skiff/geom"
)

// UUID identifies a top-level GameObject for the lifetime of the process.
// Identifiers are assigned from a monotonically increasing counter and never
// reused. The zero UUID marks an unidentified object such as a nested group.
type UUID uint32

// IsZero reports whether the id was never assigned.
func (id UUID) IsZero() bool { return id == 0 }

func (id UUID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// GameObject is an ordered, fixed set of components acting as one Component.
// Every capability fans out to the children in the order they were given,
// without short-circuiting. Objects can be nested.
type GameObject struct {
	id         UUID
	name       string
	components []Component
}

var _ Component = (*GameObject)(nil)

func newGameObject(id UUID, name string, components []Component) *GameObject {
	owned := make([]Component, 0, len(components))
	for _, c := range components {
		if c != nil {
			owned = append(owned, c)
		}
	}
	return &GameObject{
		id:         id,
		name:       name,
		components: owned,
	}
}

// NewGroup builds an unidentified object, for nesting inside another object.
// Groups cannot be targeted by World.Destroy.
func NewGroup(name string, components ...Component) *GameObject {
	return newGameObject(0, name, components)
}

// ID returns the object's identifier.
func (o *GameObject) ID() UUID { return o.id }

// Name returns the label given at construction.
func (o *GameObject) Name() string { return o.name }

// Len returns the number of child components.
func (o *GameObject) Len() int { return len(o.components) }

// Components returns a copy of the child list.
func (o *GameObject) Components() []Component {
	return slices.Clone(o.components)
}

func (o *GameObject) String() string {
	if o.id.IsZero() {
		return o.name
	}
	return o.name + "#" + o.id.String()
}

func (o *GameObject) Tick(ft FrameTime, w *World) {
	for _, c := range o.components {
		c.Tick(ft, w)
	}
}

func (o *GameObject) Draw(t geom.Transform, s Surface) {
	for _, c := range o.components {
		c.Draw(t, s)
	}
}

func (o *GameObject) OnPress(b Button, w *World) {
	for _, c := range o.components {
		c.OnPress(b, w)
	}
}

func (o *GameObject) OnRelease(b Button, w *World) {
	for _, c := range o.components {
		c.OnRelease(b, w)
	}
}

func (o *GameObject) OnClick(x, y float64, w *World) {
	for _, c := range o.components {
		c.OnClick(x, y, w)
	}
}

func (o *GameObject) OnDrag(x, y float64, w *World) {
	for _, c := range o.components {
		c.OnDrag(x, y, w)
	}
}

func (o *GameObject) OnDestroy(w *World) {
	for _, c := range o.components {
		c.OnDestroy(w)
	}
}

// BoundingBox encloses the children with geom.Enclose. The box is the
// fieldwise maximum of the children, not their union.
func (o *GameObject) BoundingBox() geom.Box {
	boxes := make([]geom.Box, len(o.components))
	for i, c := range o.components {
		boxes[i] = c.BoundingBox()
	}
	return geom.Enclose(boxes...)
}

// Collidable reports whether any child is collidable.
func (o *GameObject) Collidable() bool {
	for _, c := range o.components {
		if c.Collidable() {
			return true
		}
	}
	return false
}
