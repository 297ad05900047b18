package ecs_test

import (
	"testing"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"github.com/stretchr/testify/assert"
)

func TestPlacementPointerEvents(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want []string
	}{
		{name: "inside", x: 15, y: 25, want: []string{"click:knob:5,5", "drag:knob:5,5"}},
		{name: "origin edge", x: 10, y: 20, want: []string{"click:knob:0,0", "drag:knob:0,0"}},
		{name: "far edge", x: 60, y: 70, want: []string{"click:knob:50,50", "drag:knob:50,50"}},
		{name: "left of", x: 9, y: 25, want: nil},
		{name: "below", x: 15, y: 71, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trace []string
			s := ecs.NewScheduler()
			s.Add(s.NewObject("ui", ecs.NewPlacementBounds(newProbe(&trace, "knob"), 10, 20, 50, 50)))

			s.Click(tt.x, tt.y)
			s.Drag(tt.x, tt.y)

			assert.Equal(t, tt.want, trace)
		})
	}
}

func TestPlacementForwardsOtherCapabilities(t *testing.T) {
	var trace []string
	s := ecs.NewScheduler()
	s.Add(s.NewObject("ui", ecs.NewPlacementBounds(newProbe(&trace, "knob"), 10, 20, 50, 50)))

	s.Once(0)
	s.Press(ecs.Mouse(ecs.MouseRight))
	s.Release(ecs.Mouse(ecs.MouseRight))

	assert.Equal(t, []string{"tick:knob", "press:knob:MouseRight", "release:knob:MouseRight"}, trace)
}

func TestPlacementDrawTranslates(t *testing.T) {
	inner := &probe{box: geom.NewBox(0, 0, 8, 4)}
	p := ecs.NewPlacement(inner, 5, 7)

	surface := &recordingSurface{}
	p.Draw(geom.Identity(), surface)

	assert.Equal(t, []geom.Box{geom.NewBox(5, 7, 8, 4)}, surface.fills)
	assert.Equal(t, geom.NewBox(5, 7, 8, 4), p.BoundingBox())
}

func TestPlacementCollidableFollowsInner(t *testing.T) {
	assert.False(t, ecs.NewPlacement(ecs.Base{}, 0, 0).Collidable())
	assert.True(t, ecs.NewPlacement(solidBox{}, 0, 0).Collidable())
}

func TestSharedCell(t *testing.T) {
	angle := ecs.NewShared(0.0)
	reader, writer := angle, angle

	writer.Set(1.5)
	assert.Equal(t, 1.5, reader.Get())
}
