// Package game holds the gameplay components driven by the ecs runtime: a
// steerable ship with an on-screen gun control, the bullets it fires and the
// targets they destroy.
package game

import (
	"image/color"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

// Factory hands out identified objects. Both *ecs.Scheduler (between passes)
// and *ecs.World (during a pass) satisfy it.
type Factory interface {
	NewObject(name string, components ...ecs.Component) *ecs.GameObject
}

var (
	_ Factory = (*ecs.Scheduler)(nil)
	_ Factory = (*ecs.World)(nil)
)

// DefaultArena is the playfield used when none is configured.
var DefaultArena = geom.NewBox(0, 0, 640, 480)

var (
	Red   = color.RGBA{R: 0xff, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
	Green = color.RGBA{G: 0xc0, A: 0xff}
)

// Score counts targets destroyed, shared by every target in a scene.
type Score = ecs.Shared[int]

// NewScore creates a zeroed score cell.
func NewScore() *Score {
	return ecs.NewShared(0)
}
