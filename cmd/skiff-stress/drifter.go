package main

import (
	"math/rand"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/game"
	"github.com/plus3/skiff/geom"
)

const drifterSize = 8

// Chances are per drifter per tick.
type Chances struct {
	Kill  float64 // destroy one overlapping drifter
	Spawn float64 // spawn a new drifter
	Die   float64 // destroy itself
}

// Swarm is shared by every drifter of a run.
type Swarm struct {
	Arena   geom.Box
	Chances Chances
	Rand    *rand.Rand
	// Max caps random spawns. Replacements are always made.
	Max int

	Live    int
	Queries int64
	Hits    int64
}

// Drifter moves in a straight line, bouncing off the arena walls, and
// randomly kills what it overlaps, spawns and dies. A destroyed drifter is
// replaced so the population stays roughly level.
type Drifter struct {
	ecs.Base
	Box   geom.Box
	Vel   geom.Point
	swarm *Swarm
}

// NewDrifter creates a drifter at a random position with a random velocity.
func (s *Swarm) NewDrifter(f game.Factory) *ecs.GameObject {
	s.Live++
	r := s.Rand
	box := geom.NewBox(
		s.Arena.X+r.Float64()*(s.Arena.Width-drifterSize),
		s.Arena.Y+r.Float64()*(s.Arena.Height-drifterSize),
		drifterSize, drifterSize,
	)
	vel := geom.Point{X: r.Float64()*4 - 2, Y: r.Float64()*4 - 2}
	return f.NewObject("drifter", &Drifter{Box: box, Vel: vel, swarm: s})
}

func (d *Drifter) Tick(_ ecs.FrameTime, w *ecs.World) {
	d.move()

	s := d.swarm
	r := s.Rand

	s.Queries++
	if hits := w.Query(d.Box); len(hits) > 0 {
		s.Hits++
		if r.Float64() < s.Chances.Kill {
			w.Destroy(hits[r.Intn(len(hits))])
		}
	}
	if s.Live < s.Max && r.Float64() < s.Chances.Spawn {
		w.Spawn(s.NewDrifter(w))
	}
	if r.Float64() < s.Chances.Die {
		w.Destroy(w.Current())
	}
}

func (d *Drifter) OnDestroy(w *ecs.World) {
	d.swarm.Live--
	w.Spawn(d.swarm.NewDrifter(w))
}

func (d *Drifter) BoundingBox() geom.Box { return d.Box }
func (d *Drifter) Collidable() bool      { return true }

func (d *Drifter) move() {
	a := d.swarm.Arena
	d.Box = d.Box.Translate(d.Vel.X, d.Vel.Y)
	if d.Box.Left() < a.Left() || d.Box.Right() > a.Right() {
		d.Vel.X = -d.Vel.X
		d.Box.X = min(max(d.Box.X, a.Left()), a.Right()-d.Box.Width)
	}
	if d.Box.Top() < a.Top() || d.Box.Bottom() > a.Bottom() {
		d.Vel.Y = -d.Vel.Y
		d.Box.Y = min(max(d.Box.Y, a.Top()), a.Bottom()-d.Box.Height)
	}
}
