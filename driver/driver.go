// Package driver maps frame-driver events onto scheduler passes. Backends
// translate their own window or terminal events into the closed Event set
// below and hand them to a Driver one at a time.
package driver

import (
	"sync"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"go.uber.org/zap"
)

// Event is one input delivered by a backend. The set is closed.
type Event interface {
	isEvent()
}

// Update advances the simulation by DT seconds.
type Update struct {
	DT float64
}

// Press is a key or pointer button going down.
type Press struct {
	Button ecs.Button
}

// Release is a key or pointer button going up.
type Release struct {
	Button ecs.Button
}

// Move is the pointer moving to absolute screen coordinates.
type Move struct {
	X, Y float64
}

// Render asks for one frame to be drawn into Surface.
type Render struct {
	Surface   ecs.Surface
	Transform geom.Transform
}

func (Update) isEvent()  {}
func (Press) isEvent()   {}
func (Release) isEvent() {}
func (Move) isEvent()    {}
func (Render) isEvent()  {}

// Driver owns the pointer state and runs exactly one pass per dispatched
// event, except for a left button press which only records that the pointer
// is down.
type Driver struct {
	sched *ecs.Scheduler
	log   *zap.Logger

	pointer geom.Point
	down    bool

	mu     sync.Mutex
	posted []func(*ecs.Scheduler)
}

// New creates a driver over sched. A nil logger disables logging.
func New(sched *ecs.Scheduler, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{sched: sched, log: log}
}

// Scheduler returns the scheduler the driver runs passes on.
func (d *Driver) Scheduler() *ecs.Scheduler {
	return d.sched
}

// Pointer returns the last known pointer position and whether the left
// button is held.
func (d *Driver) Pointer() (geom.Point, bool) {
	return d.pointer, d.down
}

// Post queues fn to run against the scheduler before the next Update pass.
// It is safe to call from any goroutine.
func (d *Driver) Post(fn func(*ecs.Scheduler)) {
	d.mu.Lock()
	d.posted = append(d.posted, fn)
	d.mu.Unlock()
}

func (d *Driver) drain() {
	d.mu.Lock()
	posted := d.posted
	d.posted = nil
	d.mu.Unlock()

	for _, fn := range posted {
		fn(d.sched)
	}
}

// Dispatch handles one event.
func (d *Driver) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case Update:
		d.drain()
		d.sched.Once(ev.DT)

	case Render:
		t := ev.Transform
		if t == (geom.Transform{}) {
			t = geom.Identity()
		}
		d.sched.Draw(t, ev.Surface)

	case Press:
		if ev.Button.IsMouse(ecs.MouseLeft) {
			d.down = true
			return
		}
		d.sched.Press(ev.Button)

	case Release:
		if ev.Button.IsMouse(ecs.MouseLeft) {
			d.down = false
			d.sched.Click(d.pointer.X, d.pointer.Y)
			return
		}
		d.sched.Release(ev.Button)

	case Move:
		d.pointer = geom.Point{X: ev.X, Y: ev.Y}
		if d.down {
			d.sched.Drag(ev.X, ev.Y)
		}

	default:
		d.log.Warn("unhandled driver event", zap.Any("event", ev))
	}
}
