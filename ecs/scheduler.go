package ecs

import (
	"context"
	"time"

	"github.com/plus3/skiff/geom"
	"go.uber.org/zap"
)

// Pass names used by the Scheduler's capability helpers.
const (
	PassTick    = "tick"
	PassDraw    = "draw"
	PassPress   = "press"
	PassRelease = "release"
	PassClick   = "click"
	PassDrag    = "drag"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	PassCount   int
	TotalPasses int64
	LiveObjects int
	NextID      UUID
	Passes      []PassStats
}

// PassStats provides execution statistics for one kind of pass.
type PassStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
	LastVisited    int
	LastSpawned    int
	LastDestroyed  int
	TotalSpawned   int64
	TotalDestroyed int64
}

type passStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
	lastVisited    int
	lastSpawned    int
	lastDestroyed  int
	totalSpawned   int64
	totalDestroyed int64
}

// Scheduler owns the live collection between passes and runs one pass per
// event. Only one pass may run at a time; starting a pass from inside a
// component panics.
type Scheduler struct {
	objects []*GameObject
	nextID  UUID
	frame   uint64
	running bool

	log       *zap.Logger
	passStats []*passStatsInternal
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger routes reconciliation logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScheduler creates a scheduler with an empty collection.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		nextID: 1,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewObject builds an identified object outside of a pass. Use Add to make it
// live.
func (s *Scheduler) NewObject(name string, components ...Component) *GameObject {
	id := s.nextID
	s.nextID++
	return newGameObject(id, name, components)
}

// Add appends obj to the live collection. It must not be called during a pass;
// components spawn through the World instead.
func (s *Scheduler) Add(obj *GameObject) {
	s.mustBeIdle()
	if obj == nil {
		return
	}
	s.objects = append(s.objects, obj)
}

// Replace swaps the whole live collection, e.g. when a scene is reloaded.
// Replaced objects do not receive OnDestroy.
func (s *Scheduler) Replace(objects []*GameObject) {
	s.mustBeIdle()
	s.objects = append([]*GameObject(nil), objects...)
}

// Objects returns a snapshot of the live collection in pass-start order.
func (s *Scheduler) Objects() []*GameObject {
	return append([]*GameObject(nil), s.objects...)
}

// Len returns the number of live objects.
func (s *Scheduler) Len() int {
	return len(s.objects)
}

// NextID returns the identifier the next created object will receive.
func (s *Scheduler) NextID() UUID {
	return s.nextID
}

// Pass runs fn against every live object through a fresh World and adopts
// the reconciled collection.
func (s *Scheduler) Pass(name string, fn Dispatch) Reconciled {
	s.mustBeIdle()
	s.running = true
	defer func() { s.running = false }()

	start := time.Now()
	w := NewWorld(s.objects, s.nextID)
	w.Run(fn)
	out := w.Reconcile()
	duration := time.Since(start)

	s.objects = out.Objects
	s.nextID = out.NextID
	s.record(name, duration, out)

	if out.Spawned > 0 || out.Destroyed > 0 {
		s.log.Debug("pass reconciled",
			zap.String("pass", name),
			zap.Int("visited", out.Visited),
			zap.Int("spawned", out.Spawned),
			zap.Int("destroyed", out.Destroyed),
			zap.Int("live", len(out.Objects)),
			zap.Uint32("next_id", uint32(out.NextID)),
		)
	}
	return out
}

// Once runs a tick pass with the given delta time.
func (s *Scheduler) Once(dt float64) Reconciled {
	s.frame++
	ft := FrameTime{DeltaTime: dt, Frame: s.frame}
	return s.Pass(PassTick, func(obj *GameObject, w *World) {
		obj.Tick(ft, w)
	})
}

// Draw runs a draw pass into surface.
func (s *Scheduler) Draw(t geom.Transform, surface Surface) Reconciled {
	return s.Pass(PassDraw, func(obj *GameObject, _ *World) {
		obj.Draw(t, surface)
	})
}

// Press runs an input-press pass.
func (s *Scheduler) Press(b Button) Reconciled {
	return s.Pass(PassPress, func(obj *GameObject, w *World) {
		obj.OnPress(b, w)
	})
}

// Release runs an input-release pass.
func (s *Scheduler) Release(b Button) Reconciled {
	return s.Pass(PassRelease, func(obj *GameObject, w *World) {
		obj.OnRelease(b, w)
	})
}

// Click runs a click pass at global pointer coordinates.
func (s *Scheduler) Click(x, y float64) Reconciled {
	return s.Pass(PassClick, func(obj *GameObject, w *World) {
		obj.OnClick(x, y, w)
	})
}

// Drag runs a drag pass at global pointer coordinates.
func (s *Scheduler) Drag(x, y float64) Reconciled {
	return s.Pass(PassDrag, func(obj *GameObject, w *World) {
		obj.OnDrag(x, y, w)
	})
}

// Run ticks repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

func (s *Scheduler) record(name string, duration time.Duration, out Reconciled) {
	var stats *passStatsInternal
	for _, ps := range s.passStats {
		if ps.name == name {
			stats = ps
			break
		}
	}
	if stats == nil {
		stats = &passStatsInternal{
			name:        name,
			minDuration: time.Duration(1<<63 - 1),
		}
		s.passStats = append(s.passStats, stats)
	}

	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration
	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
	stats.lastVisited = out.Visited
	stats.lastSpawned = out.Spawned
	stats.lastDestroyed = out.Destroyed
	stats.totalSpawned += int64(out.Spawned)
	stats.totalDestroyed += int64(out.Destroyed)
}

// GetStats returns statistics about pass execution, one entry per pass name
// in first-seen order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		PassCount:   len(s.passStats),
		LiveObjects: len(s.objects),
		NextID:      s.nextID,
		Passes:      make([]PassStats, len(s.passStats)),
	}

	var totalExecs int64
	for i, internal := range s.passStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Passes[i] = PassStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
			LastVisited:    internal.lastVisited,
			LastSpawned:    internal.lastSpawned,
			LastDestroyed:  internal.lastDestroyed,
			TotalSpawned:   internal.totalSpawned,
			TotalDestroyed: internal.totalDestroyed,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalPasses = totalExecs
	return stats
}

func (s *Scheduler) mustBeIdle() {
	if s.running {
		panic("ecs: Scheduler mutated while a pass is running")
	}
}
