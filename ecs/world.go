package ecs

import (
	"slices"

	"github.com/plus3/skiff/geom"
)

// Dispatch invokes one capability on the object currently being visited.
type Dispatch func(obj *GameObject, w *World)

// World is the traversal and mutation context of a single pass.
//
// A pass pops objects one at a time off the not-yet-visited sequence, hands
// the popped object to a Dispatch, then pushes it onto the visited sequence.
// The object being dispatched is held outside both sequences, so it is never
// seen twice and never aliased by a collision query. Spawns and destroys are
// buffered and applied by Reconcile, after which the World must be dropped.
type World struct {
	pending []*GameObject
	visited []*GameObject
	current *GameObject
	cmds    commands

	nextID      UUID
	visits      int
	destroyed   int
	reconciling bool
	done        bool
}

// Reconciled is the outcome of a pass, carried into the next one.
type Reconciled struct {
	Objects   []*GameObject
	NextID    UUID
	Visited   int
	Spawned   int
	Destroyed int
}

// NewWorld starts a pass over objects. nextID is the first identifier the pass
// may hand out; zero is bumped to one.
func NewWorld(objects []*GameObject, nextID UUID) *World {
	if nextID == 0 {
		nextID = 1
	}
	return &World{
		pending: slices.Clone(objects),
		visited: make([]*GameObject, 0, len(objects)),
		cmds:    newCommands(),
		nextID:  nextID,
	}
}

// Run visits every object present at the start of the pass exactly once,
// last first. Objects spawned while running are not visited.
func (w *World) Run(fn Dispatch) {
	w.mustBeLive()
	for len(w.pending) > 0 {
		last := len(w.pending) - 1
		w.current = w.pending[last]
		w.pending[last] = nil
		w.pending = w.pending[:last]

		fn(w.current, w)

		w.visited = append(w.visited, w.current)
		w.current = nil
		w.visits++
	}
}

// Current returns the object whose capability is executing, or nil between
// dispatches.
func (w *World) Current() *GameObject {
	return w.current
}

// NewObject builds an identified object from components. It is not live until
// passed to Spawn.
func (w *World) NewObject(name string, components ...Component) *GameObject {
	w.mustBeLive()
	id := w.nextID
	w.nextID++
	return newGameObject(id, name, components)
}

// Spawn queues obj to join the collection after this pass. It is not visited
// or returned by queries during the pass that spawned it.
func (w *World) Spawn(obj *GameObject) {
	w.mustBeLive()
	if obj == nil {
		return
	}
	w.cmds.spawn(obj)
}

// SpawnComponent wraps c in a fresh identified object and spawns it.
func (w *World) SpawnComponent(name string, c Component) *GameObject {
	obj := w.NewObject(name, c)
	w.Spawn(obj)
	return obj
}

// Destroy marks obj for removal at reconciliation. The object stays visitable
// for the rest of the pass. Unidentified objects are ignored.
func (w *World) Destroy(obj *GameObject) {
	if obj == nil {
		return
	}
	w.DestroyID(obj.ID())
}

// DestroyID marks an identifier for removal at reconciliation.
func (w *World) DestroyID(id UUID) {
	w.mustBeLive()
	if id.IsZero() {
		return
	}
	w.cmds.destroy(id)
}

// Query returns the collidable objects whose bounding box overlaps box, using
// geom.BoxOverlapsBox with the object's box as the container. The current
// object and objects spawned during this pass are never included.
func (w *World) Query(box geom.Box) []*GameObject {
	w.mustBeLive()
	var hits []*GameObject
	for _, seq := range [2][]*GameObject{w.pending, w.visited} {
		for _, obj := range seq {
			if obj.Collidable() && geom.BoxOverlapsBox(obj.BoundingBox(), box) {
				hits = append(hits, obj)
			}
		}
	}
	return hits
}

// Reconcile ends the pass. Objects marked for destruction receive OnDestroy,
// in collection order, and are dropped; anything they spawn is admitted and
// anything they destroy is processed in the same step. The surviving objects
// keep their relative order and are followed by the spawned objects in spawn
// order. The World cannot be used afterwards.
func (w *World) Reconcile() Reconciled {
	w.mustBeLive()
	w.reconciling = true

	// Unvisited objects keep their place ahead of the visited ones, which were
	// collected last-first.
	survivors := make([]*GameObject, 0, len(w.pending)+len(w.visited))
	survivors = append(survivors, w.pending...)
	for i := len(w.visited) - 1; i >= 0; i-- {
		survivors = append(survivors, w.visited[i])
	}
	w.pending = survivors
	w.visited = nil

	for {
		var kept, dropped []*GameObject
		for _, obj := range w.pending {
			if w.cmds.marked(obj.ID()) {
				dropped = append(dropped, obj)
			} else {
				kept = append(kept, obj)
			}
		}
		if len(dropped) == 0 {
			break
		}

		w.pending = kept
		for _, obj := range dropped {
			w.current = obj
			obj.OnDestroy(w)
			w.current = nil
		}
		w.destroyed += len(dropped)
	}

	out := Reconciled{
		Objects:   append(w.pending, w.cmds.spawns...),
		NextID:    w.nextID,
		Visited:   w.visits,
		Spawned:   len(w.cmds.spawns),
		Destroyed: w.destroyed,
	}

	w.pending = nil
	w.cmds = commands{}
	w.done = true
	return out
}

// Reconciling reports whether the World is applying its deferred effects,
// i.e. OnDestroy hooks are running.
func (w *World) Reconciling() bool {
	return w.reconciling
}

func (w *World) mustBeLive() {
	if w.done {
		panic("ecs: World used after Reconcile")
	}
}
