package ecs_test

import (
	"testing"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldVisitsLastFirst(t *testing.T) {
	s := ecs.NewScheduler()
	for _, name := range []string{"a", "b", "c"} {
		s.Add(s.NewObject(name))
	}

	var visited []string
	out := s.Pass("probe", func(obj *ecs.GameObject, w *ecs.World) {
		assert.Same(t, obj, w.Current())
		visited = append(visited, obj.Name())
	})

	assert.Equal(t, []string{"c", "b", "a"}, visited)
	assert.Equal(t, 3, out.Visited)
	assert.Equal(t, []string{"a", "b", "c"}, names(s.Objects()))
}

func TestWorldCurrentNilBetweenDispatches(t *testing.T) {
	w := ecs.NewWorld(nil, 1)
	assert.Nil(t, w.Current())
	w.Run(func(*ecs.GameObject, *ecs.World) { t.Fatal("no objects to visit") })
	assert.Nil(t, w.Current())
}

func TestWorldDestroySelfIsDeferred(t *testing.T) {
	var trace []string
	s := ecs.NewScheduler()

	first := newProbe(&trace, "first")
	first.tick = func(w *ecs.World) {
		w.Destroy(w.Current())
	}
	s.Add(s.NewObject("doomed", first, newProbe(&trace, "second")))
	s.Add(s.NewObject("bystander", newProbe(&trace, "other")))

	s.Once(0)
	// the destroyed object still finished its own dispatch
	assert.Equal(t, []string{"tick:other", "tick:first", "tick:second", "destroy:first", "destroy:second"}, trace)
	assert.Equal(t, []string{"bystander"}, names(s.Objects()))

	trace = nil
	s.Once(0)
	assert.Equal(t, []string{"tick:other"}, trace)
}

func TestWorldDestroyedObjectStillVisited(t *testing.T) {
	var trace []string
	s := ecs.NewScheduler()

	victim := s.NewObject("victim", newProbe(&trace, "victim"))
	killer := newProbe(&trace, "killer")
	killer.tick = func(w *ecs.World) { w.Destroy(victim) }

	s.Add(victim)
	s.Add(s.NewObject("killer", killer))

	out := s.Once(0)

	assert.Equal(t, []string{"tick:killer", "tick:victim", "destroy:victim"}, trace)
	assert.Equal(t, 2, out.Visited)
	assert.Equal(t, 1, out.Destroyed)
	assert.Equal(t, []string{"killer"}, names(s.Objects()))
}

func TestWorldSpawnVisibleNextPass(t *testing.T) {
	var trace []string
	s := ecs.NewScheduler()

	spawned := false
	spawner := newProbe(&trace, "spawner")
	spawner.tick = func(w *ecs.World) {
		if !spawned {
			spawned = true
			w.SpawnComponent("child", newProbe(&trace, "child"))
		}
	}
	s.Add(s.NewObject("spawner", spawner))

	out := s.Once(0)
	assert.Equal(t, []string{"tick:spawner"}, trace)
	assert.Equal(t, 1, out.Spawned)
	assert.Equal(t, 1, out.Visited)
	assert.Equal(t, []string{"spawner", "child"}, names(s.Objects()))

	trace = nil
	s.Once(0)
	assert.ElementsMatch(t, []string{"tick:spawner", "tick:child"}, trace)
}

func TestWorldSpawnedObjectsExemptFromDestroy(t *testing.T) {
	s := ecs.NewScheduler()
	s.Add(s.NewObject("spawner"))

	s.Pass("spawn", func(_ *ecs.GameObject, w *ecs.World) {
		child := w.NewObject("child")
		w.Spawn(child)
		w.Destroy(child)
	})

	assert.Equal(t, []string{"spawner", "child"}, names(s.Objects()))
}

func TestWorldVisitsEachObjectExactlyOnce(t *testing.T) {
	s := ecs.NewScheduler()
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Add(s.NewObject(name))
	}

	counts := map[string]int{}
	s.Pass("churn", func(obj *ecs.GameObject, w *ecs.World) {
		counts[obj.Name()]++
		w.SpawnComponent("spawned-by-"+obj.Name(), ecs.Base{})
		for _, other := range s.Objects() {
			w.Destroy(other)
		}
	})

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, counts)
	assert.Equal(t, []string{"spawned-by-d", "spawned-by-c", "spawned-by-b", "spawned-by-a"}, names(s.Objects()))
}

func TestWorldThreeSpawnsThenTwoPasses(t *testing.T) {
	s := ecs.NewScheduler()
	s.Add(s.NewObject("seed"))

	s.Pass("spawn", func(obj *ecs.GameObject, w *ecs.World) {
		for range 3 {
			w.SpawnComponent("spawned", ecs.Base{})
		}
		w.Destroy(obj)
	})
	require.Equal(t, 3, s.Len())

	for range 2 {
		counts := map[ecs.UUID]int{}
		out := s.Pass("count", func(obj *ecs.GameObject, _ *ecs.World) {
			counts[obj.ID()]++
		})
		assert.Equal(t, 3, out.Visited)
		assert.Len(t, counts, 3)
		for id, n := range counts {
			assert.Equal(t, 1, n, "object %s", id)
		}
	}
	assert.Equal(t, 3, s.Len())
}

func TestWorldIdentifiersIncrease(t *testing.T) {
	s := ecs.NewScheduler()
	a := s.NewObject("a")
	s.Add(a)

	var spawned *ecs.GameObject
	s.Pass("spawn", func(_ *ecs.GameObject, w *ecs.World) {
		spawned = w.SpawnComponent("b", ecs.Base{})
	})

	assert.Equal(t, ecs.UUID(1), a.ID())
	assert.Equal(t, ecs.UUID(2), spawned.ID())
	assert.Equal(t, ecs.UUID(3), s.NextID())
}

func TestWorldQuery(t *testing.T) {
	t.Run("finds overlapping object", func(t *testing.T) {
		w := ecs.NewWorld([]*ecs.GameObject{
			ecs.NewGroup("wall", solidBox{box: geom.NewBox(0, 0, 10, 10)}),
		}, 1)

		hits := w.Query(geom.NewBox(5, 5, 2, 2))
		require.Len(t, hits, 1)
		assert.Equal(t, "wall", hits[0].Name())

		assert.Empty(t, w.Query(geom.NewBox(100, 100, 2, 2)))
	})

	t.Run("skips non-collidable objects", func(t *testing.T) {
		w := ecs.NewWorld([]*ecs.GameObject{
			ecs.NewGroup("ghost", &probe{box: geom.NewBox(0, 0, 10, 10)}),
		}, 1)
		assert.Empty(t, w.Query(geom.NewBox(5, 5, 2, 2)))
	})

	t.Run("excludes current object and same pass spawns", func(t *testing.T) {
		s := ecs.NewScheduler()
		box := geom.NewBox(0, 0, 10, 10)
		for _, name := range []string{"a", "b", "c"} {
			s.Add(s.NewObject(name, solidBox{box: box}))
		}

		seen := map[string][]string{}
		s.Pass("query", func(obj *ecs.GameObject, w *ecs.World) {
			w.SpawnComponent("late", solidBox{box: box})
			seen[obj.Name()] = names(w.Query(geom.NewBox(1, 1, 1, 1)))
		})

		assert.ElementsMatch(t, []string{"a", "b"}, seen["c"])
		assert.ElementsMatch(t, []string{"a", "c"}, seen["b"])
		assert.ElementsMatch(t, []string{"b", "c"}, seen["a"])
	})

	t.Run("sees objects marked for destruction", func(t *testing.T) {
		s := ecs.NewScheduler()
		box := geom.NewBox(0, 0, 10, 10)
		s.Add(s.NewObject("a", solidBox{box: box}))
		s.Add(s.NewObject("b", solidBox{box: box}))

		var hits []string
		s.Pass("query", func(obj *ecs.GameObject, w *ecs.World) {
			if obj.Name() == "b" {
				for _, o := range w.Query(box) {
					w.Destroy(o)
				}
				return
			}
			hits = names(w.Query(box))
		})
		assert.Equal(t, []string{"b"}, hits)
		assert.Equal(t, []string{"b"}, names(s.Objects()))
	})
}

func TestWorldOnDestroy(t *testing.T) {
	t.Run("runs once per object", func(t *testing.T) {
		var trace []string
		s := ecs.NewScheduler()
		s.Add(s.NewObject("target", newProbe(&trace, "target")))

		s.Pass("double", func(obj *ecs.GameObject, w *ecs.World) {
			w.Destroy(obj)
			w.DestroyID(obj.ID())
		})

		assert.Equal(t, []string{"destroy:target"}, trace)
		assert.Zero(t, s.Len())
	})

	t.Run("spawns become live", func(t *testing.T) {
		var trace []string
		s := ecs.NewScheduler()

		p := newProbe(&trace, "parent")
		p.destroy = func(w *ecs.World) {
			assert.True(t, w.Reconciling())
			w.SpawnComponent("heir", newProbe(&trace, "heir"))
		}
		s.Add(s.NewObject("parent", p))

		out := s.Pass("kill", func(obj *ecs.GameObject, w *ecs.World) {
			w.Destroy(obj)
		})

		assert.Equal(t, 1, out.Spawned)
		assert.Equal(t, []string{"heir"}, names(s.Objects()))

		trace = nil
		s.Once(0)
		assert.Equal(t, []string{"tick:heir"}, trace)
	})

	t.Run("destroys chain within reconciliation", func(t *testing.T) {
		var trace []string
		s := ecs.NewScheduler()

		second := s.NewObject("second", newProbe(&trace, "second"))
		first := newProbe(&trace, "first")
		first.destroy = func(w *ecs.World) { w.Destroy(second) }

		s.Add(s.NewObject("first", first))
		s.Add(second)
		s.Add(s.NewObject("third"))

		out := s.Pass("kill", func(obj *ecs.GameObject, w *ecs.World) {
			if obj.Name() == "first" {
				w.Destroy(obj)
			}
		})

		assert.Equal(t, []string{"destroy:first", "destroy:second"}, trace)
		assert.Equal(t, 2, out.Destroyed)
		assert.Equal(t, []string{"third"}, names(s.Objects()))
	})
}

func TestWorldReconcileOrder(t *testing.T) {
	s := ecs.NewScheduler()
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Add(s.NewObject(name))
	}

	s.Pass("mixed", func(obj *ecs.GameObject, w *ecs.World) {
		switch obj.Name() {
		case "b":
			w.Destroy(obj)
			w.SpawnComponent("x", ecs.Base{})
		case "d":
			w.SpawnComponent("y", ecs.Base{})
		}
	})

	// d is visited first, so y is spawned before x
	assert.Equal(t, []string{"a", "c", "d", "y", "x"}, names(s.Objects()))
}

func TestWorldUsedAfterReconcile(t *testing.T) {
	w := ecs.NewWorld(nil, 1)
	w.Reconcile()

	assert.PanicsWithValue(t, "ecs: World used after Reconcile", func() {
		w.Spawn(ecs.NewGroup("late"))
	})
	assert.Panics(t, func() { w.Query(geom.Box{}) })
	assert.Panics(t, func() { w.Reconcile() })
}

func TestWorldIgnoresUnidentified(t *testing.T) {
	group := ecs.NewGroup("group")
	w := ecs.NewWorld([]*ecs.GameObject{group}, 0)

	w.Destroy(group)
	w.Destroy(nil)
	w.Spawn(nil)
	out := w.Reconcile()

	assert.Equal(t, []*ecs.GameObject{group}, out.Objects)
	assert.Equal(t, ecs.UUID(1), out.NextID)
	assert.Zero(t, out.Destroyed)
}
