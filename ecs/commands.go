package ecs

import "github.com/kamstrup/intmap"

// commands buffers the structural changes requested during a pass. They are
// applied only when the World is reconciled, so the collection being walked
// never changes under the traversal.
type commands struct {
	spawns   []*GameObject
	destroys *intmap.Map[UUID, struct{}]
}

func newCommands() commands {
	return commands{
		destroys: intmap.New[UUID, struct{}](16),
	}
}

// spawn queues an object for admission after the pass.
func (c *commands) spawn(obj *GameObject) {
	c.spawns = append(c.spawns, obj)
}

// destroy queues an identifier for removal after the pass. Marking the same
// id twice is harmless.
func (c *commands) destroy(id UUID) {
	c.destroys.Put(id, struct{}{})
}

// marked reports whether id is pending destruction.
func (c *commands) marked(id UUID) bool {
	_, ok := c.destroys.Get(id)
	return ok
}
