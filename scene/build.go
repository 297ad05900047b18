package scene

import (
	"fmt"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/game"
	"github.com/plus3/skiff/geom"
)

// Scene is a built scene: its objects in file order and the score its
// targets share.
type Scene struct {
	Objects []*ecs.GameObject
	Score   *game.Score
}

// Build creates the objects of spec through f. Ships are clamped to arena.
func Build(f game.Factory, spec *Spec, arena geom.Box) (*Scene, error) {
	if arena.Empty() {
		arena = game.DefaultArena
	}

	respawn := make([]geom.Point, len(spec.Respawn))
	for i, p := range spec.Respawn {
		respawn[i] = geom.Point{X: p.X, Y: p.Y}
	}
	cycle := game.NewCycle(respawn...)

	sc := &Scene{Score: game.NewScore()}
	for i, o := range spec.Objects {
		var obj *ecs.GameObject
		switch o.Kind {
		case KindShip:
			obj = buildShip(f, o, arena)

		case KindTarget:
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("scene: object %d: target size %gx%g must be positive", i, o.Width, o.Height)
			}
			obj = game.NewTarget(f, game.TargetConfig{
				Name:    o.Name,
				Color:   o.Color.Or(game.Green),
				Box:     geom.NewBox(o.X, o.Y, o.Width, o.Height),
				Respawn: cycle,
				Score:   sc.Score,
			})

		default:
			return nil, fmt.Errorf("scene: object %d: unknown kind %q", i, o.Kind)
		}
		sc.Objects = append(sc.Objects, obj)
	}
	return sc, nil
}

func buildShip(f game.Factory, o ObjectSpec, arena geom.Box) *ecs.GameObject {
	cfg := game.DefaultShip()
	cfg.Arena = arena
	cfg.Pos = geom.Point{X: o.X, Y: o.Y}
	cfg.Color = o.Color.Or(cfg.Color)
	if o.Name != "" {
		cfg.Name = o.Name
	}
	if o.Dir != nil {
		cfg.Dir = geom.Point{X: o.Dir.X, Y: o.Dir.Y}
	}
	if o.Gun != nil {
		cfg.Gun = geom.Point{X: o.Gun.X, Y: o.Gun.Y}
		if o.Gun.Size > 0 {
			cfg.GunSize = o.Gun.Size
		}
	}
	return game.NewShip(f, cfg)
}

// Reload loads the scene at path and replaces the scheduler's live objects
// with it. On error the live objects are left alone.
func Reload(s *ecs.Scheduler, path string, arena geom.Box) (*Scene, error) {
	spec, err := Load(path)
	if err != nil {
		return nil, err
	}
	sc, err := Build(s, spec, arena)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Replace(sc.Objects)
	return sc, nil
}
