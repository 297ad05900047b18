package game

import (
	"image/color"
	"math"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

const (
	shipSize    = 10
	barrelLen   = 12
	bulletSpeed = 2
)

// ShipConfig describes a ship and its gun control.
type ShipConfig struct {
	Name  string
	Color color.RGBA
	Pos   geom.Point
	// Dir is the initial per-tick velocity.
	Dir   geom.Point
	Arena geom.Box
	// Gun is the screen position of the gun control.
	Gun     geom.Point
	GunSize float64
}

// DefaultShip returns the stock red ship in the top-left corner.
func DefaultShip() ShipConfig {
	return ShipConfig{
		Name:    "ship",
		Color:   Red,
		Dir:     geom.Point{X: 1, Y: 1},
		Arena:   DefaultArena,
		GunSize: 50,
	}
}

// Ship drifts along its direction inside the arena. Dragging re-aims it
// toward the pointer and clicking fires a bullet toward the pointer.
type Ship struct {
	ecs.Base
	Color       color.RGBA
	Pos         geom.Point
	Dir         geom.Point
	W, H        float64
	Arena       geom.Box
	Orientation *ecs.Shared[float64]
}

// NewShip builds a ship object: the gun control placed on screen, then the
// ship itself, both sharing one orientation cell.
func NewShip(f Factory, cfg ShipConfig) *ecs.GameObject {
	if cfg.Arena.Empty() {
		cfg.Arena = DefaultArena
	}
	if cfg.GunSize <= 0 {
		cfg.GunSize = 50
	}

	orientation := ecs.NewShared(0.0)
	gun := &Gun{Dir: orientation, Size: cfg.GunSize}
	ship := &Ship{
		Color:       cfg.Color,
		Pos:         cfg.Pos,
		Dir:         cfg.Dir,
		W:           shipSize,
		H:           shipSize,
		Arena:       cfg.Arena,
		Orientation: orientation,
	}
	return f.NewObject(cfg.Name, ecs.NewPlacement(gun, cfg.Gun.X, cfg.Gun.Y), ship)
}

func (s *Ship) Tick(_ ecs.FrameTime, _ *ecs.World) {
	s.Pos = add(s.Pos, s.Dir)
	s.Pos.X = math.Max(math.Min(s.Pos.X, s.Arena.Right()-s.W), s.Arena.Left())
	s.Pos.Y = math.Max(math.Min(s.Pos.Y, s.Arena.Bottom()-s.H), s.Arena.Top())
}

func (s *Ship) OnDrag(x, y float64, _ *ecs.World) {
	dir := Normalize(sub(geom.Point{X: x, Y: y}, s.Pos))
	if !Finite(dir) {
		return
	}
	s.Dir = dir
}

func (s *Ship) OnClick(x, y float64, w *ecs.World) {
	dir := Normalize(sub(geom.Point{X: x, Y: y}, s.Pos))
	if !Finite(dir) {
		return
	}

	var owner ecs.UUID
	if cur := w.Current(); cur != nil {
		owner = cur.ID()
	}
	w.SpawnComponent("bullet", &Bullet{
		Color: s.Color,
		Pos:   s.Pos,
		Dir:   scale(dir, bulletSpeed),
		Owner: owner,
		Arena: s.Arena,
	})
}

func (s *Ship) Draw(t geom.Transform, surface ecs.Surface) {
	surface.FillRect(t, s.BoundingBox(), s.Color)

	a := s.Orientation.Get()
	center := geom.Point{X: s.Pos.X + s.W/2, Y: s.Pos.Y + s.H/2}
	tip := add(center, geom.Point{X: barrelLen * math.Sin(a), Y: barrelLen * math.Cos(a)})
	surface.Line(t, center, tip, 1, s.Color)
}

func (s *Ship) BoundingBox() geom.Box {
	return geom.NewBox(s.Pos.X, s.Pos.Y, s.W, s.H)
}

// Gun is an on-screen aiming pad. Dragging inside it points the shared
// orientation from the pad's far corner toward the pointer.
type Gun struct {
	ecs.Base
	Dir  *ecs.Shared[float64]
	Size float64
}

func (g *Gun) OnDrag(x, y float64, _ *ecs.World) {
	a := Angle(sub(geom.Point{X: g.Size, Y: g.Size}, geom.Point{X: x, Y: y}))
	if math.IsNaN(a) {
		return
	}
	g.Dir.Set(a)
}

func (g *Gun) Draw(t geom.Transform, s ecs.Surface) {
	bounds := g.BoundingBox()
	s.FillRect(t, bounds, White)
	s.StrokeRect(t, bounds, 1, Black)
}

func (g *Gun) BoundingBox() geom.Box {
	return geom.NewBox(0, 0, g.Size, g.Size)
}
