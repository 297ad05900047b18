// Package ebiten runs a driver.Driver inside an ebiten window.
package ebiten

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/ecs/debugui"
	debugui_ebiten "github.com/plus3/skiff/ecs/debugui/ebiten"
	"github.com/plus3/skiff/geom"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

var background = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	// Debug enables the ImGui inspector overlay.
	Debug bool
	// HUD returns the status line drawn in the top-right corner. Optional.
	HUD func() string
	Log *zap.Logger
}

// Game implements ebiten.Game over a driver.
type Game struct {
	ctx    context.Context
	driver *driver.Driver
	opts   Options
	log    *zap.Logger

	input  poller
	events []driver.Event
	face   ebtext.Face
	imgui  *debugui_ebiten.ImguiBackend
}

var _ ebiten.Game = (*Game)(nil)

// New creates the game. The ImGui backend is only created when Debug is set,
// since it owns the window.
func New(d *driver.Driver, opts Options) *Game {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{
		ctx:    context.Background(),
		driver: d,
		opts:   opts,
		log:    log,
		input:  poller{in: ebitenInput{}},
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if opts.Debug {
		g.imgui = debugui_ebiten.NewImguiBackend(opts.Title, opts.Width, opts.Height, debugui.New(d.Scheduler()))
	}
	return g
}

// Run opens the window and blocks until the window closes or ctx is
// cancelled.
func Run(ctx context.Context, d *driver.Driver, opts Options) error {
	g := New(d, opts)
	g.ctx = ctx

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(g.opts.TPS)

	g.log.Info("window opened",
		zap.String("title", g.opts.Title),
		zap.Int("width", g.opts.Width),
		zap.Int("height", g.opts.Height),
		zap.Int("tps", g.opts.TPS),
		zap.Bool("debug", g.opts.Debug),
	)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	pointer, keyboard := true, true
	if g.imgui != nil {
		pointer = !g.imgui.CapturesMouse()
		keyboard = !g.imgui.CapturesKeyboard()
	}

	g.events = g.input.poll(g.events[:0], pointer, keyboard)
	for _, ev := range g.events {
		g.driver.Dispatch(ev)
	}
	g.driver.Dispatch(driver.Update{DT: 1.0 / float64(g.opts.TPS)})

	if g.imgui != nil {
		g.imgui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.driver.Dispatch(driver.Render{
		Surface:   &Canvas{Image: screen},
		Transform: geom.Identity(),
	})

	if g.opts.HUD != nil {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())-160, 4)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, g.opts.HUD(), g.face, op)
	}

	if g.imgui != nil {
		g.imgui.DrawOverlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.opts.Width, g.opts.Height
}
