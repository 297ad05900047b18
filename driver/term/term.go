// Package term runs a driver.Driver in a terminal using tcell. The arena is
// scaled to fit the terminal, one shape cell per character.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/geom"
	"go.uber.org/zap"
)

// Options configures the terminal loop.
type Options struct {
	Arena geom.Box
	TPS   int
	// HUD returns the status line drawn on the top row. Optional.
	HUD func() string
	Log *zap.Logger
}

// Run initialises a tcell screen and drives d until the context is cancelled
// or the player quits.
func Run(ctx context.Context, d *driver.Driver, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	return RunScreen(ctx, d, screen, opts)
}

// RunScreen drives d on an initialised screen. The caller owns the screen.
func RunScreen(ctx context.Context, d *driver.Driver, screen tcell.Screen, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	if opts.Arena.Empty() {
		return fmt.Errorf("term: empty arena %+v", opts.Arena)
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	tr := newTranslator(opts.Arena, cols, rows)

	tcellEvents := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(tcellEvents)
				return
			}
			tcellEvents <- ev
		}
	}()

	interval := time.Second / time.Duration(opts.TPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("terminal opened", zap.Int("cols", cols), zap.Int("rows", rows), zap.Int("tps", opts.TPS))

	var events []driver.Event
	surface := &Cells{Screen: screen}
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-tcellEvents:
			if !ok {
				return nil
			}
			var quit bool
			events, quit = tr.translate(ev, events[:0])
			if quit {
				return nil
			}
			for _, e := range events {
				d.Dispatch(e)
			}

		case <-ticker.C:
			d.Dispatch(driver.Update{DT: interval.Seconds()})

			screen.Clear()
			d.Dispatch(driver.Render{Surface: surface, Transform: tr.transform()})
			if opts.HUD != nil {
				drawText(screen, 0, 0, opts.HUD(), tcell.StyleDefault.Reverse(true))
			}
			screen.Show()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
