package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

var mouseMasks = []struct {
	mask   tcell.ButtonMask
	button ecs.MouseButton
}{
	{tcell.Button1, ecs.MouseLeft},
	{tcell.Button2, ecs.MouseRight},
	{tcell.Button3, ecs.MouseMiddle},
}

// translator maps tcell events onto driver events. Terminal cells are scaled
// to arena units, and mouse button masks are turned into press and release
// edges.
type translator struct {
	arena      geom.Box
	cols, rows int
	buttons    tcell.ButtonMask
}

func newTranslator(arena geom.Box, cols, rows int) *translator {
	t := &translator{arena: arena}
	t.resize(cols, rows)
	return t
}

func (t *translator) resize(cols, rows int) {
	t.cols = max(cols, 1)
	t.rows = max(rows, 1)
}

// transform maps arena units to cells.
func (t *translator) transform() geom.Transform {
	return geom.Identity().
		Scale(float64(t.cols)/t.arena.Width, float64(t.rows)/t.arena.Height).
		Translate(-t.arena.X, -t.arena.Y)
}

// toArena maps the centre of a cell back to arena units.
func (t *translator) toArena(col, row int) (float64, float64) {
	x := t.arena.X + (float64(col)+0.5)*t.arena.Width/float64(t.cols)
	y := t.arena.Y + (float64(row)+0.5)*t.arena.Height/float64(t.rows)
	return x, y
}

// translate appends the driver events for ev. quit is set for Escape, q and
// Ctrl-C.
func (t *translator) translate(ev tcell.Event, events []driver.Event) (_ []driver.Event, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return events, true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return events, true
			}
			b := ecs.Key(int(ev.Rune()), string(ev.Rune()))
			// terminals report no key-up, so a key is released immediately
			return append(events, driver.Press{Button: b}, driver.Release{Button: b}), false
		default:
			b := ecs.Key(int(ev.Key()), ev.Name())
			return append(events, driver.Press{Button: b}, driver.Release{Button: b}), false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.toArena(col, row)
		events = append(events, driver.Move{X: x, Y: y})

		now := ev.Buttons()
		for _, mb := range mouseMasks {
			was := t.buttons&mb.mask != 0
			is := now&mb.mask != 0
			switch {
			case is && !was:
				events = append(events, driver.Press{Button: ecs.Mouse(mb.button)})
			case was && !is:
				events = append(events, driver.Release{Button: ecs.Mouse(mb.button)})
			}
		}
		t.buttons = now
		return events, false

	case *tcell.EventResize:
		t.resize(ev.Size())
	}
	return events, false
}
