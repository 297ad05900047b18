package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/ecs"
)

// input is the slice of ebiten's polling API the game reads each frame.
type input interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	CursorPosition() (int, int)
}

type ebitenInput struct{}

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenInput) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button ecs.MouseButton
}{
	{ebiten.MouseButtonLeft, ecs.MouseLeft},
	{ebiten.MouseButtonRight, ecs.MouseRight},
	{ebiten.MouseButtonMiddle, ecs.MouseMiddle},
}

func keyButton(k ebiten.Key) ecs.Button {
	return ecs.Key(int(k), k.String())
}

// poller turns one frame of polled input into driver events. Pointer moves
// come first so presses and releases see the current position.
type poller struct {
	in        input
	keys      []ebiten.Key
	cursor    [2]int
	hasCursor bool
}

func (p *poller) poll(events []driver.Event, pointer, keyboard bool) []driver.Event {
	if pointer {
		x, y := p.in.CursorPosition()
		if !p.hasCursor || x != p.cursor[0] || y != p.cursor[1] {
			p.cursor = [2]int{x, y}
			p.hasCursor = true
			events = append(events, driver.Move{X: float64(x), Y: float64(y)})
		}

		for _, mb := range mouseButtons {
			if p.in.IsMouseButtonJustPressed(mb.ebiten) {
				events = append(events, driver.Press{Button: ecs.Mouse(mb.button)})
			}
			if p.in.IsMouseButtonJustReleased(mb.ebiten) {
				events = append(events, driver.Release{Button: ecs.Mouse(mb.button)})
			}
		}
	}

	if keyboard {
		p.keys = p.in.AppendJustPressedKeys(p.keys[:0])
		for _, k := range p.keys {
			events = append(events, driver.Press{Button: keyButton(k)})
		}
		p.keys = p.in.AppendJustReleasedKeys(p.keys[:0])
		for _, k := range p.keys {
			events = append(events, driver.Release{Button: keyButton(k)})
		}
	}

	return events
}
