package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/ecs"
	"github.com/stretchr/testify/assert"
)

type fakeInput struct {
	pressedKeys   []ebiten.Key
	releasedKeys  []ebiten.Key
	pressedMouse  map[ebiten.MouseButton]bool
	releasedMouse map[ebiten.MouseButton]bool
	x, y          int
}

func (f *fakeInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.pressedKeys...)
}

func (f *fakeInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.releasedKeys...)
}

func (f *fakeInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return f.pressedMouse[b]
}

func (f *fakeInput) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return f.releasedMouse[b]
}

func (f *fakeInput) CursorPosition() (int, int) {
	return f.x, f.y
}

func TestPollerPointer(t *testing.T) {
	in := &fakeInput{x: 10, y: 20}
	p := &poller{in: in}

	events := p.poll(nil, true, true)
	assert.Equal(t, []driver.Event{driver.Move{X: 10, Y: 20}}, events)

	// unchanged cursor emits no move
	in.pressedMouse = map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true}
	events = p.poll(nil, true, true)
	assert.Equal(t, []driver.Event{driver.Press{Button: ecs.Mouse(ecs.MouseLeft)}}, events)

	in.pressedMouse = nil
	in.releasedMouse = map[ebiten.MouseButton]bool{ebiten.MouseButtonRight: true}
	in.x = 11
	events = p.poll(nil, true, true)
	assert.Equal(t, []driver.Event{
		driver.Move{X: 11, Y: 20},
		driver.Release{Button: ecs.Mouse(ecs.MouseRight)},
	}, events)
}

func TestPollerKeys(t *testing.T) {
	in := &fakeInput{
		pressedKeys:  []ebiten.Key{ebiten.KeyA},
		releasedKeys: []ebiten.Key{ebiten.KeySpace},
	}
	p := &poller{in: in, hasCursor: true}

	events := p.poll(nil, true, true)
	assert.Equal(t, []driver.Event{
		driver.Press{Button: ecs.Key(int(ebiten.KeyA), ebiten.KeyA.String())},
		driver.Release{Button: ecs.Key(int(ebiten.KeySpace), ebiten.KeySpace.String())},
	}, events)
}

func TestPollerCaptured(t *testing.T) {
	in := &fakeInput{
		x:            5,
		pressedKeys:  []ebiten.Key{ebiten.KeyA},
		pressedMouse: map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true},
	}
	p := &poller{in: in}

	assert.Empty(t, p.poll(nil, false, false))
}
