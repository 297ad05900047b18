package ecs

// FrameTime is handed to every Tick of a pass.
type FrameTime struct {
	// DeltaTime is the simulated step in seconds.
	DeltaTime float64
	// Frame counts tick passes run by the Scheduler, starting at 1.
	Frame uint64
}

// ButtonKind tells keyboard keys from pointer buttons.
type ButtonKind uint8

const (
	ButtonKeyboard ButtonKind = iota
	ButtonMouse
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Button is a discrete input source delivered to OnPress and OnRelease.
// Code is backend specific for keys and a MouseButton for pointer buttons.
type Button struct {
	Kind ButtonKind
	Code int
	Name string
}

// Key builds a keyboard button.
func Key(code int, name string) Button {
	return Button{Kind: ButtonKeyboard, Code: code, Name: name}
}

// Mouse builds a pointer button.
func Mouse(m MouseButton) Button {
	names := [...]string{"MouseLeft", "MouseRight", "MouseMiddle"}
	name := "Mouse"
	if int(m) >= 0 && int(m) < len(names) {
		name = names[m]
	}
	return Button{Kind: ButtonMouse, Code: int(m), Name: name}
}

// IsMouse reports whether b is the given pointer button.
func (b Button) IsMouse(m MouseButton) bool {
	return b.Kind == ButtonMouse && b.Code == int(m)
}

func (b Button) String() string {
	return b.Name
}
