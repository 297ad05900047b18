// Package debugui provides immediate-mode inspector windows for a running
// Scheduler using Dear ImGui. Render must be called between the backend's
// BeginFrame and EndFrame, outside of any pass.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skiff/ecs"
)

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the debug windows for one scheduler.
type Overlay struct {
	sched *ecs.Scheduler

	Browser   *ObjectBrowser
	Inspector *ComponentInspector
	Stats     *PassStatsWindow
	Input     InputState

	timer *FrameTimer
}

// New creates the stock set of windows.
func New(sched *ecs.Scheduler) *Overlay {
	return &Overlay{
		sched:     sched,
		Browser:   NewObjectBrowser(100),
		Inspector: NewComponentInspector(),
		Stats:     NewPassStatsWindow(120),
		timer:     NewFrameTimer(),
	}
}

// Render draws every window and refreshes the input capture state.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	objects := o.sched.Objects()
	o.Browser.Render(objects)
	o.Inspector.Render(objects, o.Browser.Selected())
	o.Stats.Render(o.sched.GetStats(), o.timer.GetDeltaTime())
}
