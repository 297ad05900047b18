// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skiff/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and renders a debug overlay each frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend window and disables imgui.ini.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		Overlay:       overlay,
	}
}

// Update builds one ImGui frame. Call it from ebiten.Game.Update after the
// game's own passes have run.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// DrawOverlay draws the ImGui frame on top of screen.
func (b *ImguiBackend) DrawOverlay(screen *ebiten.Image) {
	b.Draw(screen)
}

// CapturesMouse reports whether the last frame's windows consumed pointer input.
func (b *ImguiBackend) CapturesMouse() bool {
	return b.Overlay.Input.WantCaptureMouse
}

// CapturesKeyboard reports whether the last frame's windows consumed key input.
func (b *ImguiBackend) CapturesKeyboard() bool {
	return b.Overlay.Input.WantCaptureKeyboard
}
