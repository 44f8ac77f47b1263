package game

import (
	"fmt"
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/systems"
	"github.com/pthm-cable/aurora/ui"
)

// Viewport reports the drawable canvas size.
type Viewport interface {
	Size() (w, h float32)
	// Resized reports whether the size changed since the previous frame.
	Resized() bool
}

// PointerTracker samples the pointer once per frame.
type PointerTracker interface {
	Pointer() systems.Pointer
}

// windowViewport is the raylib window.
type windowViewport struct{}

func (windowViewport) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (windowViewport) Resized() bool {
	return rl.IsWindowResized()
}

// fixedViewport is a canvas that never changes size.
type fixedViewport struct {
	w, h float32
}

func (v fixedViewport) Size() (float32, float32) {
	return v.w, v.h
}

func (fixedViewport) Resized() bool {
	return false
}

// mousePointer reports the mouse while it is over the window.
type mousePointer struct{}

func (mousePointer) Pointer() systems.Pointer {
	if !rl.IsCursorOnScreen() {
		return systems.NoPointer
	}
	pos := rl.GetMousePosition()
	return systems.PointerAt(pos.X, pos.Y)
}

// noPointer is used for headless runs.
type noPointer struct{}

func (noPointer) Pointer() systems.Pointer {
	return systems.NoPointer
}

// handleResize re-initializes the field when the viewport size changes.
// Existing particles are discarded.
func (g *Game) handleResize() {
	w, h := g.viewport.Size()
	if !g.viewport.Resized() && w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h

	g.field.Initialize(w, h)
	g.collector.RecordResize()

	if g.view != nil {
		g.view.resize(int32(w), int32(h))
	}

	slog.Info("viewport resized", "width", w, "height", h, "frame", g.frame)
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	v := g.view

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Escape closes the detail modal; the window only closes via its close button
	if rl.IsKeyPressed(rl.KeyEscape) {
		v.board.HandleEscape()
	}

	if v.board.View() == ui.ViewLogin && rl.IsKeyPressed(rl.KeyEnter) {
		v.board.SubmitLogin()
	}

	// Text boxes own the keyboard while focused
	if v.board.Editing() {
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyA) {
		v.board.Toggle(ui.ViewLogin)
	}
	if rl.IsKeyPressed(rl.KeyE) {
		v.board.Toggle(ui.ViewEvents)
	}
	if rl.IsKeyPressed(rl.KeyM) {
		v.board.Toggle(ui.ViewMembership)
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		g.exportCanvas()
	}

	g.handleOverlayKeys()

	if v.overlays.IsEnabled(ui.OverlayTrends) {
		v.trends.HandleInput()
	}

	// Particle picking is disabled while the board covers the canvas
	if v.overlays.IsEnabled(ui.OverlayInspector) && !v.board.IsOpen() &&
		rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if !v.overControls(pos.X, pos.Y) {
			v.inspector.HandleClick(g.field, pos.X, pos.Y)
		}
	}
}

// handleOverlayKeys drains the key queue into the overlay registry.
func (g *Game) handleOverlayKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		id, enabled, ok := g.view.overlays.HandleKeyPress(key)
		if !ok {
			continue
		}
		if id == ui.OverlayInspector && !enabled {
			g.view.inspector.Deselect()
		}
		slog.Debug("overlay toggled", "overlay", id, "enabled", enabled)
	}
}

// exportCanvas saves the particle canvas as a PNG in the output directory,
// or the working directory when output is disabled.
func (g *Game) exportCanvas() {
	dir := g.output.Dir()
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("aurora_%06d.png", g.frame))
	if err := g.view.canvas.Export(path); err != nil {
		slog.Error("failed to export canvas", "error", err)
		return
	}
	slog.Info("canvas exported", "path", path)
}
