package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/systems"
	"github.com/pthm-cable/aurora/telemetry"
	"github.com/pthm-cable/aurora/ui"
)

// discardTarget drops all drawing. Headless runs still render so that
// connection statistics are computed.
type discardTarget struct{}

func (discardTarget) FillRect(x, y, w, h float32, c systems.Tint) {}

func (discardTarget) FillCircle(x, y, radius float32, c systems.Tint) {}

func (discardTarget) StrokeLine(x1, y1, x2, y2, width float32, c systems.Tint) {}

// renderField paints the field onto its target. In windowed mode this also
// opens the window frame and presents the canvas.
func (g *Game) renderField() {
	if g.view == nil {
		g.field.Render(g.target)
		return
	}

	canvas := g.view.canvas
	if canvas.Begin() {
		g.field.Render(canvas)
		canvas.End()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	canvas.Present()
}

// drawOverlays draws every enabled overlay and the event board on top.
func (g *Game) drawOverlays() {
	v := g.view
	w, h := int32(g.width), int32(g.height)

	if v.overlays.IsEnabled(ui.OverlayInspector) {
		v.inspector.DrawSelectionHighlight(g.field)
	}

	if v.overlays.IsEnabled(ui.OverlayHUD) {
		stats := g.field.Stats()
		v.hud.Draw(ui.HUDData{
			Title:       g.cfg.Screen.Title,
			Frame:       g.frame,
			FPS:         rl.GetFPS(),
			Particles:   g.field.Count(),
			Connections: stats.Connections,
			MeanOpacity: stats.MeanOpacity,
			Pointer:     g.lastPointer.Present,
			Paused:      g.paused,
		})
		v.hud.DrawControls(h, controlsLegend)
	}

	// The board is modal over the canvas panels
	if !v.board.IsOpen() && v.overlays.IsEnabled(ui.OverlayControls) {
		if v.controls.Draw(v.overlays, &v.tuning) {
			g.field.SetTuning(v.tuning.ConnectionDistance, v.tuning.InfluenceRadius)
		}
	}

	if v.overlays.IsEnabled(ui.OverlayTrends) {
		v.trends.Draw()
	}
	if v.overlays.IsEnabled(ui.OverlayPerf) {
		v.perfPanel.Draw(g.perf.Stats(), telemetry.Phases())
	}
	if v.overlays.IsEnabled(ui.OverlayInspector) {
		v.inspector.Draw(g.field)
	}

	v.board.Update()
	v.board.Draw(w, h)
}
