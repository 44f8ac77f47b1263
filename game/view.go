package game

import (
	"github.com/pthm-cable/aurora/inspector"
	"github.com/pthm-cable/aurora/renderer"
	"github.com/pthm-cable/aurora/ui"
)

// Controls panel placement
const (
	controlsX     = 10
	controlsY     = 100
	controlsWidth = 220
)

const controlsLegend = "[E] Events  [M] Join  [A] Admin  [Space] Pause  [F11] Fullscreen  [F12] Save PNG  [H/C/I/T/P] Overlays"

// view holds the windowed-only collaborators.
type view struct {
	canvas    *renderer.Canvas
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel
	inspector *inspector.Inspector
	trends    *inspector.TrendPanel
	board     *ui.BoardPanel
	tuning    ui.Tuning
}

func newView(w, h int32, board *ui.BoardPanel, tuning ui.Tuning) *view {
	v := &view{
		canvas:    renderer.NewCanvas(w, h),
		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(0, 0),
		overlays:  ui.NewOverlayRegistry(),
		controls:  ui.NewControlsPanel(controlsX, controlsY, controlsWidth),
		inspector: inspector.NewInspector(w),
		trends:    inspector.NewTrendPanel(w, h),
		board:     board,
		tuning:    tuning,
	}
	v.placePerfPanel(h)
	return v
}

func (v *view) resize(w, h int32) {
	v.canvas.Resize(w, h)
	v.inspector.Resize(w)
	v.trends.Resize(w, h)
	v.placePerfPanel(h)
}

// placePerfPanel anchors the perf panel above the controls legend.
func (v *view) placePerfPanel(h int32) {
	v.perfPanel.SetPosition(controlsX, h-170)
}

// overControls reports whether (x, y) falls on the controls panel.
func (v *view) overControls(x, y float32) bool {
	if !v.overlays.IsEnabled(ui.OverlayControls) {
		return false
	}
	height := v.controls.Height(v.overlays)
	return x >= controlsX && x < controlsX+controlsWidth &&
		y >= controlsY && y < float32(controlsY+height)
}
