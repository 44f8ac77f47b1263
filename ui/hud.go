package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Frame       int64
	FPS         int32
	Particles   int
	Connections int
	MeanOpacity float64
	Pointer     bool
	Paused      bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme

	rl.DrawText(data.Title, 10, 10, theme.TitleFontSize, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d | Lines: %d | Opacity: %.2f", data.Particles, data.Connections, data.MeanOpacity),
		10, 38, 16, theme.LabelColor,
	)

	pointer := "away"
	if data.Pointer {
		pointer = "on canvas"
	}
	rl.DrawText(
		fmt.Sprintf("Frame: %d | FPS: %d | Pointer: %s", data.Frame, data.FPS, pointer),
		10, 58, 16, theme.LabelColor,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 78, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders frame phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, phases []string) {
	r := p.renderer
	width := int32(260)
	height := int32(70 + 14*len(phases))
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding

	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  p99: %s", stats.AvgFrameDuration.Round(time.Microsecond),
		stats.P99FrameDuration.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 16
	rl.DrawText(fmt.Sprintf("Frames/s: %.1f", stats.FramesPerSecond), x, y, 12, rl.Yellow)
	y += 16

	for _, name := range phases {
		avg := stats.PhaseAvg[name]
		pct := stats.PhasePct[name]

		color := r.Theme.LabelColor
		if pct > 60 {
			color = rl.Red
		} else if pct > 30 {
			color = rl.Orange
		}

		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
}
