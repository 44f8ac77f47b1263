package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning holds the live-adjustable particle field settings.
type Tuning struct {
	ConnectionDistance float32
	InfluenceRadius    float32
}

// Slider bounds for Tuning.
const (
	maxConnectionDistance = 250
	maxInfluenceRadius    = 400
)

// ControlsPanel renders the left-side controls panel with overlay toggles
// and tuning sliders.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Height returns the panel height for the given registry.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	r := c.renderer
	rows := int32(overlays.Len() + len(overlays.Categories()))
	return rows*r.Theme.LineHeight + r.Theme.Padding*3 + r.Theme.LineHeight + 2*sliderRowHeight
}

const sliderRowHeight = 42

// Draw renders the controls panel. Returns true when a slider moved, with
// the new values written to tuning.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, tuning *Tuning) bool {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays))

	y := c.y + padding
	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
	}

	changed := false
	y += 4
	sliderW := float32(c.width - padding*2 - 50)

	rl.DrawText(fmt.Sprintf("Line distance: %.0f", tuning.ConnectionDistance), c.x+padding, y, 12, r.Theme.LabelColor)
	y += 16
	dist := gui.SliderBar(
		rl.Rectangle{X: float32(c.x + padding + 20), Y: float32(y), Width: sliderW, Height: 16},
		"0", fmt.Sprint(maxConnectionDistance),
		tuning.ConnectionDistance, 0, maxConnectionDistance,
	)
	if dist != tuning.ConnectionDistance {
		tuning.ConnectionDistance = dist
		changed = true
	}
	y += sliderRowHeight - 16

	rl.DrawText(fmt.Sprintf("Pointer radius: %.0f", tuning.InfluenceRadius), c.x+padding, y, 12, r.Theme.LabelColor)
	y += 16
	radius := gui.SliderBar(
		rl.Rectangle{X: float32(c.x + padding + 20), Y: float32(y), Width: sliderW, Height: 16},
		"0", fmt.Sprint(maxInfluenceRadius),
		tuning.InfluenceRadius, 0, maxInfluenceRadius,
	)
	if radius != tuning.InfluenceRadius {
		tuning.InfluenceRadius = radius
		changed = true
	}

	return changed
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = r.Theme.SuccessColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "view":
		return "View"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
