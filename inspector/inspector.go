// Package inspector shows the state of a single selected particle and
// trends of the field telemetry.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aurora/systems"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30

	// Pick radius around the cursor when selecting a particle
	PickRadius = 12
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 10, G: 27, B: 44, A: 235}
	ColorPanelHeader = rl.Color{R: 25, G: 25, B: 112, A: 255}
	ColorPanelBorder = rl.Color{R: 0, G: 123, B: 255, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 20, G: 45, B: 70, A: 255}
	ColorSectionText = rl.Color{R: 173, G: 216, B: 230, A: 255}
)

// Section is a titled group of fields from one component.
type Section struct {
	Title  string
	Fields []Field
}

// Sections lists the inspectable components of a particle. The life
// section ends with the frames left before expiry.
func Sections(p systems.Particle) []Section {
	pos, vel, app, life := p.Components()
	remaining := Field{
		Name:   "Remaining",
		Value:  life.Remaining(),
		Widget: WidgetLabel,
		Hints:  Hints{Format: "%d frames", Max: 1},
	}
	return []Section{
		{Title: "POSITION", Fields: ExtractFields(pos)},
		{Title: "VELOCITY", Fields: ExtractFields(vel)},
		{Title: "APPEARANCE", Fields: ExtractFields(app)},
		{Title: "LIFE", Fields: append(ExtractFields(life), remaining)},
	}
}

// Inspector manages particle selection and panel rendering.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates a new inspector anchored to the right edge of the screen.
func NewInspector(screenWidth int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth)
	return ins
}

// Resize re-anchors the panel.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = 10
}

// HandleClick selects the particle under the cursor, or clears the
// selection when nothing is close enough.
func (ins *Inspector) HandleClick(field *systems.ParticleField, x, y float32) bool {
	e, ok := field.EntityNear(x, y, PickRadius)
	if !ok {
		ins.Deselect()
		return false
	}
	ins.selected = e
	ins.hasSelected = true
	return true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
	ins.selected = ecs.Entity{}
}

// Selected returns the currently selected particle, dropping the selection
// once the particle has expired.
func (ins *Inspector) Selected(field *systems.ParticleField) (systems.Particle, bool) {
	if !ins.hasSelected {
		return systems.Particle{}, false
	}
	p, ok := field.Lookup(ins.selected)
	if !ok {
		ins.Deselect()
	}
	return p, ok
}

// Draw renders the inspector panel if a particle is selected.
func (ins *Inspector) Draw(field *systems.ParticleField) {
	p, ok := ins.Selected(field)
	if !ok {
		return
	}

	sections := Sections(p)
	panelHeight := calculatePanelHeight(sections)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("PARTICLE", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	// Colour swatch in the header
	swatch := rl.Color{R: p.R, G: p.G, B: p.B, A: 255}
	rl.DrawCircle(ins.panelX+PanelWidth-20, ins.panelY+HeaderHeight/2, 8, swatch)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	for _, s := range sections {
		ins.drawSectionHeader(x, y, s.Title)
		y += 20
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
		y += 4
	}

	remaining := p.Lifespan - p.Age
	if remaining < 0 {
		remaining = 0
	}
	rl.DrawText(fmt.Sprintf("expires in %d frames", remaining), x, y, 12, ColorTextDim)
}

// DrawSelectionHighlight rings the selected particle on screen.
func (ins *Inspector) DrawSelectionHighlight(field *systems.ParticleField) {
	p, ok := ins.Selected(field)
	if !ok {
		return
	}
	radius := p.Radius*3 + 4
	rl.DrawCircleLines(int32(p.X), int32(p.Y), radius, rl.Yellow)
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// calculatePanelHeight computes the panel height for the given sections.
func calculatePanelHeight(sections []Section) int32 {
	height := int32(HeaderHeight + PanelPadding)
	for _, s := range sections {
		height += 20 + 4
		height += 18 * int32(len(s.Fields))
	}
	height += 16 // expiry line
	height += PanelPadding
	return height
}
