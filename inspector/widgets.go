package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg   = rl.Color{R: 20, G: 40, B: 60, A: 255}
	ColorBarFill = rl.Color{R: 0, G: 123, B: 255, A: 255}
	ColorBarLow  = rl.Color{R: 25, G: 25, B: 112, A: 255}
	ColorText    = rl.Color{R: 220, G: 230, B: 240, A: 255}
	ColorTextDim = rl.Color{R: 140, G: 160, B: 180, A: 255}
	ColorBoolOn  = rl.Color{R: 40, G: 167, B: 69, A: 255}
	ColorBoolOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

const (
	rowHeight   = 18
	fontSize    = 14
	valueOffset = 80
	barWidth    = 120
)

// DrawField draws one field row at (x, y) and returns the row height.
func DrawField(x, y int32, f Field) int32 {
	switch f.Widget {
	case WidgetBar:
		if ratio, ok := f.Ratio(); ok {
			drawBar(x, y, f, ratio)
			return rowHeight
		}
	case WidgetBool:
		if on, ok := f.Value.(bool); ok {
			drawBool(x, y, f.Name, on)
			return rowHeight
		}
	}
	rl.DrawText(f.Name+": "+f.Text(), x, y, fontSize, ColorText)
	return rowHeight
}

func drawBar(x, y int32, f Field, ratio float32) {
	rl.DrawText(f.Name, x, y, fontSize, ColorTextDim)

	barX := x + valueOffset
	rl.DrawRectangle(barX, y, barWidth, fontSize, ColorBarBg)
	rl.DrawRectangle(barX, y, int32(barWidth*ratio), fontSize, lerpColor(ColorBarLow, ColorBarFill, ratio))
	rl.DrawText(f.Text(), barX+barWidth+5, y, fontSize, ColorTextDim)
}

func drawBool(x, y int32, name string, on bool) {
	rl.DrawText(name, x, y, fontSize, ColorTextDim)

	color, text := ColorBoolOff, "OFF"
	if on {
		color, text = ColorBoolOn, "ON"
	}
	rl.DrawRectangle(x+valueOffset, y, fontSize, fontSize, color)
	rl.DrawText(text, x+valueOffset+fontSize+5, y, fontSize, color)
}

// lerpColor interpolates between two opaque colors.
func lerpColor(a, b rl.Color, t float32) rl.Color {
	mix := func(p, q uint8) uint8 {
		return uint8(float32(p) + (float32(q)-float32(p))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
