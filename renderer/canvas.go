package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/systems"
)

// Canvas is a persistent render target the particle field paints into.
// The target is never cleared between frames, so the translucent trail fill
// accumulates into fading streaks.
type Canvas struct {
	target      rl.RenderTexture2D
	width       int32
	height      int32
	initialized bool
}

// NewCanvas creates a canvas of the given size.
// Must be called after the raylib window is created.
func NewCanvas(width, height int32) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the render target. Previous contents are discarded.
func (c *Canvas) Resize(width, height int32) {
	if c.initialized {
		rl.UnloadRenderTexture(c.target)
		c.initialized = false
	}
	c.width = width
	c.height = height
	if width <= 0 || height <= 0 {
		return
	}

	c.target = rl.LoadRenderTexture(width, height)
	rl.BeginTextureMode(c.target)
	rl.ClearBackground(rl.Color{R: 10, G: 27, B: 44, A: 255})
	rl.EndTextureMode()
	c.initialized = true
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int32, int32) {
	return c.width, c.height
}

// Begin redirects drawing to the canvas.
func (c *Canvas) Begin() bool {
	if !c.initialized {
		return false
	}
	rl.BeginTextureMode(c.target)
	return true
}

// End restores drawing to the window.
func (c *Canvas) End() {
	if c.initialized {
		rl.EndTextureMode()
	}
}

// Present draws the canvas to the window at the origin.
func (c *Canvas) Present() {
	if !c.initialized {
		return
	}
	// Render textures are stored bottom-up (OpenGL convention)
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.width), Height: -float32(c.height)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Export writes the current canvas contents to a PNG file.
func (c *Canvas) Export(path string) error {
	if !c.initialized {
		return fmt.Errorf("exporting canvas: no render target")
	}
	img := rl.LoadImageFromTexture(c.target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting canvas to %s", path)
	}
	return nil
}

// Unload releases GPU resources.
func (c *Canvas) Unload() {
	if c.initialized {
		rl.UnloadRenderTexture(c.target)
		c.initialized = false
	}
}

// FillRect implements systems.DrawTarget.
func (c *Canvas) FillRect(x, y, w, h float32, tint systems.Tint) {
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, ToColor(tint))
}

// FillCircle implements systems.DrawTarget.
func (c *Canvas) FillCircle(x, y, radius float32, tint systems.Tint) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, ToColor(tint))
}

// StrokeLine implements systems.DrawTarget.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float32, tint systems.Tint) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, ToColor(tint))
}

// ToColor converts a float-alpha tint to a raylib colour.
func ToColor(t systems.Tint) rl.Color {
	a := t.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return rl.Color{R: t.R, G: t.G, B: t.B, A: uint8(math.Round(float64(a) * 255))}
}
