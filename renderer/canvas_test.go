package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/systems"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		name string
		tint systems.Tint
		want rl.Color
	}{
		{"trail", systems.Tint{R: 10, G: 27, B: 44, Alpha: 0.05}, rl.Color{R: 10, G: 27, B: 44, A: 13}},
		{"opaque", systems.Tint{R: 0, G: 123, B: 255, Alpha: 1}, rl.Color{R: 0, G: 123, B: 255, A: 255}},
		{"transparent", systems.Tint{R: 1, G: 2, B: 3}, rl.Color{R: 1, G: 2, B: 3, A: 0}},
		{"over range", systems.Tint{Alpha: 3}, rl.Color{A: 255}},
		{"negative", systems.Tint{Alpha: -0.5}, rl.Color{A: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToColor(tt.tint); got != tt.want {
				t.Errorf("ToColor(%+v) = %+v, want %+v", tt.tint, got, tt.want)
			}
		})
	}
}

func TestCanvasImplementsDrawTarget(t *testing.T) {
	var _ systems.DrawTarget = (*Canvas)(nil)
}
