// Package ui draws the heads-up display, the overlay controls and the event
// board on top of the particle canvas.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	AccentColor    rl.Color
	ErrorColor     rl.Color
	SuccessColor   rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 10, G: 27, B: 44, A: 235},
		PanelBorder:    rl.Color{R: 0, G: 123, B: 255, A: 255},
		SectionHeader:  rl.Color{R: 173, G: 216, B: 230, A: 255},
		LabelColor:     rl.Color{R: 170, G: 190, B: 210, A: 255},
		ValueColor:     rl.RayWhite,
		AccentColor:    rl.Color{R: 0, G: 123, B: 255, A: 255},
		ErrorColor:     rl.Color{R: 220, G: 53, B: 69, A: 255},
		SuccessColor:   rl.Color{R: 40, G: 167, B: 69, A: 255},
		BarBg:          rl.Color{R: 25, G: 25, B: 112, A: 255},
		BarFill:        rl.Color{R: 0, G: 123, B: 255, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 16,
		TitleFontSize:  22,
	}
}
