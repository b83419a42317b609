// Package ui draws the 2D overlay on top of the scene: the title, the
// formation toggle and an optional stats panel.
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arix/config"
)

// Theme holds UI styling constants.
type Theme struct {
	Title       color.RGBA
	Accent      color.RGBA
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	HintColor   rl.Color

	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	FontSize      int32
	TitleFontSize int32
	ButtonWidth   float32
	ButtonHeight  float32
	BottomMargin  int32
}

// NewTheme returns the default theme tinted by the scene palette.
func NewTheme(p config.Palette) Theme {
	return Theme{
		Title:         p.Gold,
		Accent:        p.Accent,
		PanelBg:       rl.Color{R: 10, G: 12, B: 10, A: 200},
		PanelBorder:   p.Accent,
		LabelColor:    rl.LightGray,
		ValueColor:    p.Accent,
		HintColor:     rl.Gray,
		Padding:       10,
		LineHeight:    16,
		LabelWidth:    90,
		FontSize:      12,
		TitleFontSize: 32,
		ButtonWidth:   180,
		ButtonHeight:  36,
		BottomMargin:  40,
	}
}
