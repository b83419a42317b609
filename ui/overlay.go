package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arix/components"
)

// Button labels name the action a click performs.
const (
	labelDisperse = "DISPERSE"
	labelAssemble = "ASSEMBLE"
	controlsHint  = "[Space] toggle | drag: orbit | wheel: zoom"
)

// ToggleLabel returns the button text for the current mode.
func ToggleLabel(m components.Mode) string {
	if m == components.Assembled {
		return labelDisperse
	}
	return labelAssemble
}

// Overlay draws the title and the formation toggle.
type Overlay struct {
	theme Theme
	title string
}

// NewOverlay creates an overlay with the given title.
func NewOverlay(title string, theme Theme) *Overlay {
	return &Overlay{theme: theme, title: title}
}

// Draw renders the overlay and reports whether the toggle was clicked.
func (o *Overlay) Draw(mode components.Mode, screenW, screenH int32) bool {
	t := o.theme

	btnX := float32(screenW)/2 - t.ButtonWidth/2
	btnY := float32(screenH-t.BottomMargin) - t.ButtonHeight

	titleW := rl.MeasureText(o.title, t.TitleFontSize)
	titleY := int32(btnY) - t.TitleFontSize - t.Padding*2
	rl.DrawText(o.title, screenW/2-titleW/2, titleY, t.TitleFontSize, t.Title)

	bounds := rl.Rectangle{X: btnX, Y: btnY, Width: t.ButtonWidth, Height: t.ButtonHeight}
	clicked := gui.Button(bounds, ToggleLabel(mode))
	rl.DrawRectangleLinesEx(bounds, 1, t.Accent)

	hintW := rl.MeasureText(controlsHint, t.FontSize)
	rl.DrawText(controlsHint, screenW/2-hintW/2, int32(btnY+t.ButtonHeight)+t.Padding, t.FontSize, t.HintColor)

	return clicked
}
