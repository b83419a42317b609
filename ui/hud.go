package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arix/components"
)

// HUDData holds the values shown in the stats panel.
type HUDData struct {
	FPS       int32
	Frame     uint64
	Mode      components.Mode
	Toggles   uint64
	Particles int
	// Mean distance to target per category, from the latest convergence sample
	MeanDist [components.NumCategories]float64
	StepMs   float64
}

// HUD renders a small stats panel in the top-left corner.
type HUD struct {
	theme   Theme
	visible bool
}

// NewHUD creates a hidden HUD.
func NewHUD(theme Theme) *HUD {
	return &HUD{theme: theme}
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h.visible }

// Draw renders the panel if visible.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	t := h.theme
	x, y := t.Padding, t.Padding
	rows := int32(5 + components.NumCategories)
	h.drawPanel(x, y, 220, rows*t.LineHeight+t.Padding*2)

	x += t.Padding
	y += t.Padding
	y = h.drawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = h.drawLabelValue(x, y, "Frame", fmt.Sprintf("%d", data.Frame))
	y = h.drawLabelValue(x, y, "Mode", data.Mode.String())
	y = h.drawLabelValue(x, y, "Particles", fmt.Sprintf("%d (%d toggles)", data.Particles, data.Toggles))
	y = h.drawLabelValue(x, y, "Step", fmt.Sprintf("%.3f ms", data.StepMs))
	for _, cat := range components.Categories {
		y = h.drawLabelValue(x, y, cat.String(), fmt.Sprintf("%.3f from target", data.MeanDist[cat]))
	}
}

func (h *HUD) drawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, h.theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, h.theme.PanelBorder)
}

// drawLabelValue draws a label and value on the same line and returns the next Y.
func (h *HUD) drawLabelValue(x, y int32, label, value string) int32 {
	t := h.theme
	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawText(value, x+t.LabelWidth, y, t.FontSize, t.ValueColor)
	return y + t.LineHeight
}
