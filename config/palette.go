package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the parsed scene colours.
type Palette struct {
	Emerald    color.RGBA
	Gold       color.RGBA
	Accent     color.RGBA
	Background color.RGBA
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading # is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q must be #RRGGBB or #RRGGBBAA", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Colors parses every palette entry.
func (p PaletteConfig) Colors() (Palette, error) {
	var out Palette
	var err error
	if out.Emerald, err = ParseHexColor(p.Emerald); err != nil {
		return Palette{}, fmt.Errorf("palette.emerald: %w", err)
	}
	if out.Gold, err = ParseHexColor(p.Gold); err != nil {
		return Palette{}, fmt.Errorf("palette.gold: %w", err)
	}
	if out.Accent, err = ParseHexColor(p.Accent); err != nil {
		return Palette{}, fmt.Errorf("palette.accent: %w", err)
	}
	if out.Background, err = ParseHexColor(p.Background); err != nil {
		return Palette{}, fmt.Errorf("palette.background: %w", err)
	}
	return out, nil
}

// Emissive brightens c as if it glowed with the given intensity: each channel
// is scaled by 1+intensity and clamped. Alpha is kept.
func Emissive(c color.RGBA, intensity float32) color.RGBA {
	k := 1 + intensity
	if k < 0 {
		k = 0
	}
	scale := func(v uint8) uint8 {
		f := float32(v) * k
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
