package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#046307", color.RGBA{0x04, 0x63, 0x07, 0xff}},
		{"#FFD700", color.RGBA{0xff, 0xd7, 0x00, 0xff}},
		{"bfa362", color.RGBA{0xbf, 0xa3, 0x62, 0xff}},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColorRejects(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(in)
		assert.ErrorIs(t, err, ErrInvalid, in)
	}
}

func TestDefaultPalette(t *testing.T) {
	p, err := Default().Palette.Colors()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x05, 0x05, 0x05, 0xff}, p.Background)
}

func TestValidateRejectsBadPalette(t *testing.T) {
	cfg := Default()
	cfg.Palette.Gold = "gold"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestEmissive(t *testing.T) {
	c := color.RGBA{100, 200, 10, 255}
	assert.Equal(t, c, Emissive(c, 0))
	assert.Equal(t, color.RGBA{120, 240, 12, 255}, Emissive(c, 0.2))
	assert.Equal(t, color.RGBA{200, 255, 20, 255}, Emissive(c, 1))
}
