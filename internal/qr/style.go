// Package qr renders the QR codes that link physical markers to content
// records ({base}/ar/{ref_id}). The customization parameters are plain
// data; the PNG rasterizer is the only rendering backend here and can be
// swapped without touching the parameter model.
package qr

import (
	"fmt"
	"image/color"
	"strings"
)

// GradientDirection orients the two-color foreground gradient.
type GradientDirection string

const (
	GradientHorizontal GradientDirection = "horizontal"
	GradientVertical   GradientDirection = "vertical"
	GradientDiagonal   GradientDirection = "diagonal"
)

// Rendered size bounds, in pixels.
const (
	SizeMin     = 100
	SizeMax     = 400
	DefaultSize = 200
)

// Gradient is the optional two-color foreground fill. Start and end
// colors only apply while Enabled is set.
type Gradient struct {
	Enabled    bool
	StartColor string
	EndColor   string
	Direction  GradientDirection
}

// Style is one customization session's parameter set.
type Style struct {
	FgColor       string
	BgColor       string
	Size          int
	IncludeMargin bool
	LogoPath      string
	Gradient      Gradient
}

// DefaultStyle is the style a new customization session starts from and
// the one the quick per-card download uses.
func DefaultStyle() Style {
	return Style{
		FgColor:       "#000000",
		BgColor:       "#ffffff",
		Size:          DefaultSize,
		IncludeMargin: true,
		Gradient: Gradient{
			Enabled:    false,
			StartColor: "#000000",
			EndColor:   "#000000",
			Direction:  GradientHorizontal,
		},
	}
}

// Preset is a named ready-made style offered next to each record.
type Preset struct {
	Name  string
	Style Style
}

// Presets returns the four styles of the per-record QR sheet.
func Presets() []Preset {
	standard := DefaultStyle()

	branded := DefaultStyle()
	branded.FgColor = "#1976d2"

	dark := DefaultStyle()
	dark.FgColor = "#ffffff"
	dark.BgColor = "#121212"

	custom := DefaultStyle()

	return []Preset{
		{Name: "Standard", Style: standard},
		{Name: "Branded", Style: branded},
		{Name: "Dark", Style: dark},
		{Name: "Custom", Style: custom},
	}
}

// clampSize keeps the requested size inside the fixed range.
func clampSize(size int) int {
	if size < SizeMin {
		return SizeMin
	}
	if size > SizeMax {
		return SizeMax
	}
	return size
}

// parseHexColor decodes #rgb and #rrggbb notations.
func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// lerpColor interpolates between two colors at t in [0,1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
