package grayscale

import (
	"image/color"
	"math"
)

// HSL represents a color in HSL color space.
type HSL struct {
	H, S, L float64 // Hue (0–360), Saturation (0–1), Lightness (0–1)
}

// RGBToHSL converts a color.Color to HSL.
func RGBToHSL(c color.Color) HSL {
	r16, g16, b16, _ := c.RGBA()

	r := float64(r16) / 65535.0
	g := float64(g16) / 65535.0
	b := float64(b16) / 65535.0

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	delta := hi - lo

	l := (hi + lo) / 2
	if delta == 0 {
		return HSL{L: l}
	}

	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	s := delta / (hi + lo)
	if l > 0.5 {
		s = delta / (2 - hi - lo)
	}
	return HSL{H: h, S: s, L: l}
}
