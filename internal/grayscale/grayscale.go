// Package grayscale reduces color images to the single 8-bit channel that
// the equalizer works on.
package grayscale

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
)

// Mode picks the weighting used to collapse RGB into one intensity.
type Mode string

const (
	// Luma uses the BT.601 weights of color.GrayModel.
	Luma Mode = "luma"
	// Rec709 uses the BT.709 weights 0.2126, 0.7152 and 0.0722.
	Rec709 Mode = "rec709"
	// Lightness is the L component of HSL, (max+min)/2.
	Lightness Mode = "lightness"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Luma, Rec709, Lightness:
		return m, nil
	case "":
		return Luma, nil
	default:
		return "", fmt.Errorf("unknown gray mode %q (want luma, rec709 or lightness)", s)
	}
}

// Intensity converts one color to an 8-bit intensity. Alpha is ignored
// beyond the premultiplication color.Color already carries.
func (m Mode) Intensity(c color.Color) uint8 {
	switch m {
	case Rec709:
		r, g, b, _ := c.RGBA()
		y := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 257
		return uint8(math.Min(math.Round(y), 255))
	case Lightness:
		return uint8(math.Round(RGBToHSL(c).L * 255))
	default:
		return color.GrayModel.Convert(c).(color.Gray).Y
	}
}

// FromImage returns img itself when it is already *image.Gray and a
// converted copy with the same bounds otherwise.
func FromImage(img image.Image, mode Mode) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[out.PixOffset(b.Min.X, y):][:b.Dx()]
		for i := range row {
			row[i] = mode.Intensity(img.At(b.Min.X+i, y))
		}
	}
	return out
}
