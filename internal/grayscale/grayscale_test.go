package grayscale

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBToHSL_Red(t *testing.T) {
	hsl := RGBToHSL(color.RGBA{255, 0, 0, 255})

	if math.Abs(hsl.H-0) > 0.01 {
		t.Errorf("expected hue ~0, got %f", hsl.H)
	}
	if hsl.S < 0.99 {
		t.Errorf("expected high saturation, got %f", hsl.S)
	}
	if hsl.L < 0.49 || hsl.L > 0.51 {
		t.Errorf("expected lightness ~0.5, got %f", hsl.L)
	}
}

func TestRGBToHSL_Gray(t *testing.T) {
	hsl := RGBToHSL(color.Gray{Y: 51})
	require.Zero(t, hsl.H)
	require.Zero(t, hsl.S)
	require.InDelta(t, 0.2, hsl.L, 1e-9)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"luma", Luma},
		{"Rec709", Rec709},
		{" lightness ", Lightness},
		{"", Luma},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseMode("hsv")
	require.ErrorContains(t, err, `"hsv"`)
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		c    color.Color
		want uint8
	}{
		{"luma white", Luma, color.White, 255},
		{"luma black", Luma, color.Black, 0},
		{"rec709 white", Rec709, color.White, 255},
		{"rec709 green", Rec709, color.RGBA{0, 255, 0, 255}, 182},
		{"lightness red", Lightness, color.RGBA{255, 0, 0, 255}, 128},
		{"lightness gray", Lightness, color.Gray{Y: 77}, 77},
		{"all modes agree on gray", Rec709, color.Gray{Y: 77}, 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.Intensity(tt.c))
		})
	}
}

func TestFromImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	require.Same(t, gray, FromImage(gray, Rec709))

	rgba := image.NewRGBA(image.Rect(3, 4, 5, 5))
	rgba.SetRGBA(3, 4, color.RGBA{255, 255, 255, 255})
	rgba.SetRGBA(4, 4, color.RGBA{0, 255, 0, 255})

	out := FromImage(rgba, Rec709)
	require.Equal(t, rgba.Bounds(), out.Bounds())
	require.Equal(t, uint8(255), out.GrayAt(3, 4).Y)
	require.Equal(t, uint8(182), out.GrayAt(4, 4).Y)
}
