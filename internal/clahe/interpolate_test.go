package clahe

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b uint8
		w    float64
		want uint8
	}{
		{10, 13, 0.5, 11},
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{200, 100, 0.5, 150},
		{7, 7, 0.9, 7},
		{0, 255, 0.125, 31},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Lerp(tt.a, tt.b, tt.w), "Lerp(%d, %d, %v)", tt.a, tt.b, tt.w)
	}
}

func TestBilerp_TruncatesEachPass(t *testing.T) {
	require.Equal(t, uint8(125), Bilerp(50, 100, 150, 200, 0.5, 0.5))

	// exact bilinear would give 0.5, but each row truncates to 0 first
	require.Equal(t, uint8(0), Bilerp(0, 1, 1, 0, 0.5, 0.5))
	require.Equal(t, uint8(1), Bilerp(0, 3, 3, 0, 0.5, 0.5))

	// the weights pick out single samples at the extremes
	require.Equal(t, uint8(10), Bilerp(10, 20, 30, 40, 0, 0))
	require.Equal(t, uint8(20), Bilerp(10, 20, 30, 40, 1, 0))
	require.Equal(t, uint8(30), Bilerp(10, 20, 30, 40, 1, 1))
	require.Equal(t, uint8(40), Bilerp(10, 20, 30, 40, 0, 1))
}

func TestLUTGrid_Map(t *testing.T) {
	g, err := NewGrid(image.Rect(0, 0, 16, 16), 2, 2)
	require.NoError(t, err)

	constant := func(v uint8) LUT {
		var l LUT
		for i := range l {
			l[i] = v
		}
		return l
	}
	// row-major: (0,0) (1,0) (0,1) (1,1)
	luts := &LUTGrid{grid: g, luts: []LUT{constant(50), constant(100), constant(200), constant(150)}}

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"top-left corner", 4, 4, 50},
		{"bottom-right corner", 15, 15, 150},
		{"top border midway", 8, 0, 75},
		{"left border midway", 0, 8, 125},
		{"interior center", 8, 8, 125},
		{"interior at last centers", 12, 12, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, luts.Map(g.Classify(tt.x, tt.y), 100))
		})
	}
}
