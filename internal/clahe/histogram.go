package clahe

import (
	"image"
	"image/color"
)

// Bins is the number of intensity levels of an 8-bit sample.
const Bins = 256

// Histogram counts the pixels of one tile per intensity.
type Histogram [Bins]int

// NewHistogram counts the intensities of every pixel in tile.
// The tile must carry a single channel; anything else is a ChannelCountError.
func NewHistogram(tile image.Image) (Histogram, error) {
	var h Histogram
	if n := channelCount(tile.ColorModel()); n != 1 {
		return h, &ChannelCountError{Channels: n}
	}

	b := tile.Bounds()
	if g, ok := tile.(*image.Gray); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := g.PixOffset(b.Min.X, y)
			for _, v := range g.Pix[i : i+b.Dx()] {
				h[v]++
			}
		}
		return h, nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h[color.GrayModel.Convert(tile.At(x, y)).(color.Gray).Y]++
		}
	}
	return h, nil
}

// Total is the number of pixels counted.
func (h *Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Excess is the number of counts above limit, summed over all bins.
func (h *Histogram) Excess(limit int) int {
	limit = max(limit, 0)
	excess := 0
	for _, count := range h {
		if count > limit {
			excess += count - limit
		}
	}
	return excess
}

// Clip returns a copy of h with every bin capped at limit and the removed
// counts spread evenly over all bins. Only excess/Bins is given back to each
// bin; the remainder of that division is dropped, so the clipped histogram
// can hold up to Bins-1 fewer counts than the original.
func (h Histogram) Clip(limit int) Histogram {
	limit = max(limit, 0)
	excess := 0
	for i, count := range h {
		if count > limit {
			excess += count - limit
			h[i] = limit
		}
	}

	share := excess / Bins
	if share == 0 {
		return h
	}
	for i := range h {
		h[i] += share
	}
	return h
}

// channelCount reports how many independent channels a color model carries.
func channelCount(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.YCbCrModel:
		return 3
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.CMYKModel, color.NYCbCrAModel:
		return 4
	}
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if !isGray(c) {
				return 4
			}
		}
		return 1
	}
	// Unknown model: a model that cannot keep pure red apart from gray is gray.
	if isGray(m.Convert(color.RGBA{R: 0xff, A: 0xff})) {
		return 1
	}
	return 3
}

func isGray(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == g && g == b
}
