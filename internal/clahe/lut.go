package clahe

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// LUT maps an input intensity to an equalized output intensity.
type LUT [Bins]uint8

// NewLUT builds the cumulative-distribution mapping for a clipped histogram.
// Entry i is trunc(cdf(i) / total * 255), so the table never decreases.
// An empty histogram maps every intensity to itself.
func NewLUT(h Histogram) LUT {
	var lut LUT
	total := h.Total()
	if total == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	seen := 0
	for i, count := range h {
		seen += count
		lut[i] = uint8(float64(seen) / float64(total) * 255)
	}
	return lut
}

// LUTGrid holds one LUT per tile. It is filled once by BuildLUTGrid and only
// read afterwards.
type LUTGrid struct {
	grid *Grid
	luts []LUT
}

// BuildLUTGrid computes every tile's histogram, clips it and turns it into a
// LUT. Tiles are independent and are processed by up to workers goroutines.
func BuildLUTGrid(src image.Image, grid *Grid, clipLimit int, workers int) (*LUTGrid, error) {
	luts := make([]LUT, grid.Len())

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for t := range grid.Tiles() {
		g.Go(func() error {
			hist, err := NewHistogram(crop(src, grid.TileRect(t)))
			if err != nil {
				return fmt.Errorf("histogram for tile %s: %w", t, err)
			}
			// each goroutine owns exactly one slot
			luts[grid.index(t)] = NewLUT(hist.Clip(clipLimit))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &LUTGrid{grid: grid, luts: luts}, nil
}

func (l *LUTGrid) Grid() *Grid { return l.grid }

// Lookup maps v through the LUT of tile t.
func (l *LUTGrid) Lookup(t TileCoordinate, v uint8) uint8 {
	return l.luts[l.grid.index(t)][v]
}

// Table returns a copy of the LUT of tile t.
func (l *LUTGrid) Table(t TileCoordinate) LUT {
	return l.luts[l.grid.index(t)]
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func crop(src image.Image, r image.Rectangle) image.Image {
	if s, ok := src.(subImager); ok {
		return s.SubImage(r)
	}
	return &window{Image: src, rect: r.Intersect(src.Bounds())}
}

// window restricts an image that has no SubImage method.
type window struct {
	image.Image
	rect image.Rectangle
}

func (w *window) Bounds() image.Rectangle { return w.rect }
