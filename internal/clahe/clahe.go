// Package clahe implements contrast-limited adaptive histogram equalization
// for 8-bit grayscale images.
//
// The image is cut into a grid of tiles. Each tile gets its own clipped
// histogram and lookup table, and every output pixel blends the tables of
// the one, two or four tiles whose centers surround it.
package clahe

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Apply equalizes src and returns a new image with the same bounds.
// src must be single-channel; other color models fail with a
// ChannelCountError. Nothing is returned unless every pixel was written.
func Apply(src image.Image, opts Options) (*image.Gray, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(src.Bounds(), opts.TilesX, opts.TilesY)
	if err != nil {
		return nil, err
	}
	workers := opts.workers()

	luts, err := BuildLUTGrid(src, grid, opts.ClipLimit, workers)
	if err != nil {
		return nil, fmt.Errorf("build lookup tables: %w", err)
	}

	in := asGray(src)
	b := in.Bounds()
	out := image.NewGray(b)

	var g errgroup.Group
	g.SetLimit(workers)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		g.Go(func() error {
			inRow := in.Pix[in.PixOffset(b.Min.X, y):][:b.Dx()]
			outRow := out.Pix[out.PixOffset(b.Min.X, y):][:b.Dx()]
			for i, v := range inRow {
				outRow[i] = luts.Map(grid.Classify(b.Min.X+i, y), v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("remap pixels: %w", err)
	}
	return out, nil
}

func asGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, src, b.Min, draw.Src)
	return g
}
