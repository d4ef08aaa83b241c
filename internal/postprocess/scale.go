package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleDown shrinks both sides by Factor with a Catmull-Rom filter.
// A Factor of 1 or less returns the input unchanged.
type ScaleDown struct {
	Factor int
}

func (s *ScaleDown) Name() string { return "scale-down" }

func (s *ScaleDown) Process(src *image.Gray) (*image.Gray, error) {
	if s.Factor <= 1 {
		return src, nil
	}
	b := src.Bounds()
	w := max(b.Dx()/s.Factor, 1)
	h := max(b.Dy()/s.Factor, 1)

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
