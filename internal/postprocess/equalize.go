package postprocess

import (
	"image"

	"github.com/spartajet/clahe/internal/clahe"
)

type Equalize struct {
	Options clahe.Options
}

func (e *Equalize) Name() string { return "equalize" }

func (e *Equalize) Process(src *image.Gray) (*image.Gray, error) {
	return clahe.Apply(src, e.Options)
}
