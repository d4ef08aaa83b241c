// Package postprocess chains image stages around the equalizer.
package postprocess

import (
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"
)

// Processor transforms a grayscale image. Implementations may return src
// itself when they have nothing to do.
type Processor interface {
	Name() string
	Process(src *image.Gray) (*image.Gray, error)
}

// Pipeline runs its stages in order, feeding each the previous result.
type Pipeline struct {
	Log    logrus.FieldLogger
	Stages []Processor
}

func (p *Pipeline) Run(src *image.Gray) (*image.Gray, error) {
	log := p.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	img := src
	for _, stage := range p.Stages {
		entry := log.WithField("stage", stage.Name())
		entry.Debugf("Running %s...", stage.Name())

		start := time.Now()
		out, err := stage.Process(img)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stage.Name(), err)
		}
		img = out

		entry.WithFields(logrus.Fields{
			"width":   img.Bounds().Dx(),
			"height":  img.Bounds().Dy(),
			"elapsed": time.Since(start).Round(time.Millisecond),
		}).Info("stage done")
	}
	return img, nil
}
