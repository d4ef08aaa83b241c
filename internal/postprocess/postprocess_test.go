package postprocess

import (
	"errors"
	"image"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spartajet/clahe/internal/clahe"
	"github.com/stretchr/testify/require"
)

type invert struct{}

func (invert) Name() string { return "invert" }

func (invert) Process(src *image.Gray) (*image.Gray, error) {
	out := image.NewGray(src.Bounds())
	for i, v := range src.Pix {
		out.Pix[i] = 255 - v
	}
	return out, nil
}

type failing struct{}

func (failing) Name() string { return "failing" }

func (failing) Process(*image.Gray) (*image.Gray, error) {
	return nil, errors.New("boom")
}

func flat(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestPipeline_RunsStagesInOrder(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := &Pipeline{
		Log:    logger,
		Stages: []Processor{invert{}, &ScaleDown{Factor: 2}},
	}

	out, err := p.Run(flat(8, 6, 10))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 3), out.Bounds())
	for _, v := range out.Pix {
		require.Equal(t, uint8(245), v)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "invert", entries[0].Data["stage"])
	require.Equal(t, "scale-down", entries[1].Data["stage"])
	require.Equal(t, 4, entries[1].Data["width"])
	require.Equal(t, logrus.InfoLevel, entries[1].Level)
}

func TestPipeline_StopsOnError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := &Pipeline{Log: logger, Stages: []Processor{failing{}, invert{}}}

	out, err := p.Run(flat(2, 2, 0))
	require.Nil(t, out)
	require.EqualError(t, err, "failing: boom")
	require.Empty(t, hook.AllEntries())
}

func TestPipeline_Empty(t *testing.T) {
	src := flat(3, 3, 7)
	out, err := (&Pipeline{}).Run(src)
	require.NoError(t, err)
	require.Same(t, src, out)
}

func TestEqualize(t *testing.T) {
	src := flat(16, 16, 100)
	out, err := (&Equalize{Options: clahe.DefaultOptions()}).Process(src)
	require.NoError(t, err)
	for _, v := range out.Pix {
		require.Equal(t, uint8(255), v)
	}

	_, err = (&Equalize{Options: clahe.DefaultOptions()}).Process(flat(4, 4, 0))
	require.ErrorIs(t, err, clahe.ErrConfig)
}

func TestScaleDown(t *testing.T) {
	tests := []struct {
		name   string
		factor int
		w, h   int
		want   image.Rectangle
	}{
		{"no-op", 1, 10, 6, image.Rect(0, 0, 10, 6)},
		{"zero is no-op", 0, 10, 6, image.Rect(0, 0, 10, 6)},
		{"half", 2, 10, 6, image.Rect(0, 0, 5, 3)},
		{"never below one pixel", 8, 10, 6, image.Rect(0, 0, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := flat(tt.w, tt.h, 90)
			out, err := (&ScaleDown{Factor: tt.factor}).Process(src)
			require.NoError(t, err)
			require.Equal(t, tt.want, out.Bounds())
			if tt.factor <= 1 {
				require.Same(t, src, out)
			}
			for _, v := range out.Pix {
				require.InDelta(t, 90, int(v), 1)
			}
		})
	}
}
