package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spartajet/clahe/internal/config"
	"github.com/spartajet/clahe/internal/grayscale"
	"github.com/spartajet/clahe/internal/imageio"
	"github.com/spartajet/clahe/internal/postprocess"
	"github.com/spf13/pflag"
	"go.coder.com/cli"
)

type rootCmd struct {
	configPath string
	output     string
	tilesX     int
	tilesY     int
	clipLimit  int
	workers    int
	grayMode   string
	scaleDown  int
	debug      bool
}

func (c *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "clahe",
		Usage: "[flags] <image>",
		Desc:  "Equalize the contrast of an image with contrast-limited adaptive histogram equalization.",
	}
}

func (c *rootCmd) RegisterFlags(fl *pflag.FlagSet) {
	def := config.Default()
	fl.StringVar(&c.configPath, "config", "", "YAML file with default settings")
	fl.StringVarP(&c.output, "output", "o", def.Output, "output image; the extension picks the format")
	fl.IntVar(&c.tilesX, "tiles-x", def.TilesX, "number of tile columns")
	fl.IntVar(&c.tilesY, "tiles-y", def.TilesY, "number of tile rows")
	fl.IntVar(&c.clipLimit, "clip-limit", def.ClipLimit, "histogram bin clip limit")
	fl.IntVar(&c.workers, "workers", def.Workers, "goroutines per pass, 0 for GOMAXPROCS")
	fl.StringVar(&c.grayMode, "gray-mode", def.GrayMode, "color to gray conversion: luma, rec709 or lightness")
	fl.IntVar(&c.scaleDown, "scale-down", def.ScaleDown, "shrink the result by this integer factor")
	fl.BoolVar(&c.debug, "debug", false, "verbose logging")
}

func (c *rootCmd) Run(fl *pflag.FlagSet) {
	log := newLogger(c.debug)
	if err := c.run(fl, log); err != nil {
		log.WithError(err).Error("clahe failed")
		os.Exit(1)
	}
}

// settings merges the config file with the flags that were set explicitly.
func (c *rootCmd) settings(fl *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"output", func() { cfg.Output = c.output }},
		{"tiles-x", func() { cfg.TilesX = c.tilesX }},
		{"tiles-y", func() { cfg.TilesY = c.tilesY }},
		{"clip-limit", func() { cfg.ClipLimit = c.clipLimit }},
		{"workers", func() { cfg.Workers = c.workers }},
		{"gray-mode", func() { cfg.GrayMode = c.grayMode }},
		{"scale-down", func() { cfg.ScaleDown = c.scaleDown }},
	}
	for _, o := range overrides {
		if fl.Changed(o.flag) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func (c *rootCmd) run(fl *pflag.FlagSet, log logrus.FieldLogger) error {
	if fl.NArg() != 1 {
		return errors.New("expected exactly one input image")
	}
	input := fl.Arg(0)

	cfg, err := c.settings(fl)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"tiles_x":    cfg.TilesX,
		"tiles_y":    cfg.TilesY,
		"clip_limit": cfg.ClipLimit,
		"gray_mode":  cfg.GrayMode,
	}).Debug("settings")

	start := time.Now()
	log.Infof("Loading %q...", input)
	img, err := imageio.Load(input)
	if err != nil {
		return err
	}
	gray := grayscale.FromImage(img, cfg.Mode())

	stages := []postprocess.Processor{&postprocess.Equalize{Options: cfg.Options()}}
	if cfg.ScaleDown > 1 {
		stages = append(stages, &postprocess.ScaleDown{Factor: cfg.ScaleDown})
	}
	pipeline := &postprocess.Pipeline{Log: log, Stages: stages}

	out, err := pipeline.Run(gray)
	if err != nil {
		return fmt.Errorf("process %q: %w", input, err)
	}

	log.Infof("Saving %q...", cfg.Output)
	if err := imageio.Save(cfg.Output, out); err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("done")
	return nil
}

func newLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func main() {
	cli.RunRoot(&rootCmd{})
}
