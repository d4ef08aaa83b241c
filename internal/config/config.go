// Package config loads equalizer settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spartajet/clahe/internal/clahe"
	"github.com/spartajet/clahe/internal/grayscale"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TilesX    int    `yaml:"tiles_x"`
	TilesY    int    `yaml:"tiles_y"`
	ClipLimit int    `yaml:"clip_limit"`
	Workers   int    `yaml:"workers"`
	GrayMode  string `yaml:"gray_mode"`
	ScaleDown int    `yaml:"scale_down"`
	Output    string `yaml:"output"`
}

func Default() *Config {
	return &Config{
		TilesX:    clahe.DefaultTiles,
		TilesY:    clahe.DefaultTiles,
		ClipLimit: clahe.DefaultClipLimit,
		GrayMode:  string(grayscale.Luma),
		ScaleDown: 1,
		Output:    "output.png",
	}
}

// Load reads path over the defaults. Keys that are missing from the file
// keep their default value, and unknown keys are an error. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if _, err := grayscale.ParseMode(c.GrayMode); err != nil {
		return err
	}
	if c.ScaleDown < 1 {
		return fmt.Errorf("scale_down must be at least 1, got %d", c.ScaleDown)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}

func (c *Config) Options() clahe.Options {
	return clahe.Options{
		TilesX:    c.TilesX,
		TilesY:    c.TilesY,
		ClipLimit: c.ClipLimit,
		Workers:   c.Workers,
	}
}

// Mode returns the parsed gray mode, falling back to luma when the value
// does not parse. Call Validate first to reject bad values.
func (c *Config) Mode() grayscale.Mode {
	m, err := grayscale.ParseMode(c.GrayMode)
	if err != nil {
		return grayscale.Luma
	}
	return m
}
