package clahe

import "runtime"

const (
	DefaultTiles     = 8
	DefaultClipLimit = 40
)

// Options configures a single Apply call.
type Options struct {
	// TilesX is the number of tile columns.
	TilesX int
	// TilesY is the number of tile rows.
	TilesY int
	// ClipLimit is the maximum count any histogram bin keeps before its
	// excess is spread over all 256 bins.
	ClipLimit int
	// Workers bounds the goroutines used by both passes.
	// Zero or less means runtime.GOMAXPROCS(0).
	Workers int
}

func DefaultOptions() Options {
	return Options{
		TilesX:    DefaultTiles,
		TilesY:    DefaultTiles,
		ClipLimit: DefaultClipLimit,
	}
}

// Validate checks the values that do not depend on the image size.
// Tile extents are checked by NewGrid once the bounds are known.
func (o Options) Validate() error {
	if o.TilesX < 1 {
		return &ConfigError{Field: "tiles_x", Value: o.TilesX, Reason: "need at least one tile column"}
	}
	if o.TilesY < 1 {
		return &ConfigError{Field: "tiles_y", Value: o.TilesY, Reason: "need at least one tile row"}
	}
	if o.ClipLimit < 0 {
		return &ConfigError{Field: "clip_limit", Value: o.ClipLimit, Reason: "must not be negative"}
	}
	return nil
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
