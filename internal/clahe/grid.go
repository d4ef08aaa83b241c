package clahe

import (
	"fmt"
	"image"
	"iter"
)

// TileCoordinate is a zero-based column/row index into the tile grid.
type TileCoordinate struct {
	Col int
	Row int
}

func (t TileCoordinate) String() string {
	return fmt.Sprintf("(%d,%d)", t.Col, t.Row)
}

// Grid partitions an image into TilesX by TilesY rectangles.
// All tiles share the same nominal extent; the rightmost column and the
// bottom row absorb the remainder of the integer division so the tiles
// cover the image exactly.
type Grid struct {
	bounds     image.Rectangle
	tilesX     int
	tilesY     int
	tileWidth  int
	tileHeight int
}

func NewGrid(bounds image.Rectangle, tilesX, tilesY int) (*Grid, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 {
		return nil, &ConfigError{Field: "width", Value: w, Reason: "image has no columns"}
	}
	if h < 1 {
		return nil, &ConfigError{Field: "height", Value: h, Reason: "image has no rows"}
	}
	if tilesX < 1 {
		return nil, &ConfigError{Field: "tiles_x", Value: tilesX, Reason: "need at least one tile column"}
	}
	if tilesY < 1 {
		return nil, &ConfigError{Field: "tiles_y", Value: tilesY, Reason: "need at least one tile row"}
	}
	g := &Grid{
		bounds:     bounds,
		tilesX:     tilesX,
		tilesY:     tilesY,
		tileWidth:  w / tilesX,
		tileHeight: h / tilesY,
	}
	if g.tileWidth < 1 {
		return nil, &ConfigError{
			Field:  "tiles_x",
			Value:  tilesX,
			Reason: fmt.Sprintf("image is only %d pixels wide", w),
		}
	}
	if g.tileHeight < 1 {
		return nil, &ConfigError{
			Field:  "tiles_y",
			Value:  tilesY,
			Reason: fmt.Sprintf("image is only %d pixels high", h),
		}
	}
	return g, nil
}

func (g *Grid) Bounds() image.Rectangle { return g.bounds }
func (g *Grid) TilesX() int             { return g.tilesX }
func (g *Grid) TilesY() int             { return g.tilesY }

// TileWidth is the nominal tile width. The last column may be wider.
func (g *Grid) TileWidth() int { return g.tileWidth }

// TileHeight is the nominal tile height. The last row may be taller.
func (g *Grid) TileHeight() int { return g.tileHeight }

// Len is the number of tiles in the grid.
func (g *Grid) Len() int { return g.tilesX * g.tilesY }

// TileRect returns the tile's rectangle in the image's own coordinate space.
func (g *Grid) TileRect(t TileCoordinate) image.Rectangle {
	w := g.tileWidth
	if t.Col == g.tilesX-1 {
		w += g.bounds.Dx() % g.tilesX
	}
	h := g.tileHeight
	if t.Row == g.tilesY-1 {
		h += g.bounds.Dy() % g.tilesY
	}
	minX := g.bounds.Min.X + t.Col*g.tileWidth
	minY := g.bounds.Min.Y + t.Row*g.tileHeight
	return image.Rect(minX, minY, minX+w, minY+h)
}

// Tiles yields every coordinate in row-major order.
func (g *Grid) Tiles() iter.Seq[TileCoordinate] {
	return func(yield func(TileCoordinate) bool) {
		for row := range g.tilesY {
			for col := range g.tilesX {
				if !yield(TileCoordinate{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}

func (g *Grid) index(t TileCoordinate) int {
	return t.Row*g.tilesX + t.Col
}
