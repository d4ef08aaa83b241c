package clahe

// RegionKind tells how many tile LUTs govern a pixel.
type RegionKind int

const (
	// Corner pixels use a single tile's LUT directly.
	Corner RegionKind = iota + 1
	// Border pixels blend two tiles along the image edge.
	Border
	// Interior pixels blend the four surrounding tiles.
	Interior
)

func (k RegionKind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Border:
		return "border"
	case Interior:
		return "interior"
	default:
		return "unknown"
	}
}

// Region is the result of classifying one pixel against the tile grid.
//
// Corner uses Tiles[0]. Border blends Tiles[0] into Tiles[1] by WX.
// Interior uses Tiles in the order top-left, top-right, bottom-right,
// bottom-left, blending by WX horizontally and then by WY vertically.
type Region struct {
	Kind  RegionKind
	Tiles [4]TileCoordinate
	WX    float64
	WY    float64
}

// Count is the number of tiles that contribute to the pixel, or 0 for a
// Region that was not produced by Classify.
func (r Region) Count() int {
	switch r.Kind {
	case Corner:
		return 1
	case Border:
		return 2
	case Interior:
		return 4
	default:
		return 0
	}
}

// Classify places the pixel at (x, y), given in image coordinates, into
// exactly one of the corner, border or interior zones.
//
// Tile centers sit at extent/2 + i*extent on each axis. A pixel is near the
// leading edge when coord <= extent/2 and near the trailing edge when
// coord > extent*tiles - extent/2. The first and last tile columns and rows
// always use the nominal extent, so the remainder pixels of the last tile
// fall into the trailing-edge zone.
func (g *Grid) Classify(x, y int) Region {
	x -= g.bounds.Min.X
	y -= g.bounds.Min.Y

	halfW, halfH := g.tileWidth/2, g.tileHeight/2
	lastCol, lastRow := g.tilesX-1, g.tilesY-1

	left := x <= halfW
	right := x > g.tileWidth*g.tilesX-halfW
	top := y <= halfH
	bottom := y > g.tileHeight*g.tilesY-halfH

	switch {
	case left && top:
		return corner(0, 0)
	case right && top:
		return corner(lastCol, 0)
	case right && bottom:
		return corner(lastCol, lastRow)
	case left && bottom:
		return corner(0, lastRow)
	}

	switch {
	case left || right:
		col := 0
		if right {
			col = lastCol
		}
		r0, r1, w := span(y, halfH, g.tileHeight, g.tilesY)
		return Region{
			Kind:  Border,
			Tiles: [4]TileCoordinate{{Col: col, Row: r0}, {Col: col, Row: r1}},
			WX:    w,
		}
	case top || bottom:
		row := 0
		if bottom {
			row = lastRow
		}
		c0, c1, w := span(x, halfW, g.tileWidth, g.tilesX)
		return Region{
			Kind:  Border,
			Tiles: [4]TileCoordinate{{Col: c0, Row: row}, {Col: c1, Row: row}},
			WX:    w,
		}
	}

	c0, c1, wx := span(x, halfW, g.tileWidth, g.tilesX)
	r0, r1, wy := span(y, halfH, g.tileHeight, g.tilesY)
	return Region{
		Kind: Interior,
		Tiles: [4]TileCoordinate{
			{Col: c0, Row: r0},
			{Col: c1, Row: r0},
			{Col: c1, Row: r1},
			{Col: c0, Row: r1},
		},
		WX: wx,
		WY: wy,
	}
}

func corner(col, row int) Region {
	return Region{
		Kind:  Corner,
		Tiles: [4]TileCoordinate{{Col: col, Row: row}},
	}
}

// span finds the pair of tiles whose centers bracket coord along one axis and
// the weight of the second tile.
func span(coord, half, extent, tiles int) (lo, hi int, w float64) {
	lo = min(max((coord-half)/extent, 0), max(tiles-2, 0))
	hi = min(lo+1, tiles-1)
	if lo == hi {
		return lo, hi, 0
	}

	w = float64(coord-(half+lo*extent)) / float64(extent)
	if w < 0 {
		lo, hi = hi, lo
		w = -w
	}
	// odd extents leave one in-zone pixel just past the last center
	return lo, hi, min(w, 1)
}
