package clahe

// Lerp blends a into b by w in [0,1]. The arithmetic is float64 and the
// result is truncated, not rounded: Lerp(10, 13, 0.5) is 11.
func Lerp(a, b uint8, w float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*w)
}

// Bilerp blends four samples given in top-left, top-right, bottom-right,
// bottom-left order. The top and bottom pairs are blended by wx and truncated
// first, then the two results are blended by wy.
func Bilerp(tl, tr, br, bl uint8, wx, wy float64) uint8 {
	top := Lerp(tl, tr, wx)
	bottom := Lerp(bl, br, wx)
	return Lerp(top, bottom, wy)
}

// Map produces the output intensity of a pixel with input intensity v that
// was classified as r. Every contributing tile is looked up with v itself.
func (l *LUTGrid) Map(r Region, v uint8) uint8 {
	switch r.Kind {
	case Corner:
		return l.Lookup(r.Tiles[0], v)
	case Border:
		return Lerp(l.Lookup(r.Tiles[0], v), l.Lookup(r.Tiles[1], v), r.WX)
	default:
		return Bilerp(
			l.Lookup(r.Tiles[0], v),
			l.Lookup(r.Tiles[1], v),
			l.Lookup(r.Tiles[2], v),
			l.Lookup(r.Tiles[3], v),
			r.WX, r.WY,
		)
	}
}
