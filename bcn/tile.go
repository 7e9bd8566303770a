package bcn

// TileRGBA8 is a decoded 4x4 pixel tile with 8-bit RGBA channels in
// row-major order: pixel (x, y) starts at index (y*4+x)*4.
type TileRGBA8 [64]uint8

// TileRGBAF32 is a decoded 4x4 pixel tile with float32 RGBA channels in
// row-major order: pixel (x, y) starts at index (y*4+x)*4.
type TileRGBAF32 [64]float32

// At returns the RGBA channels of pixel (x, y).
func (t *TileRGBA8) At(x, y int) (r, g, b, a uint8) {
	i := (y*blockWidth + x) * 4
	return t[i], t[i+1], t[i+2], t[i+3]
}

// At returns the RGBA channels of pixel (x, y).
func (t *TileRGBAF32) At(x, y int) (r, g, b, a float32) {
	i := (y*blockWidth + x) * 4
	return t[i], t[i+1], t[i+2], t[i+3]
}

// toF32 widens an 8-bit tile to the float tile representation.
func (t *TileRGBA8) toF32() TileRGBAF32 {
	var out TileRGBAF32
	for i, v := range t {
		out[i] = float32(v) / 255
	}
	return out
}

// toRGBA8 narrows a float tile, clamping to [0, 255] with truncation to
// match the reference decoder's float-to-byte behavior.
func (t *TileRGBAF32) toRGBA8() TileRGBA8 {
	var out TileRGBA8
	for i, v := range t {
		out[i] = clampU8(v * 255)
	}
	return out
}

func clampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
