package bcn

// BlockEncoder compresses single 4x4 tiles. Implementations other than
// ReferenceEncoder can plug in an external compressor for the formats
// where encoding quality is a search problem (BC6H, BC7).
type BlockEncoder interface {
	// EncodeBlockRGBA8 writes one compressed block for format into dst,
	// which must hold at least format.BlockSizeInBytes bytes.
	EncodeBlockRGBA8(format Format, tile *TileRGBA8, dst []byte) error

	// EncodeBlockRGBAF32 is the float-input variant, used for the HDR
	// formats.
	EncodeBlockRGBAF32(format Format, tile *TileRGBAF32, dst []byte) error
}

// ReferenceEncoder is a small, deterministic encoder. It favors
// predictable output over compression quality: single-mode BC6H/BC7
// encodings and per-block min/max endpoints. Decoding its output always
// reproduces solid-color tiles exactly.
type ReferenceEncoder struct{}

var _ BlockEncoder = ReferenceEncoder{}

func (ReferenceEncoder) EncodeBlockRGBA8(format Format, tile *TileRGBA8, dst []byte) error {
	if len(dst) < format.BlockSizeInBytes() {
		return newError(ErrNotEnoughData, "bcn: destination shorter than "+format.String()+" block size")
	}
	switch format {
	case FormatBC1Unorm, FormatBC1Srgb:
		encodeBC1(tile, dst)
	case FormatBC2Unorm, FormatBC2Srgb:
		encodeSharpAlpha(tile, dst)
		encodeColorBlock(tile, dst[8:], true)
	case FormatBC3Unorm, FormatBC3Srgb:
		encodeSmoothAlpha(tile, dst, 3)
		encodeColorBlock(tile, dst[8:], true)
	case FormatBC4Unorm:
		encodeSmoothAlpha(tile, dst, 0)
	case FormatBC4Snorm:
		encodeSmoothAlphaSnorm(tile, dst, 0)
	case FormatBC5Unorm:
		encodeSmoothAlpha(tile, dst, 0)
		encodeSmoothAlpha(tile, dst[8:], 1)
	case FormatBC5Snorm:
		encodeSmoothAlphaSnorm(tile, dst, 0)
		encodeSmoothAlphaSnorm(tile, dst[8:], 1)
	case FormatBC7Unorm, FormatBC7Srgb:
		encodeBC7Mode6(tile, dst)
	case FormatBC6HUfloat, FormatBC6HSfloat:
		f := tile.toF32()
		return ReferenceEncoder{}.EncodeBlockRGBAF32(format, &f, dst)
	default:
		return newError(ErrUnsupportedFormat, "bcn: cannot encode "+format.String())
	}
	return nil
}

func (ReferenceEncoder) EncodeBlockRGBAF32(format Format, tile *TileRGBAF32, dst []byte) error {
	if len(dst) < format.BlockSizeInBytes() {
		return newError(ErrNotEnoughData, "bcn: destination shorter than "+format.String()+" block size")
	}
	switch format {
	case FormatBC6HUfloat:
		encodeBC6HMode11(tile, dst)
		return nil
	case FormatBC6HSfloat:
		return newError(ErrUnsupportedFormat, "bcn: reference encoder does not support signed BC6H")
	}
	t8 := tile.toRGBA8()
	return ReferenceEncoder{}.EncodeBlockRGBA8(format, &t8, dst)
}

// quantize565 maps an 888 color to 565 so that a decode and re-encode
// of the expanded value is stable.
func quantize565(r, g, b uint8) uint16 {
	r5 := (uint16(r)*31 + 127) / 255
	g6 := (uint16(g)*63 + 127) / 255
	b5 := (uint16(b)*31 + 127) / 255
	return r5<<11 | g6<<5 | b5
}

func expand565(c uint16) (r, g, b uint32) {
	r = (uint32(c>>11&0x1F)*527 + 23) >> 6
	g = (uint32(c>>5&0x3F)*259 + 33) >> 6
	b = (uint32(c&0x1F)*527 + 23) >> 6
	return
}

// colorEndpoints picks the brightest and darkest pixels of the tile as
// endpoints, ranked by an integer luminance approximation.
func colorEndpoints(tile *TileRGBA8) (c0, c1 uint16) {
	lum := func(i int) uint32 {
		return 2*uint32(tile[i*4]) + 5*uint32(tile[i*4+1]) + uint32(tile[i*4+2])
	}
	lo, hi := 0, 0
	for i := 1; i < 16; i++ {
		l := lum(i)
		if l < lum(lo) {
			lo = i
		}
		if l > lum(hi) {
			hi = i
		}
	}
	c0 = quantize565(tile[hi*4], tile[hi*4+1], tile[hi*4+2])
	c1 = quantize565(tile[lo*4], tile[lo*4+1], tile[lo*4+2])
	return
}

func colorDistance(r0, g0, b0, r1, g1, b1 uint32) uint32 {
	dr := int32(r0) - int32(r1)
	dg := int32(g0) - int32(g1)
	db := int32(b0) - int32(b1)
	return uint32(dr*dr + dg*dg + db*db)
}

// encodeColorBlock writes the 8-byte color half shared by BC1, BC2 and
// BC3. In opaque mode the endpoint order always selects the four-color
// palette; BC1 proper drops to the three-color punch-through palette
// when any pixel has alpha below 128.
func encodeColorBlock(tile *TileRGBA8, dst []byte, opaque bool) {
	c0, c1 := colorEndpoints(tile)

	transparent := false
	if !opaque {
		for i := 0; i < 16; i++ {
			if tile[i*4+3] < 128 {
				transparent = true
				break
			}
		}
	}

	if transparent != (c0 <= c1) {
		c0, c1 = c1, c0
	}
	// Equal endpoints already select the three-color palette; that is
	// only wrong when punch-through was not requested and the
	// interpolants still match the endpoints, so it decodes the same.

	var palette [4][3]uint32
	palette[0][0], palette[0][1], palette[0][2] = expand565(c0)
	palette[1][0], palette[1][1], palette[1][2] = expand565(c1)

	r0, g0, b0 := uint32(c0>>11&0x1F), uint32(c0>>5&0x3F), uint32(c0&0x1F)
	r1, g1, b1 := uint32(c1>>11&0x1F), uint32(c1>>5&0x3F), uint32(c1&0x1F)
	paletteSize := 4
	if c0 > c1 {
		palette[2] = [3]uint32{
			((2*r0 + r1) * 351 + 61) >> 7,
			((2*g0 + g1) * 2763 + 1039) >> 11,
			((2*b0 + b1) * 351 + 61) >> 7,
		}
		palette[3] = [3]uint32{
			((r0 + 2*r1) * 351 + 61) >> 7,
			((g0 + 2*g1) * 2763 + 1039) >> 11,
			((b0 + 2*b1) * 351 + 61) >> 7,
		}
	} else {
		palette[2] = [3]uint32{
			((r0 + r1) * 1053 + 125) >> 8,
			((g0 + g1) * 4145 + 1019) >> 11,
			((b0 + b1) * 1053 + 125) >> 8,
		}
		paletteSize = 3
	}

	var indices uint32
	for i := 0; i < 16; i++ {
		if transparent && tile[i*4+3] < 128 {
			indices |= 3 << (uint(i) * 2)
			continue
		}
		best, bestD := 0, ^uint32(0)
		for k := 0; k < paletteSize; k++ {
			d := colorDistance(uint32(tile[i*4]), uint32(tile[i*4+1]), uint32(tile[i*4+2]),
				palette[k][0], palette[k][1], palette[k][2])
			if d < bestD {
				best, bestD = k, d
			}
		}
		indices |= uint32(best) << (uint(i) * 2)
	}

	dst[0] = uint8(c0)
	dst[1] = uint8(c0 >> 8)
	dst[2] = uint8(c1)
	dst[3] = uint8(c1 >> 8)
	dst[4] = uint8(indices)
	dst[5] = uint8(indices >> 8)
	dst[6] = uint8(indices >> 16)
	dst[7] = uint8(indices >> 24)
}

func encodeBC1(tile *TileRGBA8, dst []byte) {
	encodeColorBlock(tile, dst, false)
}

// encodeSharpAlpha writes BC2's 4-bit explicit alpha rows.
func encodeSharpAlpha(tile *TileRGBA8, dst []byte) {
	for y := 0; y < blockHeight; y++ {
		var row uint16
		for x := 0; x < blockWidth; x++ {
			row |= uint16(unorm8ToUnorm4(tile[(y*blockWidth+x)*4+3])) << (4 * x)
		}
		dst[y*2] = uint8(row)
		dst[y*2+1] = uint8(row >> 8)
	}
}

// channelMinMax scans one channel of the tile.
func channelMinMax(tile *TileRGBA8, channel int) (lo, hi uint8) {
	lo, hi = tile[channel], tile[channel]
	for i := 1; i < 16; i++ {
		v := tile[i*4+channel]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

// writeSmoothAlpha packs endpoint bytes and indices. Indices pick the
// nearest ramp value in the unorm domain; the caller supplies the ramp
// the decoder will reconstruct.
func writeSmoothAlpha(tile *TileRGBA8, dst []byte, channel int, e0, e1 uint8, ramp *[8]uint32, rampSize int) {
	var indices uint64
	for i := 0; i < 16; i++ {
		v := uint32(tile[i*4+channel])
		best, bestD := 0, uint32(1<<31)
		for k := 0; k < rampSize; k++ {
			d := v - ramp[k]
			if v < ramp[k] {
				d = ramp[k] - v
			}
			if d < bestD {
				best, bestD = k, d
			}
		}
		indices |= uint64(best) << (uint(i) * 3)
	}

	dst[0] = e0
	dst[1] = e1
	v := indices
	for i := 0; i < 6; i++ {
		dst[2+i] = uint8(v)
		v >>= 8
	}
}

// encodeSmoothAlpha writes an 8-byte interpolated block from the given
// channel using min/max endpoints and the eight-value ramp.
func encodeSmoothAlpha(tile *TileRGBA8, dst []byte, channel int) {
	lo, hi := channelMinMax(tile, channel)
	a0, a1 := hi, lo

	var ramp [8]uint32
	ramp[0] = uint32(a0)
	ramp[1] = uint32(a1)
	rampSize := 2
	if a0 > a1 {
		// Same arithmetic the decoder applies.
		for k := 1; k <= 6; k++ {
			ramp[k+1] = (uint32(7-k)*uint32(a0) + uint32(k)*uint32(a1) + 1) / 7
		}
		rampSize = 8
	}
	writeSmoothAlpha(tile, dst, channel, a0, a1, &ramp, rampSize)
}

// encodeSmoothAlphaSnorm is the snorm variant. The tile channel is
// still unorm; the endpoints are stored remapped and indices are picked
// against the decoder's reconstruction ramp.
func encodeSmoothAlphaSnorm(tile *TileRGBA8, dst []byte, channel int) {
	lo, hi := channelMinMax(tile, channel)
	s0, s1 := unorm8ToSnorm8(hi), unorm8ToSnorm8(lo)

	ramp := signedAlphaRamp(s0, s1)
	rampSize := 8
	if ramp[0] <= ramp[1] {
		// Equal endpoints after remapping, the extra ramp entries are
		// the literal extremes and would distort flat blocks.
		rampSize = 2
	}
	writeSmoothAlpha(tile, dst, channel, s0, s1, &ramp, rampSize)
}

// encodeBC7Mode6 writes a single-subset mode 6 block: 7-bit endpoints
// plus a per-endpoint p-bit and 4-bit indices. Endpoints whose RGBA
// components share their low bit are represented exactly.
func encodeBC7Mode6(tile *TileRGBA8, dst []byte) {
	// Per-channel min/max endpoints.
	var e0, e1 [4]uint8
	for c := 0; c < 4; c++ {
		e0[c], e1[c] = tile[c], tile[c]
	}
	for i := 1; i < 16; i++ {
		for c := 0; c < 4; c++ {
			v := tile[i*4+c]
			if v < e0[c] {
				e0[c] = v
			}
			if v > e1[c] {
				e1[c] = v
			}
		}
	}

	// The p-bit supplies the shared low bit of all four components.
	pbit := func(e [4]uint8) uint32 {
		ones := 0
		for _, v := range e {
			ones += int(v & 1)
		}
		if ones >= 2 {
			return 1
		}
		return 0
	}
	p0, p1 := pbit(e0), pbit(e1)

	quant := func(v uint8, p uint32) uint32 {
		q := (uint32(v) + 1 - p) >> 1
		if q > 127 {
			q = 127
		}
		return q
	}
	var q0, q1 [4]uint32
	for c := 0; c < 4; c++ {
		q0[c] = quant(e0[c], p0)
		q1[c] = quant(e1[c], p1)
	}

	// Reconstruct the palette the decoder will see.
	var pal [16][4]uint32
	for k := 0; k < 16; k++ {
		w := weights4[k]
		for c := 0; c < 4; c++ {
			a := q0[c]<<1 | p0
			b := q1[c]<<1 | p1
			pal[k][c] = interpolate(a, b, w)
		}
	}

	var indices [16]int
	for i := 0; i < 16; i++ {
		best, bestD := 0, ^uint32(0)
		for k := 0; k < 16; k++ {
			var d uint32
			for c := 0; c < 4; c++ {
				dc := int32(tile[i*4+c]) - int32(pal[k][c])
				d += uint32(dc * dc)
			}
			if d < bestD {
				best, bestD = k, d
			}
		}
		indices[i] = best
	}

	// The anchor index must fit in 3 bits; swap endpoints and invert
	// the indices when it does not.
	if indices[0] > 7 {
		q0, q1 = q1, q0
		p0, p1 = p1, p0
		for i := range indices {
			indices[i] = 15 - indices[i]
		}
	}

	var w bitWriter
	w.put(1<<6, 7)
	for c := 0; c < 3; c++ {
		w.put(q0[c], 7)
		w.put(q1[c], 7)
	}
	w.put(q0[3], 7)
	w.put(q1[3], 7)
	w.put(p0, 1)
	w.put(p1, 1)
	w.put(uint32(indices[0]), 3)
	for i := 1; i < 16; i++ {
		w.put(uint32(indices[i]), 4)
	}
	copy(dst[:16], w.buf[:])
}

// quantizeBC6HUnsigned finds the 10-bit endpoint whose unquantized
// value lands closest to the target half-float bits. The search space
// is small enough to scan outright.
func quantizeBC6HUnsigned(target uint16) int32 {
	best, bestD := int32(0), int32(1<<30)
	for v := int32(0); v < 1<<10; v++ {
		got := int32(finishUnquantize(unquantize(v, 10, false), false))
		d := got - int32(target)
		if d < 0 {
			d = -d
		}
		if d < bestD {
			best, bestD = v, d
		}
	}
	return best
}

// encodeBC6HMode11 writes a single-partition unsigned block with
// explicit 10-bit endpoints. Negative inputs clamp to zero.
func encodeBC6HMode11(tile *TileRGBAF32, dst []byte) {
	var half [48]uint16
	for i := 0; i < 16; i++ {
		for c := 0; c < 3; c++ {
			v := tile[i*4+c]
			if v < 0 {
				v = 0
			}
			half[i*3+c] = floatToHalf(v)
		}
	}

	// Non-negative half bit patterns sort like their values, so
	// min/max over the bits picks the channel extremes.
	var lo, hi [3]uint16
	for c := 0; c < 3; c++ {
		lo[c], hi[c] = half[c], half[c]
	}
	for i := 1; i < 16; i++ {
		for c := 0; c < 3; c++ {
			v := half[i*3+c]
			if v < lo[c] {
				lo[c] = v
			}
			if v > hi[c] {
				hi[c] = v
			}
		}
	}

	var q0, q1 [3]int32
	for c := 0; c < 3; c++ {
		q0[c] = quantizeBC6HUnsigned(lo[c])
		q1[c] = quantizeBC6HUnsigned(hi[c])
	}

	var pal [16][3]int32
	for k := 0; k < 16; k++ {
		w := int32(weights4[k])
		for c := 0; c < 3; c++ {
			a := unquantize(q0[c], 10, false)
			b := unquantize(q1[c], 10, false)
			pal[k][c] = int32(finishUnquantize(interpolateI32(a, b, w), false))
		}
	}

	var indices [16]int
	for i := 0; i < 16; i++ {
		best, bestD := 0, int64(1<<62)
		for k := 0; k < 16; k++ {
			var d int64
			for c := 0; c < 3; c++ {
				dc := int64(half[i*3+c]) - int64(pal[k][c])
				d += dc * dc
			}
			if d < bestD {
				best, bestD = k, d
			}
		}
		indices[i] = best
	}

	if indices[0] > 7 {
		q0, q1 = q1, q0
		for i := range indices {
			indices[i] = 15 - indices[i]
		}
	}

	var w bitWriter
	w.put(0b00011, 5)
	for c := 0; c < 3; c++ {
		w.put(uint32(q0[c]), 10)
	}
	for c := 0; c < 3; c++ {
		w.put(uint32(q1[c]), 10)
	}
	w.put(uint32(indices[0]), 3)
	for i := 1; i < 16; i++ {
		w.put(uint32(indices[i]), 4)
	}
	copy(dst[:16], w.buf[:])
}
