package bcn

import "encoding/binary"

// decodeColorBlock expands the 8-byte BC1-style color portion into dst.
//
// The integer expansion and interpolation constants reproduce the D3D
// reference rasterizer rounding exactly; replacing them with float
// interpolation introduces off-by-one channel differences.
func decodeColorBlock(block []byte, dst *TileRGBA8, onlyOpaqueMode bool) {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])

	r0 := uint32(c0>>11) & 0x1F
	g0 := uint32(c0>>5) & 0x3F
	b0 := uint32(c0) & 0x1F

	r1 := uint32(c1>>11) & 0x1F
	g1 := uint32(c1>>5) & 0x3F
	b1 := uint32(c1) & 0x1F

	var ref [4][4]uint8

	// Expand 565 endpoints to 888.
	ref[0] = [4]uint8{
		uint8((r0*527 + 23) >> 6),
		uint8((g0*259 + 33) >> 6),
		uint8((b0*527 + 23) >> 6),
		255,
	}
	ref[1] = [4]uint8{
		uint8((r1*527 + 23) >> 6),
		uint8((g1*259 + 33) >> 6),
		uint8((b1*527 + 23) >> 6),
		255,
	}

	if c0 > c1 || onlyOpaqueMode {
		// Four-color mode. BC2/BC3 color blocks use only this mode.
		ref[2] = [4]uint8{
			uint8(((2*r0 + r1) * 351 + 61) >> 7),
			uint8(((2*g0 + g1) * 2763 + 1039) >> 11),
			uint8(((2*b0 + b1) * 351 + 61) >> 7),
			255,
		}
		ref[3] = [4]uint8{
			uint8(((r0 + 2*r1) * 351 + 61) >> 7),
			uint8(((g0 + 2*g1) * 2763 + 1039) >> 11),
			uint8(((b0 + 2*b1) * 351 + 61) >> 7),
			255,
		}
	} else {
		// Three-color mode with punch-through alpha at index 3.
		ref[2] = [4]uint8{
			uint8(((r0 + r1) * 1053 + 125) >> 8),
			uint8(((g0 + g1) * 4145 + 1019) >> 11),
			uint8(((b0 + b1) * 1053 + 125) >> 8),
			255,
		}
		ref[3] = [4]uint8{}
	}

	indices := binary.LittleEndian.Uint32(block[4:8])
	for i := 0; i < 16; i++ {
		copy(dst[i*4:i*4+4], ref[indices&0x03][:])
		indices >>= 2
	}
}

// decodeSharpAlpha overwrites dst's alpha channel with BC2's explicit
// 4-bit alpha values, expanded to 8 bits by replication.
func decodeSharpAlpha(block []byte, dst *TileRGBA8) {
	for y := 0; y < blockHeight; y++ {
		row := binary.LittleEndian.Uint16(block[y*2 : y*2+2])
		for x := 0; x < blockWidth; x++ {
			dst[(y*blockWidth+x)*4+3] = uint8(row>>(4*x)&0x0F) * 17
		}
	}
}

// decodeSmoothAlpha writes a BC3/BC4-style interpolated alpha block into
// dst at the given channel offset and pixel stride.
func decodeSmoothAlpha(block []byte, dst []uint8, offset, pixelSize int) {
	var alpha [8]uint32
	alpha[0] = uint32(block[0])
	alpha[1] = uint32(block[1])

	if alpha[0] > alpha[1] {
		// 6 interpolated values plus both endpoints.
		alpha[2] = (6*alpha[0] + alpha[1] + 1) / 7
		alpha[3] = (5*alpha[0] + 2*alpha[1] + 1) / 7
		alpha[4] = (4*alpha[0] + 3*alpha[1] + 1) / 7
		alpha[5] = (3*alpha[0] + 4*alpha[1] + 1) / 7
		alpha[6] = (2*alpha[0] + 5*alpha[1] + 1) / 7
		alpha[7] = (alpha[0] + 6*alpha[1] + 1) / 7
	} else {
		// 4 interpolated values plus literal 0 and 255.
		alpha[2] = (4*alpha[0] + alpha[1] + 1) / 5
		alpha[3] = (3*alpha[0] + 2*alpha[1] + 1) / 5
		alpha[4] = (2*alpha[0] + 3*alpha[1] + 1) / 5
		alpha[5] = (alpha[0] + 4*alpha[1] + 1) / 5
		alpha[6] = 0x00
		alpha[7] = 0xFF
	}

	indices := binary.LittleEndian.Uint64(block[:8]) >> 16
	for i := 0; i < 16; i++ {
		dst[i*pixelSize+offset] = uint8(alpha[indices&0x07])
		indices >>= 3
	}
}

// decodeBC1 decodes an 8-byte BC1 (DXT1) block.
func decodeBC1(block []byte, dst *TileRGBA8) {
	decodeColorBlock(block, dst, false)
}

// decodeBC2 decodes a 16-byte BC2 (DXT3) block.
func decodeBC2(block []byte, dst *TileRGBA8) {
	decodeColorBlock(block[8:], dst, true)
	decodeSharpAlpha(block, dst)
}

// decodeBC3 decodes a 16-byte BC3 (DXT5) block.
func decodeBC3(block []byte, dst *TileRGBA8) {
	decodeColorBlock(block[8:], dst, true)
	decodeSmoothAlpha(block, dst[:], 3, 4)
}
