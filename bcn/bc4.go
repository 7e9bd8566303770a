package bcn

import "encoding/binary"

// decodeSmoothAlphaSigned is the snorm variant of decodeSmoothAlpha.
// Endpoints are remapped from snorm8 to unorm8 and the ramp is built with
// float interpolation over the snorm magnitudes, which is how GPUs filter
// snorm BC4/BC5 data.
func decodeSmoothAlphaSigned(block []byte, dst []uint8, offset, pixelSize int) {
	alpha := signedAlphaRamp(block[0], block[1])

	indices := binary.LittleEndian.Uint64(block[:8]) >> 16
	for i := 0; i < 16; i++ {
		dst[i*pixelSize+offset] = uint8(alpha[indices&0x07])
		indices >>= 3
	}
}

// signedAlphaRamp builds the eight reconstruction values of a snorm
// block in the unorm domain. The interpolants come from float
// interpolation over the snorm magnitudes.
func signedAlphaRamp(red0, red1 uint8) [8]uint32 {
	var alpha [8]uint32

	alpha[0] = uint32(snorm8ToUnorm8(red0))
	alpha[1] = uint32(snorm8ToUnorm8(red1))

	const conversionFactor = 255.0 / 254.0
	a0 := float32(saturatingDec(red0+128)) * conversionFactor
	a1 := float32(saturatingDec(red1+128)) * conversionFactor

	if alpha[0] > alpha[1] {
		for k := 1; k <= 6; k++ {
			alpha[k+1] = lerpU32(a0, a1, float32(k)/7)
		}
	} else {
		for k := 1; k <= 4; k++ {
			alpha[k+1] = lerpU32(a0, a1, float32(k)/5)
		}
		alpha[6] = 0x00
		alpha[7] = 0xFF
	}
	return alpha
}

// decodeSmoothAlphaFloat builds the interpolated ramp directly in float.
// Unsigned data maps to [0, 1]; snorm data maps to [-1, 1].
func decodeSmoothAlphaFloat(block []byte, dst []float32, offset, pixelSize int, signed bool) {
	var ramp [8]float32
	var e0u, e1u uint32

	if signed {
		e0u = uint32(snorm8ToUnorm8(block[0]))
		e1u = uint32(snorm8ToUnorm8(block[1]))
		ramp[0] = snorm8ToFloat(block[0])
		ramp[1] = snorm8ToFloat(block[1])
	} else {
		e0u = uint32(block[0])
		e1u = uint32(block[1])
		ramp[0] = float32(block[0]) / 255
		ramp[1] = float32(block[1]) / 255
	}

	if e0u > e1u {
		for k := 1; k <= 6; k++ {
			t := float32(k) / 7
			ramp[k+1] = ramp[0]*(1-t) + ramp[1]*t
		}
	} else {
		for k := 1; k <= 4; k++ {
			t := float32(k) / 5
			ramp[k+1] = ramp[0]*(1-t) + ramp[1]*t
		}
		if signed {
			ramp[6] = -1
		} else {
			ramp[6] = 0
		}
		ramp[7] = 1
	}

	indices := binary.LittleEndian.Uint64(block[:8]) >> 16
	for i := 0; i < 16; i++ {
		dst[i*pixelSize+offset] = ramp[indices&0x07]
		indices >>= 3
	}
}

func saturatingDec(x uint8) uint8 {
	if x == 0 {
		return 0
	}
	return x - 1
}

func lerpU32(a, b, t float32) uint32 {
	return uint32(a*(1-t) + b*t + 0.5)
}

// decodeBC4 decodes an 8-byte single-channel block. The decoded value is
// replicated to RGB with opaque alpha unless zeroGB is set, in which case
// green and blue are zero-filled.
func decodeBC4(block []byte, dst *TileRGBA8, signed, zeroGB bool) {
	var r [16]uint8
	if signed {
		decodeSmoothAlphaSigned(block, r[:], 0, 1)
	} else {
		decodeSmoothAlpha(block, r[:], 0, 1)
	}
	for i := 0; i < 16; i++ {
		if zeroGB {
			dst[i*4+0] = r[i]
			dst[i*4+1] = 0
			dst[i*4+2] = 0
		} else {
			dst[i*4+0] = r[i]
			dst[i*4+1] = r[i]
			dst[i*4+2] = r[i]
		}
		dst[i*4+3] = 255
	}
}

// decodeBC4F32 is the float-output variant of decodeBC4.
func decodeBC4F32(block []byte, dst *TileRGBAF32, signed, zeroGB bool) {
	var r [16]float32
	decodeSmoothAlphaFloat(block, r[:], 0, 1, signed)
	for i := 0; i < 16; i++ {
		if zeroGB {
			dst[i*4+0] = r[i]
			dst[i*4+1] = 0
			dst[i*4+2] = 0
		} else {
			dst[i*4+0] = r[i]
			dst[i*4+1] = r[i]
			dst[i*4+2] = r[i]
		}
		dst[i*4+3] = 1
	}
}

// decodeBC5 decodes a 16-byte two-channel block into red and green.
// Blue is zeroed (mid-gray for snorm data) and alpha is opaque.
func decodeBC5(block []byte, dst *TileRGBA8, signed bool) {
	var rg [32]uint8
	if signed {
		decodeSmoothAlphaSigned(block[:8], rg[:], 0, 2)
		decodeSmoothAlphaSigned(block[8:], rg[:], 1, 2)
	} else {
		decodeSmoothAlpha(block[:8], rg[:], 0, 2)
		decodeSmoothAlpha(block[8:], rg[:], 1, 2)
	}
	blue := uint8(0)
	if signed {
		blue = snorm8ToUnorm8(0)
	}
	for i := 0; i < 16; i++ {
		dst[i*4+0] = rg[i*2+0]
		dst[i*4+1] = rg[i*2+1]
		dst[i*4+2] = blue
		dst[i*4+3] = 255
	}
}

// decodeBC5F32 is the float-output variant of decodeBC5.
func decodeBC5F32(block []byte, dst *TileRGBAF32, signed bool) {
	var rg [32]float32
	decodeSmoothAlphaFloat(block[:8], rg[:], 0, 2, signed)
	decodeSmoothAlphaFloat(block[8:], rg[:], 1, 2, signed)
	var blue float32
	if signed {
		blue = 0.5
	}
	for i := 0; i < 16; i++ {
		dst[i*4+0] = rg[i*2+0]
		dst[i*4+1] = rg[i*2+1]
		dst[i*4+2] = blue
		dst[i*4+3] = 1
	}
}
