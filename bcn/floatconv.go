package bcn

import "math"

// halfToFloat converts IEEE 754 binary16 bits to float32, preserving
// denormals, infinities and NaN payload class.
//
// Branch structure follows half_to_float_fast4 (rygorous).
func halfToFloat(h uint16) float32 {
	const shiftedExp = uint32(0x7C00) << 13
	magic := math.Float32frombits(113 << 23)

	o := (uint32(h) & 0x7FFF) << 13
	exp := shiftedExp & o
	o += (127 - 15) << 23

	if exp == shiftedExp {
		// Inf or NaN.
		o += (128 - 16) << 23
	} else if exp == 0 {
		// Zero or denormal, renormalize through a float subtract.
		o += 1 << 23
		o = math.Float32bits(math.Float32frombits(o) - magic)
	}

	o |= (uint32(h) & 0x8000) << 16
	return math.Float32frombits(o)
}

// floatToHalf converts float32 to binary16 bits with round to nearest
// even. Values beyond the half range become infinity.
func floatToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23&0xFF) - 127
	mant := bits & 0x7FFFFF

	switch {
	case exp == 128:
		// Inf or NaN.
		if mant != 0 {
			return sign | 0x7E00
		}
		return sign | 0x7C00
	case exp > 15:
		return sign | 0x7C00
	case exp >= -14:
		// Normal range. Round the 23-bit mantissa to 10 bits.
		h := uint32(exp+15)<<10 | mant>>13
		rem := mant & 0x1FFF
		if rem > 0x1000 || (rem == 0x1000 && h&1 != 0) {
			h++
		}
		return sign | uint16(h)
	case exp >= -24:
		// Denormal range, drop -exp-1 mantissa bits with round to
		// nearest even.
		mant |= 1 << 23
		shift := uint(-exp - 1)
		h := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && h&1 != 0) {
			h++
		}
		return sign | uint16(h)
	}
	return sign
}

// snorm8ToUnorm8 remaps a two's complement snorm8 byte onto [0, 255]
// with correct rounding for every input.
func snorm8ToUnorm8(x uint8) uint8 {
	switch {
	case x < 128:
		return x + 128
	case x == 128:
		return 0
	default:
		return x - 129
	}
}

// unorm8ToSnorm8 is the inverse of snorm8ToUnorm8.
func unorm8ToSnorm8(x uint8) uint8 {
	switch {
	case x >= 128:
		return x - 128
	case x == 127:
		return 0
	default:
		return x + 129
	}
}

func snorm8ToFloat(x uint8) float32 {
	f := float32(int8(x)) / 127
	if f < -1 {
		return -1
	}
	return f
}

func floatToSnorm8(x float32) uint8 {
	return uint8(int8(roundF32(clampF32(x, -1, 1) * 127)))
}

func snorm16ToFloat(x uint16) float32 {
	f := float32(int16(x)) / 32767
	if f < -1 {
		return -1
	}
	return f
}

func floatToSnorm16(x float32) uint16 {
	return uint16(int16(roundF32(clampF32(x, -1, 1) * 32767)))
}

// Unorm width changes use the exact integer forms of round(x*hi/lo).
func unorm4ToUnorm8(x uint8) uint8 {
	return x * 17
}

func unorm8ToUnorm4(x uint8) uint8 {
	return uint8((uint16(x)*15 + 135) >> 8)
}

func unorm16ToUnorm8(x uint16) uint8 {
	return uint8((uint32(x)*255 + 32895) >> 16)
}

func unorm8ToUnorm16(x uint8) uint16 {
	return uint16(x) * 257
}

func snorm16ToUnorm8(x uint16) uint8 {
	return uint8(roundF32((snorm16ToFloat(x)*0.5 + 0.5) * 255))
}

func unorm8ToSnorm16(x uint8) uint16 {
	return uint16(int16(roundF32((float32(x)/255*2 - 1) * 32767)))
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundF32(v float32) float32 {
	return float32(math.Round(float64(v)))
}
