package bcn

// BC6H stores HDR endpoints as quantized integers with optional delta
// compression against the base endpoint. Decoding follows the D3D11
// functional spec: extract per-mode fields, sign-extend, apply the
// inverse delta transform, unquantize, interpolate, then map the result
// onto the half-float range.

func extendSign(v int32, bits uint) int32 {
	return v << (32 - bits) >> (32 - bits)
}

// transformInverse undoes delta compression. With p bits of base
// precision: B = (B + A) & ((1 << p) - 1).
func transformInverse(v, base int32, bits uint, signed bool) int32 {
	v = (v + base) & (1<<bits - 1)
	if signed {
		v = extendSign(v, bits)
	}
	return v
}

func unquantize(v int32, bits uint, signed bool) int32 {
	if !signed {
		switch {
		case bits >= 15:
			return v
		case v == 0:
			return 0
		case v == 1<<bits-1:
			return 0xFFFF
		default:
			return (v<<16 + 0x8000) >> bits
		}
	}

	var sign int32
	if bits < 16 && v < 0 {
		sign = 1
		v = -v
	}
	var unq int32
	switch {
	case v == 0:
		unq = 0
	case v >= 1<<(bits-1)-1:
		unq = 0x7FFF
	default:
		unq = (v<<15 + 0x4000) >> (bits - 1)
	}
	if sign != 0 {
		unq = -unq
	}
	return unq
}

// finishUnquantize rescales an interpolated value onto half-float bits.
// Unsigned magnitudes scale by 31/64, signed by 31/32 with a sign bit.
func finishUnquantize(v int32, signed bool) uint16 {
	if !signed {
		return uint16(v * 31 >> 6)
	}
	if v < 0 {
		v = -(-v * 31 >> 5)
	} else {
		v = v * 31 >> 5
	}
	var s int32
	if v < 0 {
		s = 0x8000
		v = -v
	}
	return uint16(s | v)
}

func interpolateI32(a, b, weight int32) int32 {
	return (a*(64-weight) + b*weight + 32) >> 6
}

// decodeBC6HHalf decodes a 16-byte block into 16 RGB half-float pixel
// values. Reserved mode patterns return ErrInvalidBlockMode with dst
// left zeroed.
func decodeBC6HHalf(block []byte, dst *[48]uint16, signed bool) error {
	bs := newBitReader(block)

	var r, g, b [4]int32

	ib := func(n uint) int32 { return int32(bs.bits(n)) }
	ibr := func(n uint) int32 { return int32(bs.bitsReversed(n)) }

	rawMode := bs.bits(2)
	if rawMode > 1 {
		rawMode |= bs.bits(3) << 2
	}

	var mode int
	var partition int32

	switch rawMode {
	case 0b00:
		// 10.555 with deltas, two partitions.
		g[2] |= ib(1) << 4
		b[2] |= ib(1) << 4
		b[3] |= ib(1) << 4
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(5)
		g[3] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(5)
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(5)
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(5)
		b[3] |= ib(1) << 2
		r[3] |= ib(5)
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 0
	case 0b01:
		// 7666 with deltas, two partitions.
		g[2] |= ib(1) << 5
		g[3] |= ib(1) << 4
		g[3] |= ib(1) << 5
		r[0] |= ib(7)
		b[3] |= ib(1)
		b[3] |= ib(1) << 1
		b[2] |= ib(1) << 4
		g[0] |= ib(7)
		b[2] |= ib(1) << 5
		b[3] |= ib(1) << 2
		g[2] |= ib(1) << 4
		b[0] |= ib(7)
		b[3] |= ib(1) << 3
		b[3] |= ib(1) << 5
		b[3] |= ib(1) << 4
		r[1] |= ib(6)
		g[2] |= ib(4)
		g[1] |= ib(6)
		g[3] |= ib(4)
		b[1] |= ib(6)
		b[2] |= ib(4)
		r[2] |= ib(6)
		r[3] |= ib(6)
		partition = ib(5)
		mode = 1
	case 0b00010:
		// 11.555, 11.444, 11.444
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(5)
		r[0] |= ib(1) << 10
		g[2] |= ib(4)
		g[1] |= ib(4)
		g[0] |= ib(1) << 10
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(4)
		b[0] |= ib(1) << 10
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(5)
		b[3] |= ib(1) << 2
		r[3] |= ib(5)
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 2
	case 0b00110:
		// 11.444, 11.555, 11.444
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(4)
		r[0] |= ib(1) << 10
		g[3] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(5)
		g[0] |= ib(1) << 10
		g[3] |= ib(4)
		b[1] |= ib(4)
		b[0] |= ib(1) << 10
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(4)
		b[3] |= ib(1)
		b[3] |= ib(1) << 2
		r[3] |= ib(4)
		g[2] |= ib(1) << 4
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 3
	case 0b01010:
		// 11.444, 11.444, 11.555
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(4)
		r[0] |= ib(1) << 10
		b[2] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(4)
		g[0] |= ib(1) << 10
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(5)
		b[0] |= ib(1) << 10
		b[2] |= ib(4)
		r[2] |= ib(4)
		b[3] |= ib(1) << 1
		b[3] |= ib(1) << 2
		r[3] |= ib(4)
		b[3] |= ib(1) << 4
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 4
	case 0b01110:
		// 9555 with deltas.
		r[0] |= ib(9)
		b[2] |= ib(1) << 4
		g[0] |= ib(9)
		g[2] |= ib(1) << 4
		b[0] |= ib(9)
		b[3] |= ib(1) << 4
		r[1] |= ib(5)
		g[3] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(5)
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(5)
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(5)
		b[3] |= ib(1) << 2
		r[3] |= ib(5)
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 5
	case 0b10010:
		// 8666, 8555, 8555
		r[0] |= ib(8)
		g[3] |= ib(1) << 4
		b[2] |= ib(1) << 4
		g[0] |= ib(8)
		b[3] |= ib(1) << 2
		g[2] |= ib(1) << 4
		b[0] |= ib(8)
		b[3] |= ib(1) << 3
		b[3] |= ib(1) << 4
		r[1] |= ib(6)
		g[2] |= ib(4)
		g[1] |= ib(5)
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(5)
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(6)
		r[3] |= ib(6)
		partition = ib(5)
		mode = 6
	case 0b10110:
		// 8555, 8666, 8555
		r[0] |= ib(8)
		b[3] |= ib(1)
		b[2] |= ib(1) << 4
		g[0] |= ib(8)
		g[2] |= ib(1) << 5
		g[2] |= ib(1) << 4
		b[0] |= ib(8)
		g[3] |= ib(1) << 5
		b[3] |= ib(1) << 4
		r[1] |= ib(5)
		g[3] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(6)
		g[3] |= ib(4)
		b[1] |= ib(5)
		b[3] |= ib(1) << 1
		b[2] |= ib(4)
		r[2] |= ib(5)
		b[3] |= ib(1) << 2
		r[3] |= ib(5)
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 7
	case 0b11010:
		// 8555, 8555, 8666
		r[0] |= ib(8)
		b[3] |= ib(1) << 1
		b[2] |= ib(1) << 4
		g[0] |= ib(8)
		b[2] |= ib(1) << 5
		g[2] |= ib(1) << 4
		b[0] |= ib(8)
		b[3] |= ib(1) << 5
		b[3] |= ib(1) << 4
		r[1] |= ib(5)
		g[3] |= ib(1) << 4
		g[2] |= ib(4)
		g[1] |= ib(5)
		b[3] |= ib(1)
		g[3] |= ib(4)
		b[1] |= ib(6)
		b[2] |= ib(4)
		r[2] |= ib(5)
		b[3] |= ib(1) << 2
		r[3] |= ib(5)
		b[3] |= ib(1) << 3
		partition = ib(5)
		mode = 8
	case 0b11110:
		// 6666, no delta compression.
		r[0] |= ib(6)
		g[3] |= ib(1) << 4
		b[3] |= ib(1)
		b[3] |= ib(1) << 1
		b[2] |= ib(1) << 4
		g[0] |= ib(6)
		g[2] |= ib(1) << 5
		b[2] |= ib(1) << 5
		b[3] |= ib(1) << 2
		g[2] |= ib(1) << 4
		b[0] |= ib(6)
		g[3] |= ib(1) << 5
		b[3] |= ib(1) << 3
		b[3] |= ib(1) << 5
		b[3] |= ib(1) << 4
		r[1] |= ib(6)
		g[2] |= ib(4)
		g[1] |= ib(6)
		g[3] |= ib(4)
		b[1] |= ib(6)
		b[2] |= ib(4)
		r[2] |= ib(6)
		r[3] |= ib(6)
		partition = ib(5)
		mode = 9
	case 0b00011:
		// 10.10 explicit endpoints, one partition.
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(10)
		g[1] |= ib(10)
		b[1] |= ib(10)
		mode = 10
	case 0b00111:
		// 11.9
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(9)
		r[0] |= ib(1) << 10
		g[1] |= ib(9)
		g[0] |= ib(1) << 10
		b[1] |= ib(9)
		b[0] |= ib(1) << 10
		mode = 11
	case 0b01011:
		// 12.8, base high bits stored reversed.
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(8)
		r[0] |= ibr(2) << 10
		g[1] |= ib(8)
		g[0] |= ibr(2) << 10
		b[1] |= ib(8)
		b[0] |= ibr(2) << 10
		mode = 12
	case 0b01111:
		// 16.4, base high bits stored reversed.
		r[0] |= ib(10)
		g[0] |= ib(10)
		b[0] |= ib(10)
		r[1] |= ib(4)
		r[0] |= ibr(6) << 10
		g[1] |= ib(4)
		g[0] |= ibr(6) << 10
		b[1] |= ib(4)
		b[0] |= ibr(6) << 10
		mode = 13
	default:
		// Patterns 10011, 10111, 11011 and 11111 are reserved.
		return newError(ErrInvalidBlockMode, "bc6h: reserved block mode")
	}

	numPartitions := 1
	if mode >= 10 {
		numPartitions = 0
	}

	baseBits := bc6hBits[0][mode]
	if signed {
		r[0] = extendSign(r[0], baseBits)
		g[0] = extendSign(g[0], baseBits)
		b[0] = extendSign(b[0], baseBits)
	}

	// Modes 10 and 11 store both endpoints explicitly; their non-base
	// fields only need sign extension for signed data.
	if mode != 9 && mode != 10 || signed {
		for i := 1; i < (numPartitions+1)*2; i++ {
			r[i] = extendSign(r[i], bc6hBits[1][mode])
			g[i] = extendSign(g[i], bc6hBits[2][mode])
			b[i] = extendSign(b[i], bc6hBits[3][mode])
		}
	}
	if mode != 9 && mode != 10 {
		for i := 1; i < (numPartitions+1)*2; i++ {
			r[i] = transformInverse(r[i], r[0], baseBits, signed)
			g[i] = transformInverse(g[i], g[0], baseBits, signed)
			b[i] = transformInverse(b[i], b[0], baseBits, signed)
		}
	}

	for i := 0; i < (numPartitions+1)*2; i++ {
		r[i] = unquantize(r[i], baseBits, signed)
		g[i] = unquantize(g[i], baseBits, signed)
		b[i] = unquantize(b[i], baseBits, signed)
	}

	for i := 0; i < blockHeight; i++ {
		for j := 0; j < blockWidth; j++ {
			var partitionSet int
			if mode >= 10 {
				if i|j == 0 {
					partitionSet = 128
				}
			} else {
				partitionSet = int(partitions2[partition][i*4+j])
			}

			indexBits := uint(3)
			if mode >= 10 {
				indexBits = 4
			}
			// Anchor indices drop their MSB.
			if partitionSet&0x80 != 0 {
				indexBits--
			}
			partitionSet &= 0x01

			index := bs.bits(indexBits)
			var weight int32
			if mode >= 10 {
				weight = int32(weights4[index])
			} else {
				weight = int32(weights3[index])
			}

			ep := partitionSet * 2
			out := (i*blockWidth + j) * 3
			dst[out+0] = finishUnquantize(interpolateI32(r[ep], r[ep+1], weight), signed)
			dst[out+1] = finishUnquantize(interpolateI32(g[ep], g[ep+1], weight), signed)
			dst[out+2] = finishUnquantize(interpolateI32(b[ep], b[ep+1], weight), signed)
		}
	}
	return nil
}

// decodeBC6H decodes a 16-byte block to a float tile with opaque alpha.
func decodeBC6H(block []byte, dst *TileRGBAF32, signed bool) error {
	var half [48]uint16
	if err := decodeBC6HHalf(block, &half, signed); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		dst[i*4+0] = halfToFloat(half[i*3+0])
		dst[i*4+1] = halfToFloat(half[i*3+1])
		dst[i*4+2] = halfToFloat(half[i*3+2])
		dst[i*4+3] = 1
	}
	return nil
}
