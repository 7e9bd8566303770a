package bcn

// decodeBC7 decodes a 16-byte block. The mode is the position of the
// first set bit; a zero mode byte is a reserved encoding and returns
// ErrInvalidBlockMode with dst left zeroed.
func decodeBC7(block []byte, dst *TileRGBA8) error {
	bs := newBitReader(block)

	mode := 0
	for mode < 8 && bs.bit() == 0 {
		mode++
	}
	if mode >= 8 {
		return newError(ErrInvalidBlockMode, "bc7: reserved block mode")
	}

	var partition uint32
	numPartitions := 1
	var rotation uint32
	var indexSelection uint32

	switch mode {
	case 0, 2:
		numPartitions = 3
	case 1, 3, 7:
		numPartitions = 2
	}
	if numPartitions > 1 {
		if mode == 0 {
			partition = bs.bits(4)
		} else {
			partition = bs.bits(6)
		}
	}
	if mode == 4 || mode == 5 {
		rotation = bs.bits(2)
		if mode == 4 {
			indexSelection = bs.bit()
		}
	}

	numEndpoints := numPartitions * 2

	var endpoints [6][4]uint32

	colorBits := bc7Bits[0][mode]
	alphaBits := bc7Bits[1][mode]

	for c := 0; c < 3; c++ {
		for e := 0; e < numEndpoints; e++ {
			endpoints[e][c] = bs.bits(colorBits)
		}
	}
	if alphaBits > 0 {
		for e := 0; e < numEndpoints; e++ {
			endpoints[e][3] = bs.bits(alphaBits)
		}
	}

	// p-bits extend every component by one low bit.
	if mode == 0 || mode == 1 || mode == 3 || mode == 6 || mode == 7 {
		for e := 0; e < numEndpoints; e++ {
			for c := 0; c < 4; c++ {
				endpoints[e][c] <<= 1
			}
		}
		if mode == 1 {
			// One shared p-bit per subset.
			p0 := bs.bit()
			p1 := bs.bit()
			for c := 0; c < 3; c++ {
				endpoints[0][c] |= p0
				endpoints[1][c] |= p0
				endpoints[2][c] |= p1
				endpoints[3][c] |= p1
			}
		} else if bc7ModeHasPBits>>mode&1 != 0 {
			for e := 0; e < numEndpoints; e++ {
				p := bs.bit()
				for c := 0; c < 4; c++ {
					endpoints[e][c] |= p
				}
			}
		}
	}

	// Widen each component to 8 bits by MSB replication. The p-bit
	// counts toward stored precision.
	pb := uint(bc7ModeHasPBits >> mode & 1)
	cb := colorBits + pb
	ab := alphaBits + pb
	for e := 0; e < numEndpoints; e++ {
		for c := 0; c < 3; c++ {
			endpoints[e][c] <<= 8 - cb
			endpoints[e][c] |= endpoints[e][c] >> cb
		}
		endpoints[e][3] <<= 8 - ab
		endpoints[e][3] |= endpoints[e][3] >> ab
	}

	if alphaBits == 0 {
		for e := 0; e < numEndpoints; e++ {
			endpoints[e][3] = 0xFF
		}
	}

	indexBits := uint(2)
	switch mode {
	case 0, 1:
		indexBits = 3
	case 6:
		indexBits = 4
	}
	var indexBits2 uint
	switch mode {
	case 4:
		indexBits2 = 3
	case 5:
		indexBits2 = 2
	}

	weightsFor := func(bits uint) []uint32 {
		switch bits {
		case 2:
			return weights2[:]
		case 3:
			return weights3[:]
		default:
			return weights4[:]
		}
	}
	weights := weightsFor(indexBits)
	var weightsAlt []uint32
	if indexBits2 != 0 {
		weightsAlt = weightsFor(indexBits2)
	}

	partitionAt := func(i, j int) int {
		if numPartitions == 1 {
			if i|j == 0 {
				return 128
			}
			return 0
		}
		return int(partitions2[partition][i*4+j])
	}
	if numPartitions == 3 {
		partitionAt = func(i, j int) int {
			return int(partitions3[partition][i*4+j])
		}
	}

	// Primary and secondary index planes are stored back to back, so
	// collect the primary indices before interpolating.
	var indices [16]uint32
	for i := 0; i < blockHeight; i++ {
		for j := 0; j < blockWidth; j++ {
			n := indexBits
			// Anchor indices drop their MSB.
			if partitionAt(i, j)&0x80 != 0 {
				n--
			}
			indices[i*4+j] = bs.bits(n)
		}
	}

	for i := 0; i < blockHeight; i++ {
		for j := 0; j < blockWidth; j++ {
			set := partitionAt(i, j) & 0x03
			weight := weights[indices[i*4+j]]

			var r, g, b, a uint32
			ep := set * 2
			if indexBits2 == 0 {
				r = interpolate(endpoints[ep][0], endpoints[ep+1][0], weight)
				g = interpolate(endpoints[ep][1], endpoints[ep+1][1], weight)
				b = interpolate(endpoints[ep][2], endpoints[ep+1][2], weight)
				a = interpolate(endpoints[ep][3], endpoints[ep+1][3], weight)
			} else {
				n := indexBits2
				if i|j == 0 {
					n--
				}
				weightAlt := weightsAlt[bs.bits(n)]

				// The index selection bit swaps which plane drives
				// color versus alpha.
				cw, aw := weight, weightAlt
				if indexSelection != 0 {
					cw, aw = weightAlt, weight
				}
				r = interpolate(endpoints[ep][0], endpoints[ep+1][0], cw)
				g = interpolate(endpoints[ep][1], endpoints[ep+1][1], cw)
				b = interpolate(endpoints[ep][2], endpoints[ep+1][2], cw)
				a = interpolate(endpoints[ep][3], endpoints[ep+1][3], aw)
			}

			switch rotation {
			case 1:
				a, r = r, a
			case 2:
				a, g = g, a
			case 3:
				a, b = b, a
			}

			out := (i*blockWidth + j) * 4
			dst[out+0] = uint8(r)
			dst[out+1] = uint8(g)
			dst[out+2] = uint8(b)
			dst[out+3] = uint8(a)
		}
	}
	return nil
}

func interpolate(a, b, weight uint32) uint32 {
	return (a*(64-weight) + b*weight + 32) >> 6
}
