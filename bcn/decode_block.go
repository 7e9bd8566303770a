package bcn

// DecodeOptions adjusts block decoding behavior. The zero value gives
// the default behavior.
type DecodeOptions struct {
	// ZeroInvalidBlocks decodes blocks with a reserved BC6H or BC7 mode
	// pattern to all zeroes instead of failing. This matches what GPU
	// hardware is required to produce for such blocks.
	ZeroInvalidBlocks bool

	// BC4ZeroGB leaves the green and blue channels of decoded BC4
	// blocks at zero instead of replicating the red channel.
	BC4ZeroGB bool
}

// DecodeBlockRGBA8 decodes one compressed block into an 8-bit RGBA tile.
//
// block must hold at least Format.BlockSizeInBytes bytes. BC6H blocks
// decode through the float path with channel values clamped to [0, 255].
func DecodeBlockRGBA8(format Format, block []byte, opts *DecodeOptions) (TileRGBA8, error) {
	var o DecodeOptions
	if opts != nil {
		o = *opts
	}

	var tile TileRGBA8
	if !format.IsCompressed() {
		return tile, newError(ErrUnsupportedFormat, "bcn: "+format.String()+" is not a block-compressed format")
	}
	if len(block) < format.BlockSizeInBytes() {
		return tile, newError(ErrNotEnoughData, "bcn: block shorter than "+format.String()+" block size")
	}

	switch format {
	case FormatBC1Unorm, FormatBC1Srgb:
		decodeBC1(block, &tile)
	case FormatBC2Unorm, FormatBC2Srgb:
		decodeBC2(block, &tile)
	case FormatBC3Unorm, FormatBC3Srgb:
		decodeBC3(block, &tile)
	case FormatBC4Unorm:
		decodeBC4(block, &tile, false, o.BC4ZeroGB)
	case FormatBC4Snorm:
		decodeBC4(block, &tile, true, o.BC4ZeroGB)
	case FormatBC5Unorm:
		decodeBC5(block, &tile, false)
	case FormatBC5Snorm:
		decodeBC5(block, &tile, true)
	case FormatBC6HUfloat, FormatBC6HSfloat:
		var f TileRGBAF32
		err := decodeBC6H(block, &f, format == FormatBC6HSfloat)
		if err != nil {
			if o.ZeroInvalidBlocks {
				return TileRGBA8{}, nil
			}
			return tile, err
		}
		tile = f.toRGBA8()
	case FormatBC7Unorm, FormatBC7Srgb:
		if err := decodeBC7(block, &tile); err != nil {
			if o.ZeroInvalidBlocks {
				return TileRGBA8{}, nil
			}
			return tile, err
		}
	}
	return tile, nil
}

// DecodeBlockRGBAF32 decodes one compressed block into a float RGBA
// tile. BC6H decodes natively to float; the LDR formats decode to 8-bit
// and widen.
func DecodeBlockRGBAF32(format Format, block []byte, opts *DecodeOptions) (TileRGBAF32, error) {
	var o DecodeOptions
	if opts != nil {
		o = *opts
	}

	var tile TileRGBAF32
	if !format.IsCompressed() {
		return tile, newError(ErrUnsupportedFormat, "bcn: "+format.String()+" is not a block-compressed format")
	}
	if len(block) < format.BlockSizeInBytes() {
		return tile, newError(ErrNotEnoughData, "bcn: block shorter than "+format.String()+" block size")
	}

	switch format {
	case FormatBC4Unorm:
		decodeBC4F32(block, &tile, false, o.BC4ZeroGB)
	case FormatBC4Snorm:
		decodeBC4F32(block, &tile, true, o.BC4ZeroGB)
	case FormatBC5Unorm:
		decodeBC5F32(block, &tile, false)
	case FormatBC5Snorm:
		decodeBC5F32(block, &tile, true)
	case FormatBC6HUfloat, FormatBC6HSfloat:
		if err := decodeBC6H(block, &tile, format == FormatBC6HSfloat); err != nil {
			if o.ZeroInvalidBlocks {
				return TileRGBAF32{}, nil
			}
			return TileRGBAF32{}, err
		}
	default:
		t8, err := DecodeBlockRGBA8(format, block, opts)
		if err != nil {
			return tile, err
		}
		tile = t8.toF32()
	}
	return tile, nil
}
