package bcn

import "fmt"

// Quality selects the effort level of a pluggable block encoder.
// ReferenceEncoder produces the same output at every level.
type Quality int

const (
	QualityFast Quality = iota
	QualityNormal
	QualitySlow
)

// MipmapMode controls which mip levels an encoded surface gets.
type MipmapMode int

const (
	// MipmapsDisabled encodes only the base level.
	MipmapsDisabled MipmapMode = iota

	// MipmapsFromSurface encodes the mip levels present in the input.
	MipmapsFromSurface

	// MipmapsGeneratedExact generates EncodeOptions.MipmapCount levels
	// by repeated downsampling of the base level.
	MipmapsGeneratedExact

	// MipmapsGeneratedAutomatic generates the full mip chain.
	MipmapsGeneratedAutomatic
)

// EncodeOptions adjusts surface encoding. The zero value encodes only
// the base level with the reference encoder.
type EncodeOptions struct {
	Quality Quality
	Mipmaps MipmapMode

	// MipmapCount is the level count for MipmapsGeneratedExact.
	MipmapCount int

	// Encoder overrides the block compressor. Defaults to
	// ReferenceEncoder.
	Encoder BlockEncoder
}

func (o *EncodeOptions) encoder() BlockEncoder {
	if o.Encoder != nil {
		return o.Encoder
	}
	return ReferenceEncoder{}
}

// EncodeSurfaceRGBA8 compresses 8-bit RGBA pixel data into a surface of
// the given format, generating mip levels as requested.
func EncodeSurfaceRGBA8(src *SurfaceRGBA8, format Format, opts *EncodeOptions) (*Surface, error) {
	var o EncodeOptions
	if opts != nil {
		o = *opts
	}
	numMipmaps, err := validateEncode(src.Width, src.Height, src.Depth, src.Layers, src.Mipmaps,
		len(src.Data)/4, format, &o)
	if err != nil {
		return nil, err
	}

	out := &Surface{
		Width:   src.Width,
		Height:  src.Height,
		Depth:   src.Depth,
		Layers:  src.Layers,
		Mipmaps: numMipmaps,
		Format:  format,
	}
	for layer := 0; layer < src.Layers; layer++ {
		if err := encodeMipChainRGBA8(out, src, layer, &o); err != nil {
			return nil, err
		}
	}
	return out, out.Validate()
}

// EncodeSurfaceRGBAF32 compresses float RGBA pixel data. BC6H encodes
// from the float values directly; LDR formats narrow through 8 bits.
func EncodeSurfaceRGBAF32(src *SurfaceRGBAF32, format Format, opts *EncodeOptions) (*Surface, error) {
	var o EncodeOptions
	if opts != nil {
		o = *opts
	}
	numMipmaps, err := validateEncode(src.Width, src.Height, src.Depth, src.Layers, src.Mipmaps,
		len(src.Data)/4, format, &o)
	if err != nil {
		return nil, err
	}

	out := &Surface{
		Width:   src.Width,
		Height:  src.Height,
		Depth:   src.Depth,
		Layers:  src.Layers,
		Mipmaps: numMipmaps,
		Format:  format,
	}
	for layer := 0; layer < src.Layers; layer++ {
		if err := encodeMipChainRGBAF32(out, src, layer, &o); err != nil {
			return nil, err
		}
	}
	return out, out.Validate()
}

func validateEncode(width, height, depth, layers, srcMipmaps, srcPixels int, format Format, o *EncodeOptions) (int, error) {
	if width <= 0 || height <= 0 || depth <= 0 || layers < 1 || srcMipmaps < 1 {
		return 0, newError(ErrInvalidDimensions,
			fmt.Sprintf("bcn: cannot encode %dx%dx%d surface with %d layers and %d mipmaps",
				width, height, depth, layers, srcMipmaps))
	}
	if format.BlockSizeInBytes() == 0 {
		return 0, newError(ErrUnsupportedFormat, "bcn: cannot encode "+format.String())
	}

	maxMips := MaxMipmapCount(max(width, height, depth))
	numMipmaps := 1
	switch o.Mipmaps {
	case MipmapsDisabled:
	case MipmapsFromSurface:
		numMipmaps = srcMipmaps
	case MipmapsGeneratedExact:
		numMipmaps = o.MipmapCount
		if numMipmaps < 1 {
			numMipmaps = 1
		}
	case MipmapsGeneratedAutomatic:
		numMipmaps = maxMips
	}
	if numMipmaps > maxMips {
		return 0, newError(ErrTooManyMipmaps,
			fmt.Sprintf("bcn: %d mipmaps but surface supports at most %d", numMipmaps, maxMips))
	}

	need := 0
	for l := 0; l < layers; l++ {
		for m := 0; m < srcMipmaps; m++ {
			need += MipDimension(width, m) * MipDimension(height, m) * MipDimension(depth, m)
		}
	}
	if srcPixels < need {
		return 0, newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: input holds %d pixels, layout needs %d", srcPixels, need))
	}
	return numMipmaps, nil
}

func encodeMipChainRGBA8(out *Surface, src *SurfaceRGBA8, layer int, o *EncodeOptions) error {
	useSurface := o.Mipmaps == MipmapsFromSurface

	mipData, err := src.Get(layer, 0)
	if err != nil {
		return err
	}
	w, h, d := src.Width, src.Height, src.Depth

	for m := 0; m < out.Mipmaps; m++ {
		if m > 0 {
			mw := MipDimension(src.Width, m)
			mh := MipDimension(src.Height, m)
			md := MipDimension(src.Depth, m)
			if useSurface {
				mipData, err = src.Get(layer, m)
				if err != nil {
					return err
				}
			} else {
				mipData = downsampleRGBA8(mw, mh, md, w, h, d, mipData)
			}
			w, h, d = mw, mh, md
		}
		encoded, err := encodeLevelRGBA8(out.Format, mipData, w, h, d, o)
		if err != nil {
			return err
		}
		out.Data = append(out.Data, encoded...)
	}
	return nil
}

func encodeMipChainRGBAF32(out *Surface, src *SurfaceRGBAF32, layer int, o *EncodeOptions) error {
	useSurface := o.Mipmaps == MipmapsFromSurface

	mipData, err := src.Get(layer, 0)
	if err != nil {
		return err
	}
	w, h, d := src.Width, src.Height, src.Depth

	for m := 0; m < out.Mipmaps; m++ {
		if m > 0 {
			mw := MipDimension(src.Width, m)
			mh := MipDimension(src.Height, m)
			md := MipDimension(src.Depth, m)
			if useSurface {
				mipData, err = src.Get(layer, m)
				if err != nil {
					return err
				}
			} else {
				mipData = downsampleRGBAF32(mw, mh, md, w, h, d, mipData)
			}
			w, h, d = mw, mh, md
		}
		encoded, err := encodeLevelRGBAF32(out.Format, mipData, w, h, d, o)
		if err != nil {
			return err
		}
		out.Data = append(out.Data, encoded...)
	}
	return nil
}

// encodeLevelRGBA8 compresses one mip level. Partial edge blocks
// replicate their last row and column.
func encodeLevelRGBA8(format Format, pix []uint8, width, height, depth int, o *EncodeOptions) ([]byte, error) {
	size, err := MipSize(width, height, depth, format)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)

	if !format.IsCompressed() {
		return out, encodePixelsRGBA8(format, pix[:width*height*depth*4], out)
	}

	enc := o.encoder()
	blocksX := divRoundUp(width, blockWidth)
	blocksY := divRoundUp(height, blockHeight)
	blockSize := format.BlockSizeInBytes()
	var tile TileRGBA8
	for z := 0; z < depth; z++ {
		slice := pix[z*width*height*4:]
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				extractBlockRGBA8(slice, width, height, bx*blockWidth, by*blockHeight, &tile)
				idx := (z*blocksY+by)*blocksX + bx
				if err := enc.EncodeBlockRGBA8(format, &tile, out[idx*blockSize:(idx+1)*blockSize]); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func encodeLevelRGBAF32(format Format, pix []float32, width, height, depth int, o *EncodeOptions) ([]byte, error) {
	size, err := MipSize(width, height, depth, format)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)

	if !format.IsCompressed() {
		return out, encodePixelsRGBAF32(format, pix[:width*height*depth*4], out)
	}

	enc := o.encoder()
	blocksX := divRoundUp(width, blockWidth)
	blocksY := divRoundUp(height, blockHeight)
	blockSize := format.BlockSizeInBytes()
	var tile TileRGBAF32
	for z := 0; z < depth; z++ {
		slice := pix[z*width*height*4:]
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				extractBlockRGBAF32(slice, width, height, bx*blockWidth, by*blockHeight, &tile)
				idx := (z*blocksY+by)*blocksX + bx
				if err := enc.EncodeBlockRGBAF32(format, &tile, out[idx*blockSize:(idx+1)*blockSize]); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// extractBlockRGBA8 copies a 4x4 tile out of the pixel buffer, clamping
// coordinates so edge blocks replicate their border pixels.
func extractBlockRGBA8(pix []uint8, width, height, x0, y0 int, tile *TileRGBA8) {
	for y := 0; y < blockHeight; y++ {
		sy := y0 + y
		if sy > height-1 {
			sy = height - 1
		}
		for x := 0; x < blockWidth; x++ {
			sx := x0 + x
			if sx > width-1 {
				sx = width - 1
			}
			src := (sy*width + sx) * 4
			dst := (y*blockWidth + x) * 4
			copy(tile[dst:dst+4], pix[src:src+4])
		}
	}
}

func extractBlockRGBAF32(pix []float32, width, height, x0, y0 int, tile *TileRGBAF32) {
	for y := 0; y < blockHeight; y++ {
		sy := y0 + y
		if sy > height-1 {
			sy = height - 1
		}
		for x := 0; x < blockWidth; x++ {
			sx := x0 + x
			if sx > width-1 {
				sx = width - 1
			}
			src := (sy*width + sx) * 4
			dst := (y*blockWidth + x) * 4
			copy(tile[dst:dst+4], pix[src:src+4])
		}
	}
}

// downsampleRGBA8 halves each dimension by averaging a 2x2x2 region per
// output pixel, ignoring samples past the source edges.
func downsampleRGBA8(newWidth, newHeight, newDepth, width, height, depth int, data []uint8) []uint8 {
	out := make([]uint8, newWidth*newHeight*newDepth*4)
	for z := 0; z < newDepth; z++ {
		for y := 0; y < newHeight; y++ {
			for x := 0; x < newWidth; x++ {
				idx := (z*newHeight+y)*newWidth + x
				for c := 0; c < 4; c++ {
					sum, count := 0, 0
					for z2 := 0; z2 < 2; z2++ {
						sz := z*2 + z2
						if sz >= depth {
							continue
						}
						for y2 := 0; y2 < 2; y2++ {
							sy := y*2 + y2
							if sy >= height {
								continue
							}
							for x2 := 0; x2 < 2; x2++ {
								sx := x*2 + x2
								if sx >= width {
									continue
								}
								sum += int(data[((sz*height+sy)*width+sx)*4+c])
								count++
							}
						}
					}
					if count > 0 {
						out[idx*4+c] = uint8(sum / count)
					}
				}
			}
		}
	}
	return out
}

func downsampleRGBAF32(newWidth, newHeight, newDepth, width, height, depth int, data []float32) []float32 {
	out := make([]float32, newWidth*newHeight*newDepth*4)
	for z := 0; z < newDepth; z++ {
		for y := 0; y < newHeight; y++ {
			for x := 0; x < newWidth; x++ {
				idx := (z*newHeight+y)*newWidth + x
				for c := 0; c < 4; c++ {
					var sum float32
					count := 0
					for z2 := 0; z2 < 2; z2++ {
						sz := z*2 + z2
						if sz >= depth {
							continue
						}
						for y2 := 0; y2 < 2; y2++ {
							sy := y*2 + y2
							if sy >= height {
								continue
							}
							for x2 := 0; x2 < 2; x2++ {
								sx := x*2 + x2
								if sx >= width {
									continue
								}
								sum += data[((sz*height+sy)*width+sx)*4+c]
								count++
							}
						}
					}
					if count > 0 {
						out[idx*4+c] = sum / float32(count)
					}
				}
			}
		}
	}
	return out
}
