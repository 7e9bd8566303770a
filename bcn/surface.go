package bcn

import (
	"fmt"
	"math/bits"
)

// Surface is compressed or uncompressed image data together with its
// layout. Data is ordered by layer, then mipmap, tightly packed:
// layer 0 mip 0, layer 0 mip 1, ..., layer L-1 mip M-1. Depth slices of
// a mip level are stored back to back inside that mip's range.
type Surface struct {
	// Width, Height and Depth are the pixel dimensions of mip level 0.
	// Depth is 1 for 2D surfaces.
	Width, Height, Depth int

	// Layers is the array layer count: 1 for plain surfaces, 6 for
	// cube maps. Every layer carries the same mip chain.
	Layers int

	// Mipmaps is the number of mip levels per layer, at least 1.
	Mipmaps int

	Format Format

	Data []byte
}

// NewSurface wraps data without copying and validates the layout.
func NewSurface(width, height, depth, layers, mipmaps int, format Format, data []byte) (*Surface, error) {
	s := &Surface{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Layers:  layers,
		Mipmaps: mipmaps,
		Format:  format,
		Data:    data,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks dimensions, mip count and that Data covers at least
// the base mip level of one layer.
func (s *Surface) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return newError(ErrInvalidDimensions,
			fmt.Sprintf("bcn: zero sized surface %dx%dx%d", s.Width, s.Height, s.Depth))
	}
	if s.Layers < 1 || s.Mipmaps < 1 {
		return newError(ErrInvalidDimensions,
			fmt.Sprintf("bcn: surface needs at least one layer and mipmap, got %d and %d", s.Layers, s.Mipmaps))
	}
	if s.Format.BlockSizeInBytes() == 0 {
		return newError(ErrUnsupportedFormat, "bcn: surface format "+s.Format.String())
	}

	maxMips := MaxMipmapCount(max(s.Width, s.Height, s.Depth))
	if s.Mipmaps > maxMips {
		return newError(ErrTooManyMipmaps,
			fmt.Sprintf("bcn: %d mipmaps but surface supports at most %d", s.Mipmaps, maxMips))
	}

	baseSize, err := MipSize(s.Width, s.Height, s.Depth, s.Format)
	if err != nil {
		return err
	}
	if baseSize > len(s.Data) {
		return newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: surface data holds %d bytes, base level needs %d", len(s.Data), baseSize))
	}
	return nil
}

// Get returns the data range of one layer and mip level. The pixel
// dimensions of the returned range are MipDimension of the surface
// dimensions.
func (s *Surface) Get(layer, mipmap int) ([]byte, error) {
	if layer < 0 || layer >= s.Layers || mipmap < 0 || mipmap >= s.Mipmaps {
		return nil, newError(ErrMipmapOutOfBounds,
			fmt.Sprintf("bcn: layer %d mipmap %d outside surface with %d layers and %d mipmaps",
				layer, mipmap, s.Layers, s.Mipmaps))
	}
	offset, err := calculateOffset(layer, mipmap, s.Width, s.Height, s.Depth, s.Format, s.Mipmaps)
	if err != nil {
		return nil, err
	}
	size, err := MipSize(
		MipDimension(s.Width, mipmap),
		MipDimension(s.Height, mipmap),
		MipDimension(s.Depth, mipmap),
		s.Format)
	if err != nil {
		return nil, err
	}
	if offset+size > len(s.Data) {
		return nil, newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: surface data holds %d bytes, layer %d mipmap %d ends at %d",
				len(s.Data), layer, mipmap, offset+size))
	}
	return s.Data[offset : offset+size], nil
}

// GetDepthSlice returns the data of one z slice within a layer and mip
// level.
func (s *Surface) GetDepthSlice(layer, mipmap, z int) ([]byte, error) {
	mip, err := s.Get(layer, mipmap)
	if err != nil {
		return nil, err
	}
	depth := MipDimension(s.Depth, mipmap)
	if z < 0 || z >= depth {
		return nil, newError(ErrMipmapOutOfBounds,
			fmt.Sprintf("bcn: depth slice %d outside mipmap with depth %d", z, depth))
	}
	sliceSize := len(mip) / depth
	return mip[z*sliceSize : (z+1)*sliceSize], nil
}

// MipDimension is the size of a base dimension at the given mip level,
// halving per level and never reaching zero.
func MipDimension(base, mipmap int) int {
	d := base >> uint(mipmap)
	if d < 1 {
		return 1
	}
	return d
}

// MaxMipmapCount is the length of a full mip chain for the given
// largest dimension: floor(log2(d)) + 1.
func MaxMipmapCount(dimension int) int {
	if dimension <= 0 {
		return 0
	}
	return bits.Len(uint(dimension))
}

// MipSize returns the byte size of a single mip level with the given
// pixel dimensions. Compressed formats round dimensions up to whole
// blocks.
func MipSize(width, height, depth int, format Format) (int, error) {
	bw, bh, bd := format.BlockDimensions()
	n, err := checkedMul(divRoundUp(width, bw), divRoundUp(height, bh))
	if err == nil {
		n, err = checkedMul(n, divRoundUp(depth, bd))
	}
	if err == nil {
		n, err = checkedMul(n, format.BlockSizeInBytes())
	}
	if err != nil {
		return 0, newError(ErrPixelCountOverflow,
			fmt.Sprintf("bcn: pixel count of %dx%dx%d overflows", width, height, depth))
	}
	return n, nil
}

// calculateOffset sums the sizes of all preceding layers and mip
// levels, assuming tight packing.
func calculateOffset(layer, mipmap, width, height, depth int, format Format, mipmapsPerLayer int) (int, error) {
	layerSize := 0
	mipOffset := 0
	for m := 0; m < mipmapsPerLayer; m++ {
		size, err := MipSize(
			MipDimension(width, m),
			MipDimension(height, m),
			MipDimension(depth, m),
			format)
		if err != nil {
			return 0, err
		}
		if m < mipmap {
			mipOffset += size
		}
		layerSize += size
	}
	offset, err := checkedMul(layer, layerSize)
	if err != nil {
		return 0, newError(ErrPixelCountOverflow, "bcn: surface offset overflows")
	}
	return offset + mipOffset, nil
}

func divRoundUp(x, d int) int {
	return (x + d - 1) / d
}

func checkedMul(a, b int) (int, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxIntValue) {
		return 0, errOverflow
	}
	return int(lo), nil
}

const maxIntValue = int(^uint(0) >> 1)

var errOverflow = newError(ErrPixelCountOverflow, "bcn: size computation overflows")
