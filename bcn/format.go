// Package bcn implements decoding and encoding of the BC1-BC7 family of
// block-compressed GPU texture formats, together with the surface layout
// (mipmaps, array layers, depth slices) of the compressed data.
//
// Every compressed format maps a 4x4 pixel tile to an 8 or 16 byte block.
// Blocks decode independently of each other, so surfaces decode in
// parallel across blocks.
package bcn

import "fmt"

// Format identifies the byte encoding of surface data.
//
// Compressed formats store 4x4 pixel blocks; uncompressed formats store
// one pixel per element. Srgb variants share the byte layout of their
// Unorm counterparts and only tag the transfer function.
type Format uint32

const (
	FormatUnknown Format = iota

	// Block-compressed formats.
	FormatBC1Unorm
	FormatBC1Srgb
	FormatBC2Unorm
	FormatBC2Srgb
	FormatBC3Unorm
	FormatBC3Srgb
	FormatBC4Unorm
	FormatBC4Snorm
	FormatBC5Unorm
	FormatBC5Snorm
	FormatBC6HUfloat
	FormatBC6HSfloat
	FormatBC7Unorm
	FormatBC7Srgb

	// Uncompressed formats.
	FormatR8Unorm
	FormatR8Snorm
	FormatRGBA8Unorm
	FormatRGBA8Srgb
	FormatRGBA8Snorm
	FormatBGRA8Unorm
	FormatBGRA8Srgb
	FormatBGRA4Unorm
	FormatR16Unorm
	FormatR16Snorm
	FormatRGBA16Unorm
	FormatRGBA16Snorm
	FormatR16Float
	FormatRGBA16Float
	FormatR32Float
	FormatRGBA32Float
)

// Block footprint shared by every BCN format.
const (
	blockWidth  = 4
	blockHeight = 4
)

// IsCompressed reports whether f is a block-compressed format.
func (f Format) IsCompressed() bool {
	return f >= FormatBC1Unorm && f <= FormatBC7Srgb
}

// IsSrgb reports whether f carries sRGB-encoded color data.
func (f Format) IsSrgb() bool {
	switch f {
	case FormatBC1Srgb, FormatBC2Srgb, FormatBC3Srgb, FormatBC7Srgb,
		FormatRGBA8Srgb, FormatBGRA8Srgb:
		return true
	}
	return false
}

// BlockDimensions returns the pixel footprint of one encoded unit.
// Compressed formats return (4, 4, 1); uncompressed formats (1, 1, 1).
func (f Format) BlockDimensions() (w, h, d int) {
	if f.IsCompressed() {
		return blockWidth, blockHeight, 1
	}
	return 1, 1, 1
}

// BlockSizeInBytes returns the byte size of one encoded unit: the
// compressed block size for BCN formats, bytes per pixel otherwise.
func (f Format) BlockSizeInBytes() int {
	switch f {
	case FormatBC1Unorm, FormatBC1Srgb, FormatBC4Unorm, FormatBC4Snorm:
		return 8
	case FormatBC2Unorm, FormatBC2Srgb, FormatBC3Unorm, FormatBC3Srgb,
		FormatBC5Unorm, FormatBC5Snorm,
		FormatBC6HUfloat, FormatBC6HSfloat,
		FormatBC7Unorm, FormatBC7Srgb:
		return 16
	case FormatR8Unorm, FormatR8Snorm:
		return 1
	case FormatBGRA4Unorm, FormatR16Unorm, FormatR16Snorm, FormatR16Float:
		return 2
	case FormatRGBA8Unorm, FormatRGBA8Srgb, FormatRGBA8Snorm,
		FormatBGRA8Unorm, FormatBGRA8Srgb, FormatR32Float:
		return 4
	case FormatRGBA16Unorm, FormatRGBA16Snorm, FormatRGBA16Float:
		return 8
	case FormatRGBA32Float:
		return 16
	}
	return 0
}

// DecodesToFloat reports whether the canonical decoded representation
// of f is float32 pixels rather than 8-bit pixels. Decoding such a
// format to 8 bits clamps its range.
func (f Format) DecodesToFloat() bool {
	switch f {
	case FormatBC6HUfloat, FormatBC6HSfloat,
		FormatR16Float, FormatRGBA16Float, FormatR32Float, FormatRGBA32Float:
		return true
	}
	return false
}

func (f Format) String() string {
	switch f {
	case FormatBC1Unorm:
		return "BC1Unorm"
	case FormatBC1Srgb:
		return "BC1Srgb"
	case FormatBC2Unorm:
		return "BC2Unorm"
	case FormatBC2Srgb:
		return "BC2Srgb"
	case FormatBC3Unorm:
		return "BC3Unorm"
	case FormatBC3Srgb:
		return "BC3Srgb"
	case FormatBC4Unorm:
		return "BC4Unorm"
	case FormatBC4Snorm:
		return "BC4Snorm"
	case FormatBC5Unorm:
		return "BC5Unorm"
	case FormatBC5Snorm:
		return "BC5Snorm"
	case FormatBC6HUfloat:
		return "BC6HUfloat"
	case FormatBC6HSfloat:
		return "BC6HSfloat"
	case FormatBC7Unorm:
		return "BC7Unorm"
	case FormatBC7Srgb:
		return "BC7Srgb"
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatR8Snorm:
		return "R8Snorm"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatRGBA8Srgb:
		return "RGBA8Srgb"
	case FormatRGBA8Snorm:
		return "RGBA8Snorm"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatBGRA8Srgb:
		return "BGRA8Srgb"
	case FormatBGRA4Unorm:
		return "BGRA4Unorm"
	case FormatR16Unorm:
		return "R16Unorm"
	case FormatR16Snorm:
		return "R16Snorm"
	case FormatRGBA16Unorm:
		return "RGBA16Unorm"
	case FormatRGBA16Snorm:
		return "RGBA16Snorm"
	case FormatR16Float:
		return "R16Float"
	case FormatRGBA16Float:
		return "RGBA16Float"
	case FormatR32Float:
		return "R32Float"
	case FormatRGBA32Float:
		return "RGBA32Float"
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}
