package bcn

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Uncompressed formats convert pixel by pixel. Single-channel formats
// decode as grayscale with opaque alpha, the same convention BC4 uses.

func pixelCount(format Format, src []byte) (int, error) {
	bpp := format.BlockSizeInBytes()
	if len(src)%bpp != 0 {
		return 0, newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: %d bytes is not a whole number of %s pixels", len(src), format))
	}
	return len(src) / bpp, nil
}

// decodePixelsRGBA8 expands uncompressed pixel data to 8-bit RGBA.
// dst must hold 4 bytes per pixel.
func decodePixelsRGBA8(format Format, src []byte, dst []uint8) error {
	n, err := pixelCount(format, src)
	if err != nil {
		return err
	}
	if len(dst) < n*4 {
		return newError(ErrNotEnoughData, "bcn: rgba8 destination too short")
	}

	gray := func(i int, v uint8) {
		dst[i*4+0] = v
		dst[i*4+1] = v
		dst[i*4+2] = v
		dst[i*4+3] = 255
	}

	switch format {
	case FormatR8Unorm:
		for i := 0; i < n; i++ {
			gray(i, src[i])
		}
	case FormatR8Snorm:
		for i := 0; i < n; i++ {
			gray(i, snorm8ToUnorm8(src[i]))
		}
	case FormatRGBA8Unorm, FormatRGBA8Srgb:
		copy(dst[:n*4], src)
	case FormatRGBA8Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = snorm8ToUnorm8(src[i])
		}
	case FormatBGRA8Unorm, FormatBGRA8Srgb:
		for i := 0; i < n; i++ {
			dst[i*4+0] = src[i*4+2]
			dst[i*4+1] = src[i*4+1]
			dst[i*4+2] = src[i*4+0]
			dst[i*4+3] = src[i*4+3]
		}
	case FormatBGRA4Unorm:
		// Packed most to least significant as ARGB nibbles.
		for i := 0; i < n; i++ {
			dst[i*4+0] = unorm4ToUnorm8(src[i*2+1] & 0xF)
			dst[i*4+1] = unorm4ToUnorm8(src[i*2] >> 4)
			dst[i*4+2] = unorm4ToUnorm8(src[i*2] & 0xF)
			dst[i*4+3] = unorm4ToUnorm8(src[i*2+1] >> 4)
		}
	case FormatR16Unorm:
		for i := 0; i < n; i++ {
			gray(i, unorm16ToUnorm8(binary.LittleEndian.Uint16(src[i*2:])))
		}
	case FormatR16Snorm:
		for i := 0; i < n; i++ {
			gray(i, snorm16ToUnorm8(binary.LittleEndian.Uint16(src[i*2:])))
		}
	case FormatRGBA16Unorm:
		for i := 0; i < n*4; i++ {
			dst[i] = unorm16ToUnorm8(binary.LittleEndian.Uint16(src[i*2:]))
		}
	case FormatRGBA16Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = snorm16ToUnorm8(binary.LittleEndian.Uint16(src[i*2:]))
		}
	case FormatR16Float:
		for i := 0; i < n; i++ {
			gray(i, clampU8(halfToFloat(binary.LittleEndian.Uint16(src[i*2:]))*255))
		}
	case FormatRGBA16Float:
		for i := 0; i < n*4; i++ {
			dst[i] = clampU8(halfToFloat(binary.LittleEndian.Uint16(src[i*2:])) * 255)
		}
	case FormatR32Float:
		for i := 0; i < n; i++ {
			gray(i, clampU8(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))*255))
		}
	case FormatRGBA32Float:
		for i := 0; i < n*4; i++ {
			dst[i] = clampU8(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])) * 255)
		}
	default:
		return newError(ErrUnsupportedFormat, "bcn: cannot convert "+format.String()+" pixels")
	}
	return nil
}

// decodePixelsRGBAF32 expands uncompressed pixel data to float RGBA.
// dst must hold 4 values per pixel.
func decodePixelsRGBAF32(format Format, src []byte, dst []float32) error {
	n, err := pixelCount(format, src)
	if err != nil {
		return err
	}
	if len(dst) < n*4 {
		return newError(ErrNotEnoughData, "bcn: rgbaf32 destination too short")
	}

	gray := func(i int, v float32) {
		dst[i*4+0] = v
		dst[i*4+1] = v
		dst[i*4+2] = v
		dst[i*4+3] = 1
	}

	switch format {
	case FormatR8Unorm:
		for i := 0; i < n; i++ {
			gray(i, float32(src[i])/255)
		}
	case FormatR8Snorm:
		for i := 0; i < n; i++ {
			gray(i, snorm8ToFloat(src[i]))
		}
	case FormatRGBA8Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = snorm8ToFloat(src[i])
		}
	case FormatR16Unorm:
		for i := 0; i < n; i++ {
			gray(i, float32(binary.LittleEndian.Uint16(src[i*2:]))/65535)
		}
	case FormatR16Snorm:
		for i := 0; i < n; i++ {
			gray(i, snorm16ToFloat(binary.LittleEndian.Uint16(src[i*2:])))
		}
	case FormatRGBA16Unorm:
		for i := 0; i < n*4; i++ {
			dst[i] = float32(binary.LittleEndian.Uint16(src[i*2:])) / 65535
		}
	case FormatRGBA16Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = snorm16ToFloat(binary.LittleEndian.Uint16(src[i*2:]))
		}
	case FormatR16Float:
		for i := 0; i < n; i++ {
			gray(i, halfToFloat(binary.LittleEndian.Uint16(src[i*2:])))
		}
	case FormatRGBA16Float:
		for i := 0; i < n*4; i++ {
			dst[i] = halfToFloat(binary.LittleEndian.Uint16(src[i*2:]))
		}
	case FormatR32Float:
		for i := 0; i < n; i++ {
			gray(i, math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
		}
	case FormatRGBA32Float:
		for i := 0; i < n*4; i++ {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
		}
	default:
		// The remaining 8-bit layouts share the unorm8 path.
		tmp := make([]uint8, n*4)
		if err := decodePixelsRGBA8(format, src, tmp); err != nil {
			return err
		}
		for i, v := range tmp {
			dst[i] = float32(v) / 255
		}
	}
	return nil
}

// encodePixelsRGBA8 packs 8-bit RGBA pixels into an uncompressed
// format. dst must hold BlockSizeInBytes bytes per pixel.
func encodePixelsRGBA8(format Format, src []uint8, dst []byte) error {
	n := len(src) / 4
	if len(dst) < n*format.BlockSizeInBytes() {
		return newError(ErrNotEnoughData, "bcn: "+format.String()+" destination too short")
	}

	switch format {
	case FormatR8Unorm:
		for i := 0; i < n; i++ {
			dst[i] = src[i*4]
		}
	case FormatR8Snorm:
		for i := 0; i < n; i++ {
			dst[i] = unorm8ToSnorm8(src[i*4])
		}
	case FormatRGBA8Unorm, FormatRGBA8Srgb:
		copy(dst[:n*4], src)
	case FormatRGBA8Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = unorm8ToSnorm8(src[i])
		}
	case FormatBGRA8Unorm, FormatBGRA8Srgb:
		for i := 0; i < n; i++ {
			dst[i*4+0] = src[i*4+2]
			dst[i*4+1] = src[i*4+1]
			dst[i*4+2] = src[i*4+0]
			dst[i*4+3] = src[i*4+3]
		}
	case FormatBGRA4Unorm:
		for i := 0; i < n; i++ {
			dst[i*2+0] = unorm8ToUnorm4(src[i*4+1])<<4 | unorm8ToUnorm4(src[i*4+2])
			dst[i*2+1] = unorm8ToUnorm4(src[i*4+3])<<4 | unorm8ToUnorm4(src[i*4])
		}
	case FormatR16Unorm:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], unorm8ToUnorm16(src[i*4]))
		}
	case FormatR16Snorm:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], unorm8ToSnorm16(src[i*4]))
		}
	case FormatRGBA16Unorm:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], unorm8ToUnorm16(src[i]))
		}
	case FormatRGBA16Snorm:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], unorm8ToSnorm16(src[i]))
		}
	case FormatR16Float:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToHalf(float32(src[i*4])/255))
		}
	case FormatRGBA16Float:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToHalf(float32(src[i])/255))
		}
	case FormatR32Float:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(src[i*4])/255))
		}
	case FormatRGBA32Float:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(src[i])/255))
		}
	default:
		return newError(ErrUnsupportedFormat, "bcn: cannot convert pixels to "+format.String())
	}
	return nil
}

// encodePixelsRGBAF32 packs float RGBA pixels into an uncompressed
// format.
func encodePixelsRGBAF32(format Format, src []float32, dst []byte) error {
	n := len(src) / 4
	if len(dst) < n*format.BlockSizeInBytes() {
		return newError(ErrNotEnoughData, "bcn: "+format.String()+" destination too short")
	}

	switch format {
	case FormatR16Float:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToHalf(src[i*4]))
		}
	case FormatRGBA16Float:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToHalf(src[i]))
		}
	case FormatR32Float:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(src[i*4]))
		}
	case FormatRGBA32Float:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(src[i]))
		}
	case FormatR8Snorm:
		for i := 0; i < n; i++ {
			dst[i] = floatToSnorm8(src[i*4])
		}
	case FormatRGBA8Snorm:
		for i := 0; i < n*4; i++ {
			dst[i] = floatToSnorm8(src[i])
		}
	case FormatR16Snorm:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToSnorm16(src[i*4]))
		}
	case FormatRGBA16Snorm:
		for i := 0; i < n*4; i++ {
			binary.LittleEndian.PutUint16(dst[i*2:], floatToSnorm16(src[i]))
		}
	default:
		// The unorm layouts narrow through 8 bits.
		tmp := make([]uint8, n*4)
		for i, v := range src {
			tmp[i] = clampU8(v * 255)
		}
		return encodePixelsRGBA8(format, tmp, dst)
	}
	return nil
}
