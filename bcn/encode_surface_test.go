package bcn_test

import (
	"bytes"
	"testing"

	"github.com/texpak/bcn/bcn"
)

func solidRGBA8(w, h, d, layers int, c [4]uint8) *bcn.SurfaceRGBA8 {
	s := &bcn.SurfaceRGBA8{
		Width: w, Height: h, Depth: d,
		Layers:  layers,
		Mipmaps: 1,
		Data:    make([]uint8, w*h*d*layers*4),
	}
	for i := 0; i < len(s.Data); i += 4 {
		copy(s.Data[i:], c[:])
	}
	return s
}

func TestEncodeSurfaceGeneratedMipmaps(t *testing.T) {
	src := solidRGBA8(12, 12, 1, 1, [4]uint8{255, 0, 255, 255})
	opts := &bcn.EncodeOptions{Mipmaps: bcn.MipmapsGeneratedAutomatic}
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC7Unorm, opts)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	if out.Mipmaps != 4 {
		t.Fatalf("Mipmaps = %d, want 4", out.Mipmaps)
	}
	// 9 + 4 + 1 + 1 blocks of 16 bytes.
	if len(out.Data) != 240 {
		t.Fatalf("len(Data) = %d, want 240", len(out.Data))
	}
}

func TestEncodeDecodeBC1Solid(t *testing.T) {
	// Magenta is exactly representable in 565.
	src := solidRGBA8(8, 8, 1, 1, [4]uint8{255, 0, 255, 255})
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	if len(out.Data) != 32 {
		t.Fatalf("len(Data) = %d, want 32", len(out.Data))
	}
	dec, err := bcn.DecodeSurfaceRGBA8(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}
	for i := 0; i < len(dec.Data); i += 4 {
		if dec.Data[i] != 255 || dec.Data[i+1] != 0 || dec.Data[i+2] != 255 || dec.Data[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want magenta", i/4, dec.Data[i:i+4])
		}
	}
}

func TestEncodePartialBlocks(t *testing.T) {
	// 5x3 needs 2x1 blocks; edge pixels replicate so a solid tile stays
	// solid through the round trip.
	src := solidRGBA8(5, 3, 1, 1, [4]uint8{255, 0, 255, 255})
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	if len(out.Data) != 16 {
		t.Fatalf("len(Data) = %d, want 16", len(out.Data))
	}
	dec, err := bcn.DecodeSurfaceRGBA8(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}
	if len(dec.Data) != 5*3*4 {
		t.Fatalf("decoded %d bytes, want %d", len(dec.Data), 5*3*4)
	}
	for i := 0; i < len(dec.Data); i += 4 {
		if dec.Data[i] != 255 || dec.Data[i+1] != 0 || dec.Data[i+2] != 255 {
			t.Fatalf("pixel %d = %v, want magenta", i/4, dec.Data[i:i+4])
		}
	}
}

func TestEncodeCubeMipChain(t *testing.T) {
	// 6 layers with a 3-level mip chain taken from the source surface.
	colors := [3][4]uint8{
		{10, 20, 30, 40},
		{50, 60, 70, 80},
		{90, 100, 110, 120},
	}
	src := &bcn.SurfaceRGBA8{
		Width: 4, Height: 4, Depth: 1,
		Layers:  6,
		Mipmaps: 3,
		Data:    make([]uint8, 6*(16+4+1)*4),
	}
	for l := 0; l < 6; l++ {
		for m := 0; m < 3; m++ {
			pix, err := src.Get(l, m)
			if err != nil {
				t.Fatalf("src.Get(%d,%d): %v", l, m, err)
			}
			for i := 0; i < len(pix); i += 4 {
				copy(pix[i:], colors[m][:])
			}
		}
	}

	opts := &bcn.EncodeOptions{Mipmaps: bcn.MipmapsFromSurface}
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC7Unorm, opts)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	if out.Mipmaps != 3 || out.Layers != 6 {
		t.Fatalf("got %d mipmaps %d layers, want 3 and 6", out.Mipmaps, out.Layers)
	}
	if len(out.Data) != 6*3*16 {
		t.Fatalf("len(Data) = %d, want %d", len(out.Data), 6*3*16)
	}

	dec, err := bcn.DecodeSurfaceRGBA8(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}
	for l := 0; l < 6; l++ {
		for m := 0; m < 3; m++ {
			pix, err := dec.Get(l, m)
			if err != nil {
				t.Fatalf("dec.Get(%d,%d): %v", l, m, err)
			}
			for i := 0; i < len(pix); i += 4 {
				if !bytes.Equal(pix[i:i+4], colors[m][:]) {
					t.Fatalf("layer %d mip %d pixel %d = %v, want %v", l, m, i/4, pix[i:i+4], colors[m])
				}
			}
		}
	}
}

func TestDownsampleCheckerboard(t *testing.T) {
	// A 2x2 average of an alternating 0/255 checkerboard is 127 after
	// truncation.
	src := &bcn.SurfaceRGBA8{
		Width: 8, Height: 8, Depth: 1,
		Layers:  1,
		Mipmaps: 1,
		Data:    make([]uint8, 8*8*4),
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			i := (y*8 + x) * 4
			src.Data[i] = v
			src.Data[i+3] = 255
		}
	}

	opts := &bcn.EncodeOptions{Mipmaps: bcn.MipmapsGeneratedExact, MipmapCount: 2}
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatR8Unorm, opts)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	if out.Mipmaps != 2 {
		t.Fatalf("Mipmaps = %d, want 2", out.Mipmaps)
	}
	mip, err := out.Get(0, 1)
	if err != nil {
		t.Fatalf("Get(0,1): %v", err)
	}
	if len(mip) != 16 {
		t.Fatalf("mip 1 holds %d bytes, want 16", len(mip))
	}
	for i, v := range mip {
		if v != 127 {
			t.Fatalf("mip 1 pixel %d = %d, want 127", i, v)
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	// Encoding a decoded BC1 gradient reproduces the block bytes.
	src := &bcn.SurfaceRGBA8{
		Width: 4, Height: 4, Depth: 1,
		Layers:  1,
		Mipmaps: 1,
		Data:    make([]uint8, 4*4*4),
	}
	for i := 0; i < 16; i++ {
		v := uint8(i * 17)
		src.Data[i*4+0] = v
		src.Data[i*4+1] = v
		src.Data[i*4+2] = v
		src.Data[i*4+3] = 255
	}

	first, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	dec, err := bcn.DecodeSurfaceRGBA8(first, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}
	second, err := bcn.EncodeSurfaceRGBA8(dec, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatalf("re-encoded block differs:\n%x\n%x", first.Data, second.Data)
	}
}

func TestEncodeSurfaceErrors(t *testing.T) {
	src := solidRGBA8(8, 8, 1, 1, [4]uint8{0, 0, 0, 255})

	_, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm,
		&bcn.EncodeOptions{Mipmaps: bcn.MipmapsGeneratedExact, MipmapCount: 10})
	if bcn.CodeOf(err) != bcn.ErrTooManyMipmaps {
		t.Fatalf("ten mipmaps on 8x8: got %v, want BCN_ERR_TOO_MANY_MIPMAPS", err)
	}

	bad := *src
	bad.Width = 0
	_, err = bcn.EncodeSurfaceRGBA8(&bad, bcn.FormatBC1Unorm, nil)
	if bcn.CodeOf(err) != bcn.ErrInvalidDimensions {
		t.Fatalf("zero width: got %v, want BCN_ERR_INVALID_DIMENSIONS", err)
	}

	short := *src
	short.Data = short.Data[:16]
	_, err = bcn.EncodeSurfaceRGBA8(&short, bcn.FormatBC1Unorm, nil)
	if bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("short input: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}
}

func TestEncodeSurfaceBC6H(t *testing.T) {
	src := &bcn.SurfaceRGBAF32{
		Width: 4, Height: 4, Depth: 1,
		Layers:  1,
		Mipmaps: 1,
		Data:    make([]float32, 4*4*4),
	}
	for i := 0; i < 16; i++ {
		src.Data[i*4+0] = 2
		src.Data[i*4+1] = 0.5
		src.Data[i*4+2] = 0.25
		src.Data[i*4+3] = 1
	}
	out, err := bcn.EncodeSurfaceRGBAF32(src, bcn.FormatBC6HUfloat, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBAF32: %v", err)
	}
	dec, err := bcn.DecodeSurfaceRGBAF32(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBAF32: %v", err)
	}
	want := [4]float32{2, 0.5, 0.25, 1}
	for i := 0; i < 16; i++ {
		for c := 0; c < 3; c++ {
			diff := dec.Data[i*4+c] - want[c]
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.05*want[c]+0.01 {
				t.Fatalf("pixel %d channel %d = %g, want close to %g", i, c, dec.Data[i*4+c], want[c])
			}
		}
	}
}

func TestDecodeSurfaceParallel(t *testing.T) {
	// 64x64 is 256 blocks, enough to cross the parallel decode
	// threshold.
	src := solidRGBA8(64, 64, 1, 1, [4]uint8{255, 0, 255, 255})
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	dec, err := bcn.DecodeSurfaceRGBA8(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}
	for i := 0; i < len(dec.Data); i += 4 {
		if dec.Data[i] != 255 || dec.Data[i+1] != 0 || dec.Data[i+2] != 255 {
			t.Fatalf("pixel %d = %v, want magenta", i/4, dec.Data[i:i+4])
		}
	}
}

func TestDecodeSurfaceMatchesBlockDecode(t *testing.T) {
	// The parallel surface path must agree with decoding each block on
	// its own.
	src := &bcn.SurfaceRGBA8{
		Width: 64, Height: 64, Depth: 1,
		Layers:  1,
		Mipmaps: 1,
		Data:    make([]uint8, 64*64*4),
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			i := (y*64 + x) * 4
			src.Data[i+0] = uint8(x * 4)
			src.Data[i+1] = uint8(y * 4)
			src.Data[i+2] = uint8((x + y) * 2)
			src.Data[i+3] = 255
		}
	}
	out, err := bcn.EncodeSurfaceRGBA8(src, bcn.FormatBC1Unorm, nil)
	if err != nil {
		t.Fatalf("EncodeSurfaceRGBA8: %v", err)
	}
	dec, err := bcn.DecodeSurfaceRGBA8(out, nil)
	if err != nil {
		t.Fatalf("DecodeSurfaceRGBA8: %v", err)
	}

	for by := 0; by < 16; by++ {
		for bx := 0; bx < 16; bx++ {
			idx := by*16 + bx
			tile, err := bcn.DecodeBlockRGBA8(bcn.FormatBC1Unorm, out.Data[idx*8:idx*8+8], nil)
			if err != nil {
				t.Fatalf("DecodeBlockRGBA8 block %d: %v", idx, err)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					r, g, b, a := tile.At(x, y)
					i := ((by*4+y)*64 + bx*4 + x) * 4
					if dec.Data[i] != r || dec.Data[i+1] != g || dec.Data[i+2] != b || dec.Data[i+3] != a {
						t.Fatalf("block %d pixel (%d,%d) differs from surface decode", idx, x, y)
					}
				}
			}
		}
	}
}

func TestDecodeSurfaceShortData(t *testing.T) {
	s := &bcn.Surface{
		Width: 8, Height: 8, Depth: 1,
		Layers: 1, Mipmaps: 2,
		Format: bcn.FormatBC1Unorm,
		Data:   make([]byte, 32),
	}
	// The base level fits but the second mip does not.
	_, err := bcn.DecodeSurfaceRGBA8(s, nil)
	if bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("truncated mip chain: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}
}
