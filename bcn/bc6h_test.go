package bcn_test

import (
	"testing"

	"github.com/texpak/bcn/bcn"
)

func TestBC6HZeroBlock(t *testing.T) {
	// An all-zero block is a valid two-partition block with zero
	// endpoints and decodes to black.
	block := make([]byte, 16)
	tile, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC6HUfloat, block, nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := tile.At(x, y)
			if r != 0 || g != 0 || b != 0 || a != 1 {
				t.Fatalf("pixel (%d,%d) = (%g,%g,%g,%g), want (0,0,0,1)", x, y, r, g, b, a)
			}
		}
	}
}

func TestBC6HReservedMode(t *testing.T) {
	block := make([]byte, 16)
	block[0] = 0b10011

	_, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC6HUfloat, block, nil)
	if bcn.CodeOf(err) != bcn.ErrInvalidBlockMode {
		t.Fatalf("reserved mode: got %v, want BCN_ERR_INVALID_BLOCK_MODE", err)
	}
	_, err = bcn.DecodeBlockRGBAF32(bcn.FormatBC6HSfloat, block, nil)
	if bcn.CodeOf(err) != bcn.ErrInvalidBlockMode {
		t.Fatalf("reserved mode signed: got %v, want BCN_ERR_INVALID_BLOCK_MODE", err)
	}

	opts := &bcn.DecodeOptions{ZeroInvalidBlocks: true}
	tile, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC6HUfloat, block, opts)
	if err != nil {
		t.Fatalf("ZeroInvalidBlocks should swallow the error, got %v", err)
	}
	for _, v := range tile {
		if v != 0 {
			t.Fatal("ZeroInvalidBlocks should produce an all-zero tile")
		}
	}
}

func TestBC6HEncodeRoundTrip(t *testing.T) {
	// A correlated ramp, since the single shared index per pixel cannot
	// track channels that vary independently.
	var tile bcn.TileRGBAF32
	for i := 0; i < 16; i++ {
		v := 0.5 + float32(i)*0.025
		tile[i*4+0] = v
		tile[i*4+1] = 1.5
		tile[i*4+2] = v
		tile[i*4+3] = 1
	}

	var block [16]byte
	enc := bcn.ReferenceEncoder{}
	if err := enc.EncodeBlockRGBAF32(bcn.FormatBC6HUfloat, &tile, block[:]); err != nil {
		t.Fatalf("EncodeBlockRGBAF32: %v", err)
	}
	got, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC6HUfloat, block[:], nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	for i := 0; i < 16; i++ {
		for c := 0; c < 3; c++ {
			want := tile[i*4+c]
			diff := got[i*4+c] - want
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.05 {
				t.Fatalf("pixel %d channel %d: got %g, want %g within 0.05", i, c, got[i*4+c], want)
			}
		}
		if got[i*4+3] != 1 {
			t.Fatalf("pixel %d: alpha %g, want 1", i, got[i*4+3])
		}
	}
}

func TestBC6HEncodeSolid(t *testing.T) {
	var tile bcn.TileRGBAF32
	for i := 0; i < 16; i++ {
		tile[i*4+0] = 0.5
		tile[i*4+1] = 2
		tile[i*4+2] = 0.125
		tile[i*4+3] = 1
	}

	var block [16]byte
	enc := bcn.ReferenceEncoder{}
	if err := enc.EncodeBlockRGBAF32(bcn.FormatBC6HUfloat, &tile, block[:]); err != nil {
		t.Fatalf("EncodeBlockRGBAF32: %v", err)
	}
	got, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC6HUfloat, block[:], nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	for i := 1; i < 16; i++ {
		for c := 0; c < 4; c++ {
			if got[i*4+c] != got[c] {
				t.Fatalf("solid tile decoded unevenly at pixel %d", i)
			}
		}
	}
	for c := 0; c < 3; c++ {
		diff := got[c] - tile[c]
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.05*tile[c]+0.01 {
			t.Fatalf("channel %d: got %g, want close to %g", c, got[c], tile[c])
		}
	}
}

func TestBC6HSignedEncodeUnsupported(t *testing.T) {
	var tile bcn.TileRGBAF32
	var block [16]byte
	enc := bcn.ReferenceEncoder{}
	err := enc.EncodeBlockRGBAF32(bcn.FormatBC6HSfloat, &tile, block[:])
	if bcn.CodeOf(err) != bcn.ErrUnsupportedFormat {
		t.Fatalf("signed BC6H encode: got %v, want BCN_ERR_UNSUPPORTED_FORMAT", err)
	}
}

func TestBC6HDecodeToRGBA8Clamps(t *testing.T) {
	// HDR values above 1.0 clamp to 255 on the 8-bit path.
	var tile bcn.TileRGBAF32
	for i := 0; i < 16; i++ {
		tile[i*4+0] = 4
		tile[i*4+3] = 1
	}
	var block [16]byte
	enc := bcn.ReferenceEncoder{}
	if err := enc.EncodeBlockRGBAF32(bcn.FormatBC6HUfloat, &tile, block[:]); err != nil {
		t.Fatalf("EncodeBlockRGBAF32: %v", err)
	}
	got, err := bcn.DecodeBlockRGBA8(bcn.FormatBC6HUfloat, block[:], nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBA8: %v", err)
	}
	checkPixel(t, &got, 0, 0, 255, 0, 0, 255)
}
