package bcn_test

import (
	"testing"

	"github.com/texpak/bcn/bcn"
)

func TestBC7ZeroBlockIsInvalid(t *testing.T) {
	// Sixteen zero bytes never reach a mode bit, which the format
	// reserves.
	block := make([]byte, 16)
	_, err := bcn.DecodeBlockRGBA8(bcn.FormatBC7Unorm, block, nil)
	if bcn.CodeOf(err) != bcn.ErrInvalidBlockMode {
		t.Fatalf("zero block: got %v, want BCN_ERR_INVALID_BLOCK_MODE", err)
	}

	opts := &bcn.DecodeOptions{ZeroInvalidBlocks: true}
	tile, err := bcn.DecodeBlockRGBA8(bcn.FormatBC7Unorm, block, opts)
	if err != nil {
		t.Fatalf("ZeroInvalidBlocks should swallow the error, got %v", err)
	}
	for _, v := range tile {
		if v != 0 {
			t.Fatal("ZeroInvalidBlocks should produce an all-zero tile")
		}
	}
}

func TestBC7Mode6HandBuilt(t *testing.T) {
	// Mode 6 with every endpoint bit and both p-bits set reconstructs
	// 255 on all channels regardless of index.
	block := make([]byte, 16)
	block[0] = 0xC0
	for i := 1; i < 8; i++ {
		block[i] = 0xFF
	}
	block[8] = 0x01

	tile := mustDecode8(t, bcn.FormatBC7Unorm, block)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			checkPixel(t, &tile, x, y, 255, 255, 255, 255)
		}
	}
}

func TestBC7EncodeSolidExact(t *testing.T) {
	// Solid tiles whose components share their low bit reconstruct
	// exactly from the single p-bit per endpoint.
	colors := [][4]uint8{
		{10, 20, 30, 40},
		{255, 255, 255, 255},
		{1, 3, 5, 255},
		{201, 33, 77, 255},
	}
	enc := bcn.ReferenceEncoder{}
	for _, c := range colors {
		for _, v := range c {
			if (v^c[0])&1 != 0 {
				t.Fatalf("test color %v does not share its low bit", c)
			}
		}
		var tile bcn.TileRGBA8
		for i := 0; i < 16; i++ {
			copy(tile[i*4:], c[:])
		}
		var block [16]byte
		if err := enc.EncodeBlockRGBA8(bcn.FormatBC7Unorm, &tile, block[:]); err != nil {
			t.Fatalf("EncodeBlockRGBA8: %v", err)
		}
		got := mustDecode8(t, bcn.FormatBC7Unorm, block[:])
		if got != tile {
			t.Fatalf("solid %v did not survive the round trip: got %v", c, got[:4])
		}
	}
}

func TestBC7EncodeGradient(t *testing.T) {
	var tile bcn.TileRGBA8
	for i := 0; i < 16; i++ {
		v := uint8(i * 17)
		tile[i*4+0] = v
		tile[i*4+1] = v
		tile[i*4+2] = v
		tile[i*4+3] = 255
	}

	enc := bcn.ReferenceEncoder{}
	var block [16]byte
	if err := enc.EncodeBlockRGBA8(bcn.FormatBC7Unorm, &tile, block[:]); err != nil {
		t.Fatalf("EncodeBlockRGBA8: %v", err)
	}
	got := mustDecode8(t, bcn.FormatBC7Unorm, block[:])
	for i := 0; i < 16; i++ {
		for c := 0; c < 3; c++ {
			d := int(got[i*4+c]) - int(tile[i*4+c])
			if d < 0 {
				d = -d
			}
			if d > 12 {
				t.Fatalf("pixel %d channel %d: got %d, want %d within 12", i, c, got[i*4+c], tile[i*4+c])
			}
		}
		d := int(got[i*4+3]) - 255
		if d < -1 || d > 0 {
			t.Fatalf("pixel %d: alpha %d, want 254 or 255", i, got[i*4+3])
		}
	}
}

func TestBC7EncodeAnchorConstraint(t *testing.T) {
	// A tile whose first pixel sits at the bright end forces the
	// endpoint swap that keeps the anchor index inside 3 bits.
	var tile bcn.TileRGBA8
	for i := 0; i < 16; i++ {
		v := uint8(255 - i*17)
		tile[i*4+0] = v
		tile[i*4+1] = v
		tile[i*4+2] = v
		tile[i*4+3] = 255
	}

	enc := bcn.ReferenceEncoder{}
	var block [16]byte
	if err := enc.EncodeBlockRGBA8(bcn.FormatBC7Unorm, &tile, block[:]); err != nil {
		t.Fatalf("EncodeBlockRGBA8: %v", err)
	}
	got := mustDecode8(t, bcn.FormatBC7Unorm, block[:])
	for i := 0; i < 16; i++ {
		d := int(got[i*4]) - int(tile[i*4])
		if d < 0 {
			d = -d
		}
		if d > 12 {
			t.Fatalf("pixel %d: got %d, want %d within 12", i, got[i*4], tile[i*4])
		}
	}
}

func TestEncodeBlockErrors(t *testing.T) {
	enc := bcn.ReferenceEncoder{}
	var tile bcn.TileRGBA8
	err := enc.EncodeBlockRGBA8(bcn.FormatBC1Unorm, &tile, make([]byte, 7))
	if bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("short destination: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}
	err = enc.EncodeBlockRGBA8(bcn.FormatRGBA8Unorm, &tile, make([]byte, 64))
	if bcn.CodeOf(err) != bcn.ErrUnsupportedFormat {
		t.Fatalf("uncompressed format: got %v, want BCN_ERR_UNSUPPORTED_FORMAT", err)
	}
}
