package bcn_test

import (
	"testing"

	"github.com/texpak/bcn/bcn"
)

// rampIndices packs indices 0..7 into the 6 index bytes of a smooth
// alpha half-block so the first eight pixels walk the whole ramp.
func rampIndices(block []byte) {
	var idx uint64
	for k := 0; k < 8; k++ {
		idx |= uint64(k) << (3 * k)
	}
	for i := 0; i < 6; i++ {
		block[2+i] = byte(idx >> (8 * i))
	}
}

func TestBC4UnsignedRamp(t *testing.T) {
	block := make([]byte, 8)
	block[0] = 255
	block[1] = 0
	rampIndices(block)

	tile := mustDecode8(t, bcn.FormatBC4Unorm, block)
	want := [8]uint8{255, 0, 218, 182, 145, 109, 73, 36}
	for k := 0; k < 8; k++ {
		r, g, b, a := tile.At(k%4, k/4)
		if r != want[k] {
			t.Fatalf("index %d decoded to %d, want %d", k, r, want[k])
		}
		if g != r || b != r || a != 255 {
			t.Fatalf("index %d: got (%d,%d,%d,%d), want grayscale opaque", k, r, g, b, a)
		}
	}
}

func TestBC4ZeroGBOption(t *testing.T) {
	block := make([]byte, 8)
	block[0] = 200
	block[1] = 200

	opts := &bcn.DecodeOptions{BC4ZeroGB: true}
	tile, err := bcn.DecodeBlockRGBA8(bcn.FormatBC4Unorm, block, opts)
	if err != nil {
		t.Fatalf("DecodeBlockRGBA8: %v", err)
	}
	checkPixel(t, &tile, 0, 0, 200, 0, 0, 255)
}

func TestBC4SignedRamp(t *testing.T) {
	// Snorm endpoints +127 and -127 cover the full range. The decoded
	// bytes live in the unorm domain with the float-interpolated ramp.
	block := make([]byte, 8)
	block[0] = 127
	block[1] = 129
	rampIndices(block)

	tile := mustDecode8(t, bcn.FormatBC4Snorm, block)
	want := [8]uint8{255, 0, 219, 182, 146, 109, 73, 36}
	for k := 0; k < 8; k++ {
		r, _, _, _ := tile.At(k%4, k/4)
		if r != want[k] {
			t.Fatalf("index %d decoded to %d, want %d", k, r, want[k])
		}
	}
}

func TestBC4SignedFloat(t *testing.T) {
	block := make([]byte, 8)
	block[0] = 129
	block[1] = 129

	tile, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC4Snorm, block, nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	r, g, b, a := tile.At(0, 0)
	if r != -1 || g != -1 || b != -1 || a != 1 {
		t.Fatalf("snorm -127 decoded to (%g,%g,%g,%g), want (-1,-1,-1,1)", r, g, b, a)
	}
}

func TestBC4SignedFloatExtremes(t *testing.T) {
	// In the short ramp the last two indices are the literal extremes,
	// -1 and +1 for snorm data.
	block := make([]byte, 8)
	block[0] = 10
	block[1] = 20
	block[2] = 0b00_111_110

	tile, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC4Snorm, block, nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	if r, _, _, _ := tile.At(0, 0); r != -1 {
		t.Fatalf("index 6 decoded to %g, want -1", r)
	}
	if r, _, _, _ := tile.At(1, 0); r != 1 {
		t.Fatalf("index 7 decoded to %g, want 1", r)
	}
}

func TestBC5Channels(t *testing.T) {
	block := make([]byte, 16)
	block[0], block[1] = 100, 100
	block[8], block[9] = 200, 200

	tile := mustDecode8(t, bcn.FormatBC5Unorm, block)
	checkPixel(t, &tile, 0, 0, 100, 200, 0, 255)
	checkPixel(t, &tile, 3, 3, 100, 200, 0, 255)
}

func TestBC5SignedBlueIsMidGray(t *testing.T) {
	block := make([]byte, 16)
	tile := mustDecode8(t, bcn.FormatBC5Snorm, block)
	// Snorm zero endpoints decode to unorm 128, and so does the unused
	// blue channel.
	checkPixel(t, &tile, 0, 0, 128, 128, 128, 255)

	f, err := bcn.DecodeBlockRGBAF32(bcn.FormatBC5Snorm, block, nil)
	if err != nil {
		t.Fatalf("DecodeBlockRGBAF32: %v", err)
	}
	r, g, b, a := f.At(0, 0)
	if r != 0 || g != 0 || b != 0.5 || a != 1 {
		t.Fatalf("snorm zero block decoded to (%g,%g,%g,%g), want (0,0,0.5,1)", r, g, b, a)
	}
}
