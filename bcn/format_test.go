package bcn_test

import (
	"testing"

	"github.com/texpak/bcn/bcn"
)

func TestFormatProperties(t *testing.T) {
	cases := []struct {
		format     bcn.Format
		compressed bool
		srgb       bool
		hdr        bool
		size       int
	}{
		{bcn.FormatBC1Unorm, true, false, false, 8},
		{bcn.FormatBC1Srgb, true, true, false, 8},
		{bcn.FormatBC3Unorm, true, false, false, 16},
		{bcn.FormatBC4Snorm, true, false, false, 8},
		{bcn.FormatBC5Unorm, true, false, false, 16},
		{bcn.FormatBC6HUfloat, true, false, true, 16},
		{bcn.FormatBC7Srgb, true, true, false, 16},
		{bcn.FormatR8Unorm, false, false, false, 1},
		{bcn.FormatBGRA4Unorm, false, false, false, 2},
		{bcn.FormatRGBA8Srgb, false, true, false, 4},
		{bcn.FormatRGBA16Float, false, false, true, 8},
		{bcn.FormatRGBA32Float, false, false, true, 16},
	}
	for _, c := range cases {
		if got := c.format.IsCompressed(); got != c.compressed {
			t.Fatalf("%s IsCompressed = %v", c.format, got)
		}
		if got := c.format.IsSrgb(); got != c.srgb {
			t.Fatalf("%s IsSrgb = %v", c.format, got)
		}
		if got := c.format.DecodesToFloat(); got != c.hdr {
			t.Fatalf("%s DecodesToFloat = %v", c.format, got)
		}
		if got := c.format.BlockSizeInBytes(); got != c.size {
			t.Fatalf("%s BlockSizeInBytes = %d, want %d", c.format, got, c.size)
		}
	}
}

func TestFormatBlockDimensions(t *testing.T) {
	w, h, d := bcn.FormatBC7Unorm.BlockDimensions()
	if w != 4 || h != 4 || d != 1 {
		t.Fatalf("BC7 block dimensions %dx%dx%d, want 4x4x1", w, h, d)
	}
	w, h, d = bcn.FormatRGBA8Unorm.BlockDimensions()
	if w != 1 || h != 1 || d != 1 {
		t.Fatalf("RGBA8 block dimensions %dx%dx%d, want 1x1x1", w, h, d)
	}
}

func TestFormatString(t *testing.T) {
	if bcn.FormatBC6HSfloat.String() != "BC6HSfloat" {
		t.Fatal("BC6HSfloat String")
	}
	if bcn.Format(99).String() != "Format(99)" {
		t.Fatal("unknown format String")
	}
	if bcn.Format(99).BlockSizeInBytes() != 0 {
		t.Fatal("unknown format should have zero block size")
	}
}
