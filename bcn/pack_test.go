package bcn_test

import (
	"bytes"
	"testing"

	"github.com/texpak/bcn/bcn"
)

func TestPackRoundTripCompressible(t *testing.T) {
	// Repetitive texture-like data spanning several chunks.
	data := make([]byte, 200*1024)
	for i := range data {
		data[i] = byte(i / 64 % 16)
	}
	packed, err := bcn.PackData(data)
	if err != nil {
		t.Fatalf("PackData: %v", err)
	}
	if string(packed[:4]) != "LZ4 " {
		t.Fatalf("magic = %q, want LZ4", packed[:4])
	}
	if len(packed) >= len(data) {
		t.Fatalf("packed %d bytes from %d, expected compression", len(packed), len(data))
	}
	got, err := bcn.UnpackData(packed)
	if err != nil {
		t.Fatalf("UnpackData: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackSmallPayloadIsCopied(t *testing.T) {
	data := []byte("a small payload")
	packed, err := bcn.PackData(data)
	if err != nil {
		t.Fatalf("PackData: %v", err)
	}
	if string(packed[:4]) != "COPY" {
		t.Fatalf("magic = %q, want COPY", packed[:4])
	}
	if len(packed) != len(data)+8 {
		t.Fatalf("packed %d bytes, want %d", len(packed), len(data)+8)
	}
	got, err := bcn.UnpackData(packed)
	if err != nil {
		t.Fatalf("UnpackData: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackIncompressibleData(t *testing.T) {
	// A xorshift stream does not compress; the payload must survive
	// either framing.
	data := make([]byte, 8*1024)
	state := uint32(0x12345678)
	for i := range data {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		data[i] = byte(state)
	}
	packed, err := bcn.PackData(data)
	if err != nil {
		t.Fatalf("PackData: %v", err)
	}
	if len(packed) > len(data)+8 {
		t.Fatalf("packed %d bytes, want at most %d", len(packed), len(data)+8)
	}
	got, err := bcn.UnpackData(packed)
	if err != nil {
		t.Fatalf("UnpackData: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackEmptyPayload(t *testing.T) {
	packed, err := bcn.PackData(nil)
	if err != nil {
		t.Fatalf("PackData(nil): %v", err)
	}
	got, err := bcn.UnpackData(packed)
	if err != nil {
		t.Fatalf("UnpackData: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unpacked %d bytes, want 0", len(got))
	}
}

func TestUnpackErrors(t *testing.T) {
	if _, err := bcn.UnpackData([]byte("short")); bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("short payload: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}

	bad := []byte("WHAT\x00\x00\x00\x00")
	if _, err := bcn.UnpackData(bad); bcn.CodeOf(err) != bcn.ErrUnsupportedFormat {
		t.Fatalf("unknown magic: got %v, want BCN_ERR_UNSUPPORTED_FORMAT", err)
	}

	// COPY header promising more bytes than follow.
	copyShort := append([]byte("COPY\x10\x00\x00\x00"), 1, 2, 3)
	if _, err := bcn.UnpackData(copyShort); bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("short COPY body: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}

	// A valid LZ4 stream with its tail chopped off.
	data := make([]byte, 128*1024)
	for i := range data {
		data[i] = byte(i % 7)
	}
	packed, err := bcn.PackData(data)
	if err != nil {
		t.Fatalf("PackData: %v", err)
	}
	if string(packed[:4]) != "LZ4 " {
		t.Skipf("payload stored as %q, cannot truncate a chunk stream", packed[:4])
	}
	if _, err := bcn.UnpackData(packed[:len(packed)-5]); bcn.CodeOf(err) != bcn.ErrNotEnoughData {
		t.Fatalf("truncated stream: got %v, want BCN_ERR_NOT_ENOUGH_DATA", err)
	}
}
