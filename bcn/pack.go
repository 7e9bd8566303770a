package bcn

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Packed surface payloads keep compressed texture data small at rest.
// The framing is a 4-byte magic followed by either the raw bytes or an
// LZ4 chunk stream:
//
//	"COPY" u32(size) raw bytes
//	"LZ4 " u32(uncompressed size) chunks
//
// Each chunk is a 3-byte little-endian compressed size, a flag byte
// (0x80 marks the final chunk) and the chunk payload. Chunks compress
// independently so they can be inflated without carrying state.
const (
	packMagicCopy = "COPY"
	packMagicLZ4  = "LZ4 "

	// packChunkSize is the uncompressed chunk granularity.
	packChunkSize = 64 * 1024
)

// PackData compresses a surface's data payload. Data that does not
// compress well is stored verbatim under the COPY magic.
func PackData(data []byte) ([]byte, error) {
	if len(data) > 0x7FFFFFFF {
		return nil, newError(ErrPixelCountOverflow,
			fmt.Sprintf("bcn: %d bytes is too large to pack", len(data)))
	}

	// Tiny payloads gain nothing from compression.
	if len(data) < 1024 {
		return packCopy(data), nil
	}

	var stream bytes.Buffer
	stream.WriteString(packMagicLZ4)
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(data)))
	stream.Write(hdr[:])

	buf := make([]byte, lz4.CompressBlockBound(packChunkSize))

	for i := 0; i < len(data); i += packChunkSize {
		end := i + packChunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		last := end == len(data)

		n, err := lz4.CompressBlockHC(chunk, buf, 0, nil, nil)
		if err != nil || n == 0 || n*100 > len(chunk)*85 {
			// Incompressible somewhere, store the whole payload raw.
			return packCopy(data), nil
		}

		stream.WriteByte(byte(n))
		stream.WriteByte(byte(n >> 8))
		stream.WriteByte(byte(n >> 16))
		if last {
			stream.WriteByte(0x80)
		} else {
			stream.WriteByte(0x00)
		}
		stream.Write(buf[:n])
	}

	if stream.Len() >= len(data)+8 {
		return packCopy(data), nil
	}
	return stream.Bytes(), nil
}

func packCopy(data []byte) []byte {
	out := make([]byte, 0, len(data)+8)
	out = append(out, packMagicCopy...)
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(data)))
	out = append(out, hdr[:]...)
	return append(out, data...)
}

// UnpackData inflates a payload produced by PackData.
func UnpackData(packed []byte) ([]byte, error) {
	if len(packed) < 8 {
		return nil, newError(ErrNotEnoughData, "bcn: packed payload shorter than its header")
	}
	magic := string(packed[:4])
	size := int(binary.LittleEndian.Uint32(packed[4:8]))
	body := packed[8:]

	switch magic {
	case packMagicCopy:
		if len(body) != size {
			return nil, newError(ErrNotEnoughData,
				fmt.Sprintf("bcn: COPY payload holds %d bytes, header says %d", len(body), size))
		}
		out := make([]byte, size)
		copy(out, body)
		return out, nil
	case packMagicLZ4:
	default:
		return nil, newError(ErrUnsupportedFormat, "bcn: unknown pack magic "+fmt.Sprintf("%q", magic))
	}

	out := make([]byte, size)
	outIdx := 0
	for {
		if len(body) < 4 {
			return nil, newError(ErrNotEnoughData, "bcn: packed chunk stream truncated")
		}
		cSize := int(body[0]) | int(body[1])<<8 | int(body[2])<<16
		flags := body[3]
		body = body[4:]
		if flags&^0x80 != 0 {
			return nil, newError(ErrNotEnoughData,
				fmt.Sprintf("bcn: unknown chunk flags 0x%02x", flags))
		}
		if cSize <= 0 || cSize > len(body) {
			return nil, newError(ErrNotEnoughData,
				fmt.Sprintf("bcn: chunk size %d exceeds remaining %d bytes", cSize, len(body)))
		}

		want := packChunkSize
		if want > size-outIdx {
			want = size - outIdx
		}
		if want <= 0 {
			return nil, newError(ErrNotEnoughData, "bcn: chunk stream longer than its header size")
		}
		n, err := lz4.UncompressBlock(body[:cSize], out[outIdx:outIdx+want])
		if err != nil {
			return nil, newError(ErrNotEnoughData, "bcn: lz4 chunk decode: "+err.Error())
		}
		outIdx += n
		body = body[cSize:]

		if flags&0x80 != 0 {
			break
		}
	}

	if outIdx != size {
		return nil, newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: unpacked %d bytes, header says %d", outIdx, size))
	}
	if len(body) != 0 {
		return nil, newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: %d trailing bytes after final chunk", len(body)))
	}
	return out, nil
}
