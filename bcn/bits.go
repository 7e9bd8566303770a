package bcn

import "encoding/binary"

// bitReader extracts little-endian bit fields from one compressed block.
//
// The block is held as two 64-bit halves so field extraction never touches
// the backing slice again; fields that straddle the halves are stitched
// together on each read. Reading more than the 128 bits of a block is a
// programming error and panics rather than returning truncated data.
type bitReader struct {
	low, high uint64
	consumed  uint
}

// newBitReader reads an 8 or 16 byte block. Shorter 8-byte blocks leave
// the high half zero.
func newBitReader(block []byte) bitReader {
	r := bitReader{low: binary.LittleEndian.Uint64(block[:8])}
	if len(block) >= 16 {
		r.high = binary.LittleEndian.Uint64(block[8:16])
	}
	return r
}

// bits extracts the next n bits, n <= 32.
func (r *bitReader) bits(n uint) uint32 {
	r.consumed += n
	if r.consumed > 128 {
		panic("bcn: bit read past end of block")
	}
	mask := uint64(1)<<n - 1
	v := r.low & mask
	r.low >>= n
	r.low |= (r.high & mask) << (64 - n)
	r.high >>= n
	return uint32(v)
}

func (r *bitReader) bit() uint32 {
	return r.bits(1)
}

// bitsReversed extracts n bits and reverses their order. BC6H stores the
// high bits of some endpoint fields reversed.
func (r *bitReader) bitsReversed(n uint) uint32 {
	v := r.bits(n)
	var out uint32
	for i := uint(0); i < n; i++ {
		out = out<<1 | v&1
		v >>= 1
	}
	return out
}

// bitWriter packs little-endian bit fields into a block buffer.
type bitWriter struct {
	buf [16]byte
	pos uint
}

// put appends the low n bits of v, n <= 32.
func (w *bitWriter) put(v uint32, n uint) {
	if w.pos+n > 128 {
		panic("bcn: bit write past end of block")
	}
	for i := uint(0); i < n; i++ {
		if v>>i&1 != 0 {
			w.buf[(w.pos+i)>>3] |= 1 << ((w.pos + i) & 7)
		}
	}
	w.pos += n
}
