// Package bitstream provides a bit-addressable cursor over an in-memory
// byte buffer.
//
// Bits are delivered least-significant-bit first, the packing order used by
// DEFLATE (RFC 1951, section 3.1.1). Reads past the end of the buffer return
// the remaining bits zero-padded in the high positions and pin the cursor at
// the logical end; truncation is detected structurally by callers, not here.
package bitstream

import (
	"fmt"
	"math"
)

const bitsPerByte = 8

// position addresses a single bit: byte index plus bit index within the byte.
// bit is always < 8.
type position struct {
	byte int
	bit  int
}

// addBits returns the position n bits forward. ok is false when the byte
// index would overflow; the addition is checked, never wrapping.
func (p position) addBits(n int) (position, bool) {
	q := position{
		byte: p.byte + n/bitsPerByte,
		bit:  p.bit + n%bitsPerByte,
	}
	if q.byte < p.byte {
		return position{}, false
	}
	if q.bit >= bitsPerByte {
		if q.byte == math.MaxInt {
			return position{}, false
		}
		q.byte++
		q.bit -= bitsPerByte
	}
	return q, true
}

// Reader reads bits from a byte slice. The slice is never mutated. The
// zero value is not usable; construct with NewReader.
//
// Methods come in two tiers: the fallible tier reports failure through a
// bool, the Must tier panics. The Must tier is for call sites that already
// established the width precondition, such as fixed-size header reads.
type Reader struct {
	data []byte
	pos  position
	eof  bool
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// EOF reports whether a past-the-end read has occurred. Once set it never
// clears.
func (r *Reader) EOF() bool { return r.eof }

// PeekBits returns the next n bits without advancing. The first bit read
// lands in the lowest-order position of the result. If fewer than n bits
// remain, the available bits are returned zero-padded high. ok is false only
// when n is outside [0, 64] or the position arithmetic overflows.
func (r *Reader) PeekBits(n int) (uint64, bool) {
	if n < 0 || n > 64 {
		return 0, false
	}

	var result uint64
	rem := n
	cur := r.pos
	for rem > 0 {
		if cur.byte >= len(r.data) {
			return result, true
		}

		take := rem
		if avail := bitsPerByte - cur.bit; take > avail {
			take = avail
		}
		mask := uint64(1)<<take - 1
		bits := uint64(r.data[cur.byte]>>cur.bit) & mask
		result |= bits << (n - rem)

		rem -= take
		next, ok := cur.addBits(take)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return result, true
}

// Advance moves the cursor forward n bits. Crossing the end of the buffer
// sets the permanent EOF flag and pins the cursor at the logical end; the
// cursor never points past it. ok is false only on position overflow.
func (r *Reader) Advance(n int) bool {
	if n < 0 {
		return false
	}
	if r.eof {
		return true
	}
	next, ok := r.pos.addBits(n)
	if !ok {
		return false
	}
	if next.byte >= len(r.data) {
		r.eof = true
		r.pos = position{byte: len(r.data)}
	} else {
		r.pos = next
	}
	return true
}

// ReadBits peeks n bits and advances past them.
func (r *Reader) ReadBits(n int) (uint64, bool) {
	v, ok := r.PeekBits(n)
	if !ok {
		return 0, false
	}
	if !r.Advance(n) {
		return 0, false
	}
	return v, true
}

// MustReadBits is the asserting tier of ReadBits. It panics when ReadBits
// would report failure, which is an API misuse, not a data error.
func (r *Reader) MustReadBits(n int) uint64 {
	v, ok := r.ReadBits(n)
	if !ok {
		panic(fmt.Sprintf("bitstream: cannot read %d bits", n))
	}
	return v
}

// AlignToByte advances to the next byte boundary. No-op when already
// aligned.
func (r *Reader) AlignToByte() bool {
	if r.pos.bit == 0 {
		return true
	}
	return r.Advance(bitsPerByte - r.pos.bit)
}

// ReadByte reads the next 8 bits as a byte.
func (r *Reader) ReadByte() (byte, bool) {
	v, ok := r.ReadBits(bitsPerByte)
	return byte(v), ok
}

// ReadFull fills buf with the next len(buf) bytes. Bytes past the end of
// the input read as zero, matching the bit-level truncation policy.
func (r *Reader) ReadFull(buf []byte) bool {
	for i := range buf {
		b, ok := r.ReadByte()
		if !ok {
			return false
		}
		buf[i] = b
	}
	return true
}
