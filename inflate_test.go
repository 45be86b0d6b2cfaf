package inflate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamWriter assembles DEFLATE test streams bit by bit. Header fields are
// numbers packed LSB-first; Huffman codes go on the wire MSB-first.
type streamWriter struct {
	bytes []byte
	nbits int
}

// writeBits appends the low n bits of v, least significant bit first.
func (w *streamWriter) writeBits(v uint64, n int) {
	for i := 0; i < n; i++ {
		w.writeBit(v >> i & 1)
	}
}

// writeCode appends an n-bit Huffman code, most significant bit first.
func (w *streamWriter) writeCode(code uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit(code >> i & 1)
	}
}

func (w *streamWriter) writeBit(b uint64) {
	if w.nbits%8 == 0 {
		w.bytes = append(w.bytes, 0)
	}
	w.bytes[len(w.bytes)-1] |= byte(b) << (w.nbits % 8)
	w.nbits++
}

func (w *streamWriter) alignToByte() {
	for w.nbits%8 != 0 {
		w.writeBit(0)
	}
}

// writeStored emits a complete stored block.
func (w *streamWriter) writeStored(final bool, data []byte) {
	w.writeBlockHeader(final, btypeStored)
	w.alignToByte()
	w.writeBits(uint64(len(data)), 16)
	w.writeBits(uint64(^uint16(len(data))), 16)
	for _, b := range data {
		w.writeBits(uint64(b), 8)
	}
}

func (w *streamWriter) writeBlockHeader(final bool, btype uint64) {
	if final {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
	w.writeBits(btype, 2)
}

// Fixed-table code emission, RFC 1951 section 3.2.6.
func (w *streamWriter) writeFixedLiteral(b byte) {
	w.writeCode(uint64(0b00110000+int(b)), 8) // literals 0-143 are 8-bit codes
}

func (w *streamWriter) writeFixedSymbol(symbol int) {
	// Symbols 256-279 are the 7-bit codes 0000000-0010111.
	w.writeCode(uint64(symbol-256), 7)
}

func (w *streamWriter) writeFixedDistanceCode(code int) {
	w.writeCode(uint64(code), 5)
}

func TestDecodeStoredRoundTrip(t *testing.T) {
	// final=1, type=00, LEN=0x0005, NLEN=0xFFFA, five raw bytes.
	data := []byte{0x01, 0x05, 0x00, 0xfa, 0xff, 'h', 'e', 'l', 'l', 'o'}

	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestDecodeStoredEmpty(t *testing.T) {
	var w streamWriter
	w.writeStored(true, nil)

	out, err := Decode(w.bytes)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeStoredLengthMismatch(t *testing.T) {
	// NLEN is not the complement of LEN.
	data := []byte{0x01, 0x05, 0x00, 0xfa, 0xfe, 'h', 'e', 'l', 'l', 'o'}

	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrStoredLength)
}

func TestDecodeReservedBlockType(t *testing.T) {
	var w streamWriter
	w.writeBlockHeader(true, 0b11)

	_, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidBlockType)
}

func TestDecodeFixedLiterals(t *testing.T) {
	var w streamWriter
	w.writeBlockHeader(true, btypeFixed)
	for _, b := range []byte("Go") {
		w.writeFixedLiteral(b)
	}
	w.writeFixedSymbol(endOfBlock)

	out, err := Decode(w.bytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("Go"), out)
}

func TestDecodeOverlappingBackReference(t *testing.T) {
	// One literal "A" followed by length=5/distance=1 must produce
	// "AAAAAA": the copy re-reads bytes it appended itself.
	var w streamWriter
	w.writeBlockHeader(true, btypeFixed)
	w.writeFixedLiteral('A')
	w.writeFixedSymbol(259) // length 5, no extra bits
	w.writeFixedDistanceCode(0)
	w.writeFixedSymbol(endOfBlock)

	out, err := Decode(w.bytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAAAAA"), out)
}

func TestDecodeBackReferenceWithExtraBits(t *testing.T) {
	// Length symbol 265 (base 11, 1 extra bit) and distance code 4
	// (base 5, 1 extra bit) both carry refinement bits.
	var w streamWriter
	w.writeBlockHeader(true, btypeFixed)
	for _, b := range []byte("abcde") {
		w.writeFixedLiteral(b)
	}
	w.writeFixedSymbol(265)
	w.writeBits(1, 1) // length 11 + 1 = 12
	w.writeFixedDistanceCode(4)
	w.writeBits(0, 1) // distance 5
	w.writeFixedSymbol(endOfBlock)

	out, err := Decode(w.bytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdeabcdeabcdeab"), out)
}

func TestDecodeBackReferenceAcrossBlocks(t *testing.T) {
	// The output buffer persists across blocks: a back-reference in the
	// second block reaches bytes produced by the first.
	var w streamWriter
	w.writeStored(false, []byte("abc"))
	w.writeBlockHeader(true, btypeFixed)
	w.writeFixedSymbol(257) // length 3
	w.writeFixedDistanceCode(2)
	w.writeFixedSymbol(endOfBlock)

	out, err := Decode(w.bytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcabc"), out)
}

func TestDecodeDistanceUnderflow(t *testing.T) {
	// A back-reference with nothing before it in the output.
	var w streamWriter
	w.writeBlockHeader(true, btypeFixed)
	w.writeFixedSymbol(257)
	w.writeFixedDistanceCode(0)
	w.writeFixedSymbol(endOfBlock)

	_, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidDistance)
}

func TestDecodeInvalidDistanceCode(t *testing.T) {
	// The fixed distance table assigns codes 30 and 31, but the format
	// defines only 0-29.
	var w streamWriter
	w.writeBlockHeader(true, btypeFixed)
	w.writeFixedLiteral('A')
	w.writeFixedSymbol(257)
	w.writeFixedDistanceCode(30)
	w.writeFixedSymbol(endOfBlock)

	_, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestDecodeDynamicRepeatWithoutPrevious(t *testing.T) {
	// A dynamic block whose first code-length symbol is 16
	// (repeat previous) has nothing to repeat.
	var w streamWriter
	w.writeBlockHeader(true, btypeDynamic)
	w.writeBits(0, 5) // HLIT = 257
	w.writeBits(0, 5) // HDIST = 1
	w.writeBits(0, 4) // HCLEN = 4; transmitted order is 16, 17, 18, 0
	w.writeBits(1, 3) // symbol 16: length 1
	w.writeBits(0, 3) // symbol 17: unused
	w.writeBits(0, 3) // symbol 18: unused
	w.writeBits(1, 3) // symbol 0: length 1
	// Alphabet: symbol 0 -> code 0, symbol 16 -> code 1.
	w.writeCode(1, 1) // symbol 16 first thing

	_, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestDecodeDynamicLengthRunOverflow(t *testing.T) {
	// HLIT+HDIST = 258 lengths expected; 18-symbol runs of 138 zeros
	// overshoot the array on the third repeat.
	var w streamWriter
	w.writeBlockHeader(true, btypeDynamic)
	w.writeBits(0, 5)
	w.writeBits(0, 5)
	w.writeBits(0, 4)
	w.writeBits(0, 3)   // symbol 16: unused
	w.writeBits(0, 3)   // symbol 17: unused
	w.writeBits(1, 3)   // symbol 18: length 1
	w.writeBits(1, 3)   // symbol 0: length 1
	w.writeCode(1, 1)   // symbol 18
	w.writeBits(127, 7) // 138 zeros
	w.writeCode(1, 1)   // symbol 18
	w.writeBits(127, 7) // 276 > 258
	w.writeCode(1, 1)

	_, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidLengths)
}

func TestDecodeTruncatedStreamTerminates(t *testing.T) {
	var w streamWriter
	w.writeStored(false, []byte("stored data first"))
	w.writeBlockHeader(true, btypeFixed)
	for _, b := range []byte("truncate me anywhere") {
		w.writeFixedLiteral(b)
	}
	w.writeFixedSymbol(259)
	w.writeFixedDistanceCode(3)
	w.writeFixedSymbol(endOfBlock)

	full := w.bytes
	for n := 0; n < len(full); n++ {
		// Every prefix must return promptly: either an error or some
		// decoded output, never a hang or an out-of-range read.
		out, err := Decode(full[:n])
		if err == nil {
			assert.LessOrEqual(t, len(out), 64)
		}
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	// All-zero phantom reads look like a non-final stored block with a
	// failing length check.
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrStoredLength)
}

func TestDecodeNoPartialOutput(t *testing.T) {
	var w streamWriter
	w.writeStored(false, []byte("good block"))
	w.writeBlockHeader(true, 0b11)

	out, err := Decode(w.bytes)
	assert.ErrorIs(t, err, ErrInvalidBlockType)
	assert.Nil(t, out)
}
