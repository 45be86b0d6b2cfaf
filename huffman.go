package inflate

import (
	"fmt"
	"math/bits"
)

// LookupTable is a flat canonical-Huffman decoding table.
//
// The table has 2^maxBits slots. A consumer peeks maxBits bits from the
// stream (LSB-first), indexes the table and learns both the decoded symbol
// and how many bits the code actually occupies, so decoding is one lookup
// per symbol instead of a tree walk. Every slot whose low `length` bits
// match a code carries that code's symbol; the remaining high bits are
// don't-care suffix.
//
// A LookupTable is immutable once built.
type LookupTable struct {
	entries []entry
	maxBits uint8
}

type entry struct {
	symbol uint16
	length uint8
}

// NewLookupTable builds a table from per-symbol code lengths, following the
// canonical code construction of RFC 1951, section 3.2.2. A length of zero
// means the symbol does not occur and receives no slot. maxBits is the
// longest code length in use.
//
// Code lengths that over-subscribe the code space are malformed input and
// yield ErrInvalidLengths. A length exceeding maxBits, or maxBits outside
// [1, 64], is a caller contract violation and panics.
func NewLookupTable(codeLengths []uint8, maxBits uint8) (*LookupTable, error) {
	if maxBits < 1 || maxBits > 64 {
		panic(fmt.Sprintf("inflate: lookup table maxBits %d out of range", maxBits))
	}

	// Count the codes of each length. Length zero marks an unused symbol
	// and takes no part in code assignment.
	count := make([]int, maxBits+1)
	for _, n := range codeLengths {
		if n > maxBits {
			panic(fmt.Sprintf("inflate: code length %d exceeds maxBits %d", n, maxBits))
		}
		if n > 0 {
			count[n]++
		}
	}

	// Numerically smallest canonical code of each length.
	nextCode := make([]int, maxBits+2)
	code := 0
	for n := 0; n <= int(maxBits); n++ {
		code = (code + count[n]) << 1
		nextCode[n+1] = code
	}

	t := &LookupTable{
		entries: make([]entry, 1<<maxBits),
		maxBits: maxBits,
	}

	for symbol, length := range codeLengths {
		if length == 0 {
			continue
		}
		code := nextCode[length]
		nextCode[length]++
		if code >= 1<<length {
			return nil, ErrInvalidLengths
		}

		// The code occupies the high `length` bits of a maxBits-wide
		// index; every low-bit suffix maps to the same symbol. Canonical
		// codes are MSB-first on the wire while the stream delivers bits
		// LSB-first, so each index is bit-reversed before it is written.
		shift := maxBits - length
		start := code << shift
		for i := start; i < start+1<<shift; i++ {
			rev := bits.Reverse64(uint64(i)) >> (64 - maxBits)
			t.entries[rev] = entry{symbol: uint16(symbol), length: length}
		}
	}

	return t, nil
}

// MaxBits returns the table width: the number of bits a consumer should
// peek before calling Get.
func (t *LookupTable) MaxBits() uint8 { return t.maxBits }

// Get looks up the slot for code, using only its low MaxBits bits. A
// returned length of zero means no code maps to the slot; consumers must
// treat that as an invalid symbol.
func (t *LookupTable) Get(code uint64) (symbol int, length uint8) {
	e := t.entries[code&(1<<t.maxBits-1)]
	return int(e.symbol), e.length
}

// Fixed tables for BTYPE 01 blocks, RFC 1951 section 3.2.6. Produced by the
// same constructor as dynamic tables; they are plain data, not a separate
// code path.
var (
	fixedLiteralTable  = mustLookupTable(fixedLiteralLengths(), 9)
	fixedDistanceTable = mustLookupTable(fixedDistanceLengths(), 5)
)

func fixedLiteralLengths() []uint8 {
	lengths := make([]uint8, 288)
	for i := range lengths {
		switch {
		case i < 144:
			lengths[i] = 8
		case i < 256:
			lengths[i] = 9
		case i < 280:
			lengths[i] = 7
		default:
			lengths[i] = 8
		}
	}
	return lengths
}

func fixedDistanceLengths() []uint8 {
	lengths := make([]uint8, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

func mustLookupTable(codeLengths []uint8, maxBits uint8) *LookupTable {
	t, err := NewLookupTable(codeLengths, maxBits)
	if err != nil {
		panic(err)
	}
	return t
}
