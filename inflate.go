// Package inflate decompresses raw DEFLATE bitstreams (RFC 1951) held
// entirely in memory.
//
// The input is the bare compressed stream, with no zlib or gzip framing
// around it. Decoding is a pure function of the input: all state lives in
// the invocation, so independent Decode calls are safe to run concurrently.
package inflate

import (
	"github.com/cam-per/inflate/internal/bitstream"
)

// Block header fields, RFC 1951 section 3.2.3.
const (
	btypeStored  = 0b00
	btypeFixed   = 0b01
	btypeDynamic = 0b10

	endOfBlock  = 256
	lengthBase  = 257
	maxDistCode = 29
)

// Dynamic block header fields, RFC 1951 section 3.2.7.
const (
	numCodeLengthCodes = 19
	codeLengthMaxBits  = 7
	dynamicMaxBits     = 15
)

// codeExtra maps a length or distance code to its base value and the number
// of extra bits that refine it.
type codeExtra struct {
	base  int
	extra int
}

// lengthCodes is indexed by symbol-257 and covers symbols 257..285.
// RFC 1951, section 3.2.5.
var lengthCodes = [29]codeExtra{
	{3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0}, {10, 0},
	{11, 1}, {13, 1}, {15, 1}, {17, 1},
	{19, 2}, {23, 2}, {27, 2}, {31, 2},
	{35, 3}, {43, 3}, {51, 3}, {59, 3},
	{67, 4}, {83, 4}, {99, 4}, {115, 4},
	{131, 5}, {163, 5}, {195, 5}, {227, 5},
	{258, 0},
}

// distanceCodes is indexed by distance code 0..29. RFC 1951, section 3.2.5.
var distanceCodes = [30]codeExtra{
	{1, 0}, {2, 0}, {3, 0}, {4, 0},
	{5, 1}, {7, 1},
	{9, 2}, {13, 2},
	{17, 3}, {25, 3},
	{33, 4}, {49, 4},
	{65, 5}, {97, 5},
	{129, 6}, {193, 6},
	{257, 7}, {385, 7},
	{513, 8}, {769, 8},
	{1025, 9}, {1537, 9},
	{2049, 10}, {3073, 10},
	{4097, 11}, {6145, 11},
	{8193, 12}, {12289, 12},
	{16385, 13}, {24577, 13},
}

// codeLengthOrder is the transmission order of the code-length alphabet's
// own code lengths. RFC 1951, section 3.2.7.
var codeLengthOrder = [numCodeLengthCodes]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Decode decompresses a raw DEFLATE stream and returns the original bytes.
// On any malformed input it returns one of the package's sentinel errors
// and no output.
//
// A truncated stream does not fail at the point of truncation: reads past
// the end yield zero bits, and the damage surfaces as a structural error
// such as an invalid symbol or a failed length check.
func Decode(data []byte) ([]byte, error) {
	r := bitstream.NewReader(data)

	// The output is shared across all blocks of the stream because
	// back-references may reach into bytes produced by an earlier block.
	var out []byte

	for {
		final := r.MustReadBits(1)

		var err error
		switch r.MustReadBits(2) {
		case btypeStored:
			out, err = decodeStored(r, out)
		case btypeFixed:
			out, err = decodeBlock(r, out, fixedLiteralTable, fixedDistanceTable)
		case btypeDynamic:
			var litTable, distTable *LookupTable
			litTable, distTable, err = decodeDynamicTables(r)
			if err == nil {
				out, err = decodeBlock(r, out, litTable, distTable)
			}
		default:
			err = ErrInvalidBlockType
		}
		if err != nil {
			return nil, err
		}

		if final == 1 {
			return out, nil
		}
	}
}

// decodeStored handles a BTYPE 00 block: byte-aligned length-prefixed raw
// bytes, with NLEN as a one's-complement check on LEN.
func decodeStored(r *bitstream.Reader, out []byte) ([]byte, error) {
	r.AlignToByte()
	length := uint16(r.MustReadBits(16))
	nlength := uint16(r.MustReadBits(16))
	if length != ^nlength {
		return nil, ErrStoredLength
	}

	raw := make([]byte, length)
	r.ReadFull(raw)
	return append(out, raw...), nil
}

// resolveSymbol decodes one symbol: peek the table width, look the slot up,
// then consume exactly the bits the code occupies. A slot no code maps to
// is malformed input, as is asking for a symbol when no input remains;
// zero-padded phantom symbols must not keep a truncated stream alive.
func resolveSymbol(r *bitstream.Reader, t *LookupTable) (int, error) {
	if r.EOF() {
		return 0, ErrInvalidSymbol
	}
	code, ok := r.PeekBits(int(t.MaxBits()))
	if !ok {
		return 0, ErrInvalidSymbol
	}
	symbol, length := t.Get(code)
	if length == 0 || !r.Advance(int(length)) {
		return 0, ErrInvalidSymbol
	}
	return symbol, nil
}

// decodeBlock runs the symbol loop shared by fixed and dynamic blocks:
// literals are appended as-is, length codes trigger an LZ77 back-reference
// copy, and the end-of-block symbol terminates the loop.
func decodeBlock(r *bitstream.Reader, out []byte, litTable, distTable *LookupTable) ([]byte, error) {
	for {
		symbol, err := resolveSymbol(r, litTable)
		if err != nil {
			return nil, err
		}

		switch {
		case symbol < endOfBlock:
			out = append(out, byte(symbol))

		case symbol == endOfBlock:
			return out, nil

		case symbol-lengthBase < len(lengthCodes):
			length, err := readExtra(r, lengthCodes[symbol-lengthBase])
			if err != nil {
				return nil, err
			}

			distCode, err := resolveSymbol(r, distTable)
			if err != nil {
				return nil, err
			}
			if distCode > maxDistCode {
				return nil, ErrInvalidSymbol
			}
			distance, err := readExtra(r, distanceCodes[distCode])
			if err != nil {
				return nil, err
			}

			out, err = copyBackReference(out, distance, length)
			if err != nil {
				return nil, err
			}

		default:
			return nil, ErrInvalidSymbol
		}
	}
}

// readExtra refines a code's base value with its extra bits.
func readExtra(r *bitstream.Reader, ce codeExtra) (int, error) {
	extra, ok := r.ReadBits(ce.extra)
	if !ok {
		return 0, ErrInvalidSymbol
	}
	return ce.base + int(extra), nil
}

// copyBackReference appends length bytes read from distance bytes behind
// the current end of out. The copy is deliberately byte by byte: when
// distance < length the source range overlaps bytes this same copy appends,
// and a bulk copy would miss them.
func copyBackReference(out []byte, distance, length int) ([]byte, error) {
	for i := 0; i < length; i++ {
		pos := len(out) - distance
		if pos < 0 {
			return nil, ErrInvalidDistance
		}
		out = append(out, out[pos])
	}
	return out, nil
}

// decodeDynamicTables reads the BTYPE 10 header: the code-length alphabet's
// own lengths in permuted order, then the run-length-encoded literal/length
// and distance code lengths decoded with that alphabet.
func decodeDynamicTables(r *bitstream.Reader) (*LookupTable, *LookupTable, error) {
	hlit := int(r.MustReadBits(5)) + 257
	hdist := int(r.MustReadBits(5)) + 1
	hclen := int(r.MustReadBits(4)) + 4

	alphabetLengths := make([]uint8, numCodeLengthCodes)
	for i := 0; i < hclen; i++ {
		alphabetLengths[codeLengthOrder[i]] = uint8(r.MustReadBits(3))
	}
	alphabet, err := NewLookupTable(alphabetLengths, codeLengthMaxBits)
	if err != nil {
		return nil, nil, err
	}

	lengths, err := decodeCodeLengths(r, alphabet, hlit+hdist)
	if err != nil {
		return nil, nil, err
	}

	litTable, err := NewLookupTable(lengths[:hlit], dynamicMaxBits)
	if err != nil {
		return nil, nil, err
	}
	distTable, err := NewLookupTable(lengths[hlit:], dynamicMaxBits)
	if err != nil {
		return nil, nil, err
	}
	return litTable, distTable, nil
}

// decodeCodeLengths reads num code lengths using the code-length alphabet
// and its run-length symbols. RFC 1951, section 3.2.7:
//
//	 0-15: literal code length
//	16:    repeat the previous length 3 + 2 bits times
//	17:    repeat length 0 for 3 + 3 bits times
//	18:    repeat length 0 for 11 + 7 bits times
func decodeCodeLengths(r *bitstream.Reader, alphabet *LookupTable, num int) ([]uint8, error) {
	lengths := make([]uint8, num)
	for i := 0; i < num; {
		symbol, err := resolveSymbol(r, alphabet)
		if err != nil {
			return nil, err
		}

		var repeat int
		var value uint8
		switch {
		case symbol <= 15:
			lengths[i] = uint8(symbol)
			i++
			continue
		case symbol == 16:
			if i == 0 {
				return nil, ErrInvalidSymbol
			}
			n, ok := r.ReadBits(2)
			if !ok {
				return nil, ErrInvalidSymbol
			}
			repeat, value = 3+int(n), lengths[i-1]
		case symbol == 17:
			n, ok := r.ReadBits(3)
			if !ok {
				return nil, ErrInvalidSymbol
			}
			repeat = 3 + int(n)
		case symbol == 18:
			n, ok := r.ReadBits(7)
			if !ok {
				return nil, ErrInvalidSymbol
			}
			repeat = 11 + int(n)
		default:
			return nil, ErrInvalidSymbol
		}

		if i+repeat > num {
			return nil, ErrInvalidLengths
		}
		for ; repeat > 0; repeat-- {
			lengths[i] = value
			i++
		}
	}
	return lengths, nil
}
