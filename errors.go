package inflate

import "errors"

// Errors returned by Decode. Each one aborts the decode; no partial output
// accompanies an error.
var (
	// ErrInvalidBlockType reports the reserved block type 0b11.
	ErrInvalidBlockType = errors.New("inflate: invalid block type")

	// ErrStoredLength reports a stored block whose LEN field is not the
	// one's complement of its NLEN field.
	ErrStoredLength = errors.New("inflate: stored block length check mismatch")

	// ErrInvalidSymbol reports a Huffman code with no assigned symbol, or a
	// decoded symbol outside its alphabet's valid range.
	ErrInvalidSymbol = errors.New("inflate: invalid huffman symbol")

	// ErrInvalidDistance reports a back-reference pointing before the start
	// of the output produced so far.
	ErrInvalidDistance = errors.New("inflate: back-reference distance exceeds output")

	// ErrInvalidLengths reports a transmitted code length sequence that
	// over-subscribes the Huffman code space or overruns its bounds.
	ErrInvalidLengths = errors.New("inflate: invalid huffman code lengths")
)
