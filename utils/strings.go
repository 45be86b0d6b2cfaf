package utils

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// CString is a possibly NUL-terminated byte string, as found in decoded
// legacy payloads.
type CString []byte

// NullTerminateBytes returns the bytes up to the first NUL, or the whole
// slice when there is none.
func (c CString) NullTerminateBytes() []byte {
	i := bytes.IndexByte(c, 0)
	if i == -1 {
		return c
	} else if i == 0 {
		return nil
	} else {
		return c[:i]
	}
}

func (c CString) String() string { return string(c.NullTerminateBytes()) }

// Decode interprets the string in the given single-byte encoding. On a
// decoder failure it falls back to the raw bytes.
func (c CString) Decode(encoding *charmap.Charmap) string {
	buf, err := encoding.NewDecoder().Bytes(c.NullTerminateBytes())
	if err != nil {
		return c.String()
	}
	return string(buf)
}
