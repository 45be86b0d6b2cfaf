package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestCStringNullTerminateBytes(t *testing.T) {
	assert.Equal(t, []byte("abc"), CString("abc\x00def").NullTerminateBytes())
	assert.Equal(t, []byte("abc"), CString("abc").NullTerminateBytes())
	assert.Nil(t, CString("\x00abc").NullTerminateBytes())
}

func TestCStringString(t *testing.T) {
	assert.Equal(t, "abc", CString("abc\x00\x00\x00").String())
	assert.Equal(t, "", CString(nil).String())
}

func TestCStringDecode(t *testing.T) {
	raw := CString([]byte{'c', 'a', 'f', 0xe9, 0x00})
	assert.Equal(t, "café", raw.Decode(charmap.ISO8859_1))
}
