package codec

import (
	"crypto/rand"
	"fmt"
	"io"
	"slices"
)

// DefaultRandomLength is the number of bytes returned by [Random].
const DefaultRandomLength = 32

// UTF8ToBytes returns the UTF-8 bytes of s.
func UTF8ToBytes(s string) []byte { return []byte(s) }

// BytesToUTF8 returns b as a string.  Invalid UTF-8 sequences are kept as-is.
func BytesToUTF8(b []byte) string { return string(b) }

// ConcatBytes returns a new slice holding every part in order.  The result
// never aliases an input.
func ConcatBytes(parts ...[]byte) []byte {
	out := slices.Concat(parts...)
	if out == nil {
		out = []byte{}
	}
	return out
}

// Random returns [DefaultRandomLength] cryptographically random bytes.
func Random() []byte { return RandomBytes(DefaultRandomLength) }

// RandomBytes returns n cryptographically random bytes from crypto/rand.
//
// It panics if n is negative or if the entropy source cannot be read; there
// is no meaningful recovery from a missing entropy source at this layer.
func RandomBytes(n int) []byte {
	if n < 0 {
		panic(fmt.Sprintf("codec: negative random length %d", n))
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(fmt.Errorf("codec: entropy source unavailable: %w", err))
	}
	return b
}
