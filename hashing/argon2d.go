package hashing

import (
	_ "unsafe" // for go:linkname

	_ "golang.org/x/crypto/argon2"
)

// argon2dMode selects Argon2d in argon2dDeriveKey; it mirrors the mode
// numbering inside golang.org/x/crypto/argon2.
const argon2dMode = 0

// argon2dDeriveKey is the unexported Argon2 core of golang.org/x/crypto.
// That package only exports the i and id variants.
//
//go:linkname argon2dDeriveKey golang.org/x/crypto/argon2.deriveKey
func argon2dDeriveKey(mode int, password, salt, secret, data []byte, time, memory uint32, threads uint8, keyLen uint32) []byte
