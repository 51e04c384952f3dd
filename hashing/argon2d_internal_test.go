package hashing

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 9106 §5.1 exercises the secret and associated-data inputs, which the
// public API does not expose, so it runs against the linked core directly.
func TestArgon2dDeriveKey_RFC9106(t *testing.T) {
	password := bytes.Repeat([]byte{0x01}, 32)
	salt := bytes.Repeat([]byte{0x02}, 16)
	secret := bytes.Repeat([]byte{0x03}, 8)
	data := bytes.Repeat([]byte{0x04}, 12)

	want, err := hex.DecodeString("512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb")
	require.NoError(t, err)

	got := argon2dDeriveKey(argon2dMode, password, salt, secret, data, 3, 32, 4, 32)
	assert.Equal(t, want, got)
}
