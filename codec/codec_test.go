package codec_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-crypto-utils/codec"
	"github.com/hasbyte1/go-crypto-utils/result"
)

// ──────────────────────────────────────────────────────────────────────────────
// Hex
// ──────────────────────────────────────────────────────────────────────────────

func TestHex_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("hello world"),
		codec.RandomBytes(64),
	}
	for _, in := range inputs {
		enc := codec.BytesToHex(in)
		require.True(t, enc.IsOk())

		dec := codec.HexToBytes(enc.Value())
		require.True(t, dec.IsOk(), "decode %q", enc.Value())
		assert.Equal(t, in, dec.Value())
	}
}

func TestHex_EmptyRoundTrip(t *testing.T) {
	enc := codec.BytesToHex(nil)
	require.True(t, enc.IsOk())
	assert.Empty(t, enc.Value())

	dec := codec.HexToBytes("")
	require.True(t, dec.IsOk())
	assert.Empty(t, dec.Value())
}

func TestBytesToHex_Lowercase(t *testing.T) {
	assert.Equal(t, "abcdef0102", codec.BytesToHex([]byte{0xab, 0xcd, 0xef, 0x01, 0x02}).Value())
}

func TestHexToBytes_AcceptsUppercase(t *testing.T) {
	assert.Equal(t, []byte{0xab, 0xcd}, codec.HexToBytes("ABcd").Value())
}

func TestHexToBytes_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"odd length", "abc"},
		{"single char", "a"},
		{"non-hex", "zz"},
		{"non-hex later", "00gg"},
		{"whitespace", "00 11"},
		{"prefix", "0x00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := codec.HexToBytes(tt.input)
			require.True(t, r.IsFailure())
			assert.True(t, result.IsEncodingError(r.Failure()))
			assert.False(t, result.IsHashingError(r.Failure()))
		})
	}
}

func TestHexToBytes_CauseIsProviderError(t *testing.T) {
	r := codec.HexToBytes("abc")
	assert.ErrorIs(t, r.Failure(), hex.ErrLength)

	r = codec.HexToBytes("zz")
	var invalid hex.InvalidByteError
	assert.ErrorAs(t, r.Failure(), &invalid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Base64
// ──────────────────────────────────────────────────────────────────────────────

func TestBase64_RoundTrip(t *testing.T) {
	in := []byte{0xfb, 0xff, 0x00, 0x10}
	enc := codec.BytesToBase64(in)
	require.True(t, enc.IsOk())
	assert.Equal(t, "+/8AEA==", enc.Value())
	assert.Equal(t, in, codec.Base64ToBytes(enc.Value()).Value())
}

func TestBase64ToBytes_URLSafeFallback(t *testing.T) {
	r := codec.Base64ToBytes("-_8AEA==")
	require.True(t, r.IsOk())
	assert.Equal(t, []byte{0xfb, 0xff, 0x00, 0x10}, r.Value())
}

func TestBase64ToBytes_Invalid(t *testing.T) {
	r := codec.Base64ToBytes("not base64!")
	require.True(t, r.IsFailure())
	assert.True(t, result.IsEncodingError(r.Failure()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Numbers
// ──────────────────────────────────────────────────────────────────────────────

func TestNumberToBytes(t *testing.T) {
	tests := []struct {
		name   string
		value  *big.Int
		length int
		want   []byte
	}{
		{"zero", big.NewInt(0), 2, []byte{0, 0}},
		{"padded", big.NewInt(0x0102), 4, []byte{0, 0, 1, 2}},
		{"exact", big.NewInt(0xffff), 2, []byte{0xff, 0xff}},
		{"zero length zero value", big.NewInt(0), 0, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := codec.NumberToBytes(tt.value, tt.length)
			require.True(t, r.IsOk(), "unexpected failure: %v", r.Failure())
			assert.Equal(t, tt.want, r.Value())
		})
	}
}

func TestNumberToBytes_Failures(t *testing.T) {
	tests := []struct {
		name   string
		value  *big.Int
		length int
		cause  error
	}{
		{"too large", big.NewInt(0x10000), 2, codec.ErrNumberTooLarge},
		{"negative", big.NewInt(-1), 8, codec.ErrNegativeNumber},
		{"negative length", big.NewInt(1), -1, codec.ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := codec.NumberToBytes(tt.value, tt.length)
			require.True(t, r.IsFailure())
			assert.True(t, result.IsEncodingError(r.Failure()))
			assert.ErrorIs(t, r.Failure(), tt.cause)
		})
	}
}

func TestNumberToBytes_NilIsCapturedNotPanicking(t *testing.T) {
	var r result.Result[[]byte]
	require.NotPanics(t, func() { r = codec.NumberToBytes(nil, 4) })
	assert.True(t, result.IsEncodingError(r.Failure()))
}

func TestUint64ToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, codec.Uint64ToBytes(256, 8).Value())
	assert.True(t, codec.Uint64ToBytes(256, 1).IsFailure())
}

func TestBytesToNumber(t *testing.T) {
	r := codec.BytesToNumber([]byte{0x01, 0x00})
	require.True(t, r.IsOk())
	assert.Equal(t, int64(256), r.Value().Int64())

	assert.Equal(t, 0, codec.BytesToNumber(nil).Value().Sign())
}

func TestNumber_RoundTrip(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	packed := codec.NumberToBytes(v, 32)
	require.True(t, packed.IsOk())
	require.Len(t, packed.Value(), 32)

	assert.Equal(t, 0, v.Cmp(codec.BytesToNumber(packed.Value()).Value()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Non-fallible helpers
// ──────────────────────────────────────────────────────────────────────────────

func TestUTF8(t *testing.T) {
	b := codec.UTF8ToBytes("héllo")
	assert.Equal(t, []byte{'h', 0xc3, 0xa9, 'l', 'l', 'o'}, b)
	assert.Equal(t, "héllo", codec.BytesToUTF8(b))
}

func TestConcatBytes(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3}
	out := codec.ConcatBytes(a, nil, b, []byte{})
	assert.Equal(t, []byte{1, 2, 3}, out)

	out[0] = 9
	assert.Equal(t, byte(1), a[0], "result must not alias inputs")

	assert.Equal(t, []byte{}, codec.ConcatBytes())
}

func TestRandomBytes(t *testing.T) {
	a := codec.RandomBytes(32)
	b := codec.RandomBytes(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	assert.Len(t, codec.Random(), codec.DefaultRandomLength)
	assert.Empty(t, codec.RandomBytes(0))
	assert.Panics(t, func() { codec.RandomBytes(-1) })
}
