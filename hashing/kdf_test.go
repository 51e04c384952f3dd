package hashing_test

import (
	"encoding/hex"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"

	"github.com/hasbyte1/go-crypto-utils/hashing"
	"github.com/hasbyte1/go-crypto-utils/result"
)

// ──────────────────────────────────────────────────────────────────────────────
// Scrypt
// ──────────────────────────────────────────────────────────────────────────────

func TestScrypt_KnownVector(t *testing.T) {
	r := hashing.Scrypt("password", "salt", hashing.ScryptParams{N: 1 << 16, R: 8, P: 1, KeyLen: 32})
	require.True(t, r.IsOk(), "unexpected failure: %v", r.Failure())
	assert.Equal(t,
		"f9149cac9fa9240968a39045481e3a921d0be9c57016d919d8294d0a33fa3212",
		hex.EncodeToString(r.Value()))
}

func TestScrypt_AcceptsMixedInputTypes(t *testing.T) {
	params := hashing.ScryptParams{N: 16, R: 1, P: 1, KeyLen: 16}
	a := hashing.Scrypt("pw", []byte("salt"), params)
	b := hashing.Scrypt([]byte("pw"), "salt", params)
	require.True(t, a.IsOk())
	assert.Equal(t, a.Value(), b.Value())

	want, err := scrypt.Key([]byte("pw"), []byte("salt"), 16, 1, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, want, a.Value())
}

func TestScrypt_NotPowerOfTwo(t *testing.T) {
	r := hashing.Scrypt("password", "salt", hashing.ScryptParams{N: 123, R: 8, P: 1, KeyLen: 32})
	require.True(t, r.IsFailure())
	assert.Equal(t, result.PasswordHashing, r.Failure().Category)
	assert.Contains(t, r.Failure().Error(), "power of 2")
	assert.Nil(t, r.Value())
}

func TestScrypt_Failures(t *testing.T) {
	tests := []struct {
		name   string
		params hashing.ScryptParams
		target error
	}{
		{"r=0", hashing.ScryptParams{N: 16, R: 0, P: 1, KeyLen: 16}, hashing.ErrInvalidOption},
		{"p=0", hashing.ScryptParams{N: 16, R: 1, P: 0, KeyLen: 16}, hashing.ErrInvalidOption},
		{"key_len=0", hashing.ScryptParams{N: 16, R: 1, P: 1, KeyLen: 0}, hashing.ErrInvalidOption},
		{"over max mem", hashing.ScryptParams{N: 1024, R: 8, P: 1, KeyLen: 16, MaxMem: 1024}, hashing.ErrMemoryLimit},
		{"over default max mem", hashing.ScryptParams{N: 1 << 20, R: 16, P: 1, KeyLen: 16}, hashing.ErrMemoryLimit},
		{"negative max mem", hashing.ScryptParams{N: 1 << 22, R: 8, P: 1, KeyLen: 32, MaxMem: -1}, hashing.ErrInvalidOption},
		{"n=1", hashing.ScryptParams{N: 1, R: 1, P: 1, KeyLen: 16}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hashing.Scrypt("pw", "salt", tt.params).Unwrap()
			require.Error(t, err)
			assert.True(t, result.IsPasswordHashingError(err))
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2
// ──────────────────────────────────────────────────────────────────────────────

var slowArgon2 = hashing.Argon2Params{Time: 2, Memory: 65536, Threads: 1}

func TestArgon2d_ShortSaltFails(t *testing.T) {
	r := hashing.Argon2d("password", "salt", slowArgon2)
	require.True(t, r.IsFailure())
	assert.Equal(t, result.PasswordHashing, r.Failure().Category)
	assert.ErrorIs(t, r.Failure(), hashing.ErrSaltTooShort)
}

func TestArgon2d_LongerSaltSucceeds(t *testing.T) {
	r := hashing.Argon2d("password", "longer_salt", slowArgon2)
	require.True(t, r.IsOk(), "unexpected failure: %v", r.Failure())
	assert.Len(t, r.Value(), 32)
}

func TestArgon2_VariantsMatchProvider(t *testing.T) {
	p := hashing.Argon2Params{Time: 1, Memory: 64, Threads: 2, KeyLen: 24}
	pw, salt := []byte("password"), []byte("somesalt")

	id := hashing.Argon2id(pw, salt, p)
	require.True(t, id.IsOk())
	assert.Equal(t, argon2.IDKey(pw, salt, 1, 64, 2, 24), id.Value())

	i := hashing.Argon2i(pw, salt, p)
	require.True(t, i.IsOk())
	assert.Equal(t, argon2.Key(pw, salt, 1, 64, 2, 24), i.Value())

	d := hashing.Argon2d(pw, salt, p)
	require.True(t, d.IsOk())
	assert.Len(t, d.Value(), 24)
	assert.NotEqual(t, i.Value(), d.Value())
	assert.NotEqual(t, id.Value(), d.Value())
}

func TestArgon2d_Deterministic(t *testing.T) {
	p := hashing.Argon2Params{Time: 1, Memory: 32, Threads: 1}
	a := hashing.Argon2d("pw", "saltsalt", p)
	b := hashing.Argon2d("pw", "saltsalt", p)
	require.True(t, a.IsOk())
	assert.Equal(t, a.Value(), b.Value())
}

func TestArgon2_ZeroKeyLenUsesDefault(t *testing.T) {
	r := hashing.Argon2id("pw", "saltsalt", hashing.Argon2Params{Time: 1, Memory: 32, Threads: 1})
	require.True(t, r.IsOk())
	assert.Len(t, r.Value(), int(hashing.DefaultArgon2KeyLen))
}

func TestArgon2_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params hashing.Argon2Params
	}{
		{"time=0", hashing.Argon2Params{Time: 0, Memory: 64, Threads: 1}},
		{"threads=0", hashing.Argon2Params{Time: 1, Memory: 64, Threads: 0}},
		{"memory<8p", hashing.Argon2Params{Time: 1, Memory: 15, Threads: 2}},
		{"key_len<4", hashing.Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 3}},
	}
	fns := map[string]func(string, string, hashing.Argon2Params) result.Result[[]byte]{
		"argon2d":  hashing.Argon2d[string, string],
		"argon2i":  hashing.Argon2i[string, string],
		"argon2id": hashing.Argon2id[string, string],
	}
	for _, tt := range tests {
		for name, fn := range fns {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				r := fn("pw", "saltsalt", tt.params)
				require.True(t, r.IsFailure())
				assert.Equal(t, result.PasswordHashing, r.Failure().Category)
				assert.ErrorIs(t, r.Failure(), hashing.ErrInvalidOption)
			})
		}
	}
}

func TestArgon2_MemoryLimit(t *testing.T) {
	tests := []struct {
		name   string
		params hashing.Argon2Params
	}{
		{"max uint32 KiB", hashing.Argon2Params{Time: 1, Memory: math.MaxUint32, Threads: 1}},
		{"just over default", hashing.Argon2Params{Time: 1, Memory: 1<<20 + 1, Threads: 1}},
		{"over explicit max", hashing.Argon2Params{Time: 1, Memory: 64, Threads: 1, MaxMem: 32 * 1024}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := hashing.Argon2id("pw", "saltsalt", tt.params)
			require.True(t, r.IsFailure())
			assert.Equal(t, result.PasswordHashing, r.Failure().Category)
			assert.ErrorIs(t, r.Failure(), hashing.ErrMemoryLimit)
		})
	}

	r := hashing.Argon2id("pw", "saltsalt", hashing.Argon2Params{Time: 1, Memory: 32, Threads: 1, MaxMem: 32 * 1024})
	require.True(t, r.IsOk(), "unexpected failure: %v", r.Failure())
	assert.Len(t, r.Value(), int(hashing.DefaultArgon2KeyLen))
}

// ──────────────────────────────────────────────────────────────────────────────
// Derive
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_Dispatch(t *testing.T) {
	pw, salt := []byte("pw"), []byte("saltsalt")
	params := hashing.KDFParams{
		Scrypt: hashing.ScryptParams{N: 16, R: 1, P: 1, KeyLen: 16},
		Argon2: hashing.Argon2Params{Time: 1, Memory: 32, Threads: 1, KeyLen: 16},
	}

	assert.Equal(t, hashing.Scrypt(pw, salt, params.Scrypt).Value(),
		hashing.Derive(hashing.DriverScrypt, pw, salt, params).Value())
	assert.Equal(t, hashing.Argon2d(pw, salt, params.Argon2).Value(),
		hashing.Derive(hashing.DriverArgon2d, pw, salt, params).Value())
	assert.Equal(t, hashing.Argon2i(pw, salt, params.Argon2).Value(),
		hashing.Derive(hashing.DriverArgon2i, pw, salt, params).Value())
	assert.Equal(t, hashing.Argon2id(pw, salt, params.Argon2).Value(),
		hashing.Derive(hashing.DriverArgon2id, pw, salt, params).Value())
}

func TestDerive_Unsupported(t *testing.T) {
	for _, alg := range []hashing.DriverName{hashing.DriverBcrypt, "md5", ""} {
		_, err := hashing.Derive(alg, []byte("pw"), []byte("saltsalt"), hashing.KDFParams{}).Unwrap()
		assert.ErrorIs(t, err, hashing.ErrUnsupportedAlgorithm, alg)
		assert.True(t, result.IsPasswordHashingError(err))
	}
}

func TestKDF_FailuresNeverOtherCategories(t *testing.T) {
	_, err := hashing.Argon2i("pw", "", hashing.Argon2Params{}).Unwrap()
	var f *result.Failure
	require.True(t, errors.As(err, &f))
	assert.False(t, result.IsEncodingError(err))
	assert.False(t, result.IsHashingError(err))
	assert.Equal(t, "PasswordHashingError", f.Category.String())
}
