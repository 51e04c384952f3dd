package hashing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-crypto-utils/hashing"
)

func fastManagerOpts() hashing.ManagerOptions {
	return hashing.ManagerOptions{
		Default: hashing.DriverArgon2id,
		Bcrypt:  hashing.BcryptOptions{Cost: bcrypt.MinCost},
		Argon2:  fastArgon2Opts(),
		Scrypt:  fastScryptOpts(),
	}
}

// newTestManager returns a Manager with every driver registered using fast
// (test-safe) options.  It accepts testing.TB so benchmarks can share it.
func newTestManager(tb testing.TB) *hashing.Manager {
	tb.Helper()
	m, err := hashing.NewManagerWithOptions(fastManagerOpts())
	require.NoError(tb, err)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDefaultManager(t *testing.T) {
	m, err := hashing.NewDefaultManager()
	require.NoError(t, err)
	assert.Equal(t, hashing.DriverArgon2id, m.DefaultDriver())
	for _, d := range hashing.Drivers() {
		assert.True(t, m.HasDriver(d), "driver %q not registered", d)
	}
}

func TestNewManagerWithOptions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hashing.ManagerOptions)
		target error
	}{
		{"bcrypt cost", func(o *hashing.ManagerOptions) { o.Bcrypt.Cost = 1 }, hashing.ErrInvalidOption},
		{"argon2 time", func(o *hashing.ManagerOptions) { o.Argon2.Time = 0 }, hashing.ErrInvalidOption},
		{"scrypt n", func(o *hashing.ManagerOptions) { o.Scrypt.N = 100 }, hashing.ErrInvalidOption},
		{"unknown default", func(o *hashing.ManagerOptions) { o.Default = "md5" }, hashing.ErrDriverNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := fastManagerOpts()
			tt.mutate(&opts)
			_, err := hashing.NewManagerWithOptions(opts)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_RegisterDriver_Errors(t *testing.T) {
	m := hashing.NewManager(hashing.DriverArgon2id)
	h, _ := hashing.NewArgon2idHasher(fastArgon2Opts())
	assert.ErrorIs(t, m.RegisterDriver("", h), hashing.ErrEmptyDriverName)
	assert.ErrorIs(t, m.RegisterDriver("custom", nil), hashing.ErrNilHasher)
}

func TestManager_RegisterDriver_ReplaceExisting(t *testing.T) {
	m := newTestManager(t)
	newH, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost + 1})
	require.NoError(t, m.RegisterDriver(hashing.DriverBcrypt, newH))
	got, err := m.Driver(hashing.DriverBcrypt)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, got.(*hashing.BcryptHasher).Cost())
}

func TestManager_Driver_NotFound(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Driver("md5")
	assert.ErrorIs(t, err, hashing.ErrDriverNotFound)
}

func TestManager_SetDefaultDriver(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SetDefaultDriver(hashing.DriverScrypt))
	assert.Equal(t, hashing.DriverScrypt, m.DefaultDriver())

	hash, err := m.Make("pw")
	require.NoError(t, err)
	d, _ := hashing.DetectDriver(hash)
	assert.Equal(t, hashing.DriverScrypt, d)

	err = hashing.NewManager(hashing.DriverArgon2id).SetDefaultDriver("not-registered")
	assert.ErrorIs(t, err, hashing.ErrDriverNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Make / Check / NeedsRehash / Info
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_MakeAndCheck(t *testing.T) {
	m := newTestManager(t)
	hash, err := m.Make("secret")
	require.NoError(t, err)

	d, ok := hashing.DetectDriver(hash)
	require.True(t, ok)
	assert.Equal(t, hashing.DriverArgon2id, d)

	ok, err = m.Check("secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Check("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Check_NoDefaultDriver(t *testing.T) {
	m := hashing.NewManager(hashing.DriverArgon2id)
	_, err := m.Check("pw", "hash")
	assert.ErrorIs(t, err, hashing.ErrDriverNotFound)
	_, err = m.Make("pw")
	assert.ErrorIs(t, err, hashing.ErrDriverNotFound)
	_, err = m.Info("hash")
	assert.ErrorIs(t, err, hashing.ErrDriverNotFound)
}

func TestManager_CheckWithDetect_EveryDriver(t *testing.T) {
	m := newTestManager(t)
	for _, d := range hashing.Drivers() {
		t.Run(string(d), func(t *testing.T) {
			h, err := m.Driver(d)
			require.NoError(t, err)
			hash, err := h.Make("pw")
			require.NoError(t, err)

			ok, err := m.CheckWithDetect("pw", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			info, err := m.InfoWithDetect(hash)
			require.NoError(t, err)
			assert.Equal(t, d, info.Driver)
		})
	}
}

func TestManager_Detect_Unknown(t *testing.T) {
	m := newTestManager(t)
	_, err := m.CheckWithDetect("pw", "not-a-hash")
	assert.ErrorIs(t, err, hashing.ErrInvalidHash)
	_, err = m.InfoWithDetect("garbage")
	assert.ErrorIs(t, err, hashing.ErrInvalidHash)
	_, err = m.NeedsRehash("garbage")
	assert.ErrorIs(t, err, hashing.ErrInvalidHash)
}

func TestManager_NeedsRehash(t *testing.T) {
	m := newTestManager(t)

	hash, _ := m.Make("pw")
	needs, err := m.NeedsRehash(hash)
	require.NoError(t, err)
	assert.False(t, needs)

	bcH, _ := m.Driver(hashing.DriverBcrypt)
	legacy, _ := bcH.Make("pw")
	needs, err = m.NeedsRehash(legacy)
	require.NoError(t, err)
	assert.True(t, needs, "bcrypt hash with argon2id default")
}

// TestManager_Migration_BcryptToArgon2id simulates a bcrypt-to-argon2id
// migration: old hashes still verify, NeedsRehash flags them, and re-hashed
// values are no longer flagged.
func TestManager_Migration_BcryptToArgon2id(t *testing.T) {
	m := newTestManager(t)

	bcH, _ := m.Driver(hashing.DriverBcrypt)
	legacyHash, _ := bcH.Make("user-password")

	ok, err := m.CheckWithDetect("user-password", legacyHash)
	require.NoError(t, err)
	require.True(t, ok)

	needs, err := m.NeedsRehash(legacyHash)
	require.NoError(t, err)
	require.True(t, needs)

	newHash, err := m.Make("user-password")
	require.NoError(t, err)

	needs, err = m.NeedsRehash(newHash)
	require.NoError(t, err)
	assert.False(t, needs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_ConcurrentMakeCheck(t *testing.T) {
	m := newTestManager(t)
	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			hash, err := m.Make("concurrent-pw")
			if err != nil {
				errs <- err
				return
			}
			ok, err := m.CheckWithDetect("concurrent-pw", hash)
			if err != nil {
				errs <- err
				return
			}
			if !ok {
				errs <- errors.New("Check returned false for correct password")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestManager_ConcurrentRegisterAndRead(t *testing.T) {
	m := newTestManager(t)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
			_ = m.RegisterDriver(hashing.DriverBcrypt, h)
			_ = m.SetDefaultDriver(hashing.DriverBcrypt)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			_, _ = m.Driver(hashing.DriverBcrypt)
			_ = m.DefaultDriver()
		}
	}()

	wg.Wait()
}
