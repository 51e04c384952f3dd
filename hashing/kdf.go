package hashing

import (
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"

	"github.com/hasbyte1/go-crypto-utils/result"
)

// Input is the set of accepted password and salt types.
type Input interface {
	~string | ~[]byte
}

// ──────────────────────────────────────────────────────────────────────────────
// scrypt
// ──────────────────────────────────────────────────────────────────────────────

// DefaultScryptMaxMem is the memory ceiling applied when ScryptParams.MaxMem
// is zero: 1 GiB plus one KiB.
const DefaultScryptMaxMem = 1<<30 + 1<<10

// ScryptParams are the cost parameters of [Scrypt].
type ScryptParams struct {
	// N is the CPU/memory cost.  It must be a power of two greater than 1.
	N int `mapstructure:"n" yaml:"n"`

	// R is the block size.  Minimum: 1.
	R int `mapstructure:"r" yaml:"r"`

	// P is the parallelisation factor.  Minimum: 1.
	P int `mapstructure:"p" yaml:"p"`

	// KeyLen is the derived key length in bytes.  Minimum: 1.
	KeyLen int `mapstructure:"key_len" yaml:"key_len"`

	// MaxMem bounds 128·R·(N+P), the bytes scrypt will allocate.
	// Zero selects [DefaultScryptMaxMem].
	MaxMem int `mapstructure:"max_mem" yaml:"max_mem"`
}

var scryptKey = result.Wrap3(result.PasswordHashing, deriveScrypt)

// Scrypt derives a key from password and salt with scrypt.
//
// It fails when N is not a power of two greater than 1, when R, P or KeyLen
// are below 1, or when the memory the parameters require exceeds MaxMem.
func Scrypt[P, S Input](password P, salt S, params ScryptParams) result.Result[[]byte] {
	return scryptKey([]byte(password), []byte(salt), params)
}

func deriveScrypt(password, salt []byte, p ScryptParams) ([]byte, error) {
	if p.R < 1 || p.P < 1 {
		return nil, fmt.Errorf("%w: scrypt r and p must be ≥ 1, got r=%d p=%d", ErrInvalidOption, p.R, p.P)
	}
	if p.KeyLen < 1 {
		return nil, fmt.Errorf("%w: scrypt key length must be ≥ 1, got %d", ErrInvalidOption, p.KeyLen)
	}
	if p.MaxMem < 0 {
		return nil, fmt.Errorf("%w: scrypt max_mem must be ≥ 0, got %d", ErrInvalidOption, p.MaxMem)
	}
	maxMem := p.MaxMem
	if maxMem == 0 {
		maxMem = DefaultScryptMaxMem
	}
	// N is validated by the provider; only size the allocation for usable N.
	if p.N > 1 {
		blocks := uint64(p.N) + uint64(p.P)
		if uint64(p.R) > math.MaxUint64/128/blocks || 128*uint64(p.R)*blocks > uint64(maxMem) {
			return nil, fmt.Errorf("%w: scrypt needs 128·r·(N+p) bytes, limit is %d", ErrMemoryLimit, maxMem)
		}
	}
	return scrypt.Key(password, salt, p.N, p.R, p.P, p.KeyLen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2
// ──────────────────────────────────────────────────────────────────────────────

// MinArgon2SaltLen is the shortest salt any Argon2 variant accepts.
const MinArgon2SaltLen = 8

// DefaultArgon2MaxMem is the memory ceiling in bytes applied when
// Argon2Params.MaxMem is zero: 1 GiB.
const DefaultArgon2MaxMem uint64 = 1 << 30

// Argon2Params are the cost parameters of [Argon2d], [Argon2i] and [Argon2id].
type Argon2Params struct {
	// Time is the number of passes over memory.  Minimum: 1.
	Time uint32 `mapstructure:"time" yaml:"time"`

	// Memory is the memory cost in KiB.  Minimum: 8 × Threads.
	Memory uint32 `mapstructure:"memory" yaml:"memory"`

	// Threads is the degree of parallelism.  Minimum: 1.
	Threads uint8 `mapstructure:"threads" yaml:"threads"`

	// KeyLen is the derived key length in bytes.  Minimum: 4.
	// Zero selects [DefaultArgon2KeyLen].
	KeyLen uint32 `mapstructure:"key_len" yaml:"key_len"`

	// MaxMem bounds Memory×1024, the bytes Argon2 will allocate.
	// Zero selects [DefaultArgon2MaxMem].
	MaxMem uint64 `mapstructure:"max_mem" yaml:"max_mem"`
}

var (
	argon2dKey  = result.Wrap3(result.PasswordHashing, argon2Deriver(DriverArgon2d))
	argon2iKey  = result.Wrap3(result.PasswordHashing, argon2Deriver(DriverArgon2i))
	argon2idKey = result.Wrap3(result.PasswordHashing, argon2Deriver(DriverArgon2id))
)

// Argon2d derives a key with Argon2d (data-dependent memory access).
// It fails when the salt is shorter than [MinArgon2SaltLen] bytes, when a
// cost parameter is below its minimum, or when Memory exceeds MaxMem.
func Argon2d[P, S Input](password P, salt S, params Argon2Params) result.Result[[]byte] {
	return argon2dKey([]byte(password), []byte(salt), params)
}

// Argon2i derives a key with Argon2i (data-independent memory access).
// Failure conditions match [Argon2d].
func Argon2i[P, S Input](password P, salt S, params Argon2Params) result.Result[[]byte] {
	return argon2iKey([]byte(password), []byte(salt), params)
}

// Argon2id derives a key with Argon2id, the RFC 9106 recommendation.
// Failure conditions match [Argon2d].
func Argon2id[P, S Input](password P, salt S, params Argon2Params) result.Result[[]byte] {
	return argon2idKey([]byte(password), []byte(salt), params)
}

func argon2Deriver(variant DriverName) func(password, salt []byte, p Argon2Params) ([]byte, error) {
	return func(password, salt []byte, p Argon2Params) ([]byte, error) {
		return deriveArgon2(variant, password, salt, p)
	}
}

func deriveArgon2(variant DriverName, password, salt []byte, p Argon2Params) ([]byte, error) {
	keyLen := p.KeyLen
	if keyLen == 0 {
		keyLen = DefaultArgon2KeyLen
	}
	maxMem := p.MaxMem
	if maxMem == 0 {
		maxMem = DefaultArgon2MaxMem
	}
	switch {
	case len(salt) < MinArgon2SaltLen:
		return nil, fmt.Errorf("%w: %s salt must be ≥ %d bytes, got %d",
			ErrSaltTooShort, variant, MinArgon2SaltLen, len(salt))
	case p.Time < 1:
		return nil, fmt.Errorf("%w: %s time must be ≥ 1, got %d", ErrInvalidOption, variant, p.Time)
	case p.Threads < 1:
		return nil, fmt.Errorf("%w: %s threads must be ≥ 1, got %d", ErrInvalidOption, variant, p.Threads)
	case p.Memory < 8*uint32(p.Threads):
		return nil, fmt.Errorf("%w: %s memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, variant, p.Memory, 8*uint32(p.Threads))
	case keyLen < 4:
		return nil, fmt.Errorf("%w: %s key length must be ≥ 4, got %d", ErrInvalidOption, variant, keyLen)
	case uint64(p.Memory)*1024 > maxMem:
		return nil, fmt.Errorf("%w: %s needs %d KiB, limit is %d bytes", ErrMemoryLimit, variant, p.Memory, maxMem)
	}

	switch variant {
	case DriverArgon2d:
		return argon2dDeriveKey(argon2dMode, password, salt, nil, nil, p.Time, p.Memory, p.Threads, keyLen), nil
	case DriverArgon2i:
		return argon2.Key(password, salt, p.Time, p.Memory, p.Threads, keyLen), nil
	case DriverArgon2id:
		return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, keyLen), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, variant)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dispatch
// ──────────────────────────────────────────────────────────────────────────────

// KDFParams carries the parameters for whichever algorithm [Derive] selects.
type KDFParams struct {
	Scrypt ScryptParams
	Argon2 Argon2Params
}

var derive = result.Wrap3(result.PasswordHashing,
	func(alg DriverName, creds [2][]byte, p KDFParams) ([]byte, error) {
		password, salt := creds[0], creds[1]
		switch alg {
		case DriverScrypt:
			return deriveScrypt(password, salt, p.Scrypt)
		case DriverArgon2d, DriverArgon2i, DriverArgon2id:
			return deriveArgon2(alg, password, salt, p.Argon2)
		default:
			return nil, fmt.Errorf("%w: %q is not a key-derivation function", ErrUnsupportedAlgorithm, alg)
		}
	})

// Derive runs the key-derivation function named alg ([DriverScrypt] or one
// of the Argon2 drivers).  Any other name fails with
// [ErrUnsupportedAlgorithm].  All failures are tagged [result.PasswordHashing].
func Derive(alg DriverName, password, salt []byte, params KDFParams) result.Result[[]byte] {
	return derive(alg, [2][]byte{password, salt}, params)
}
