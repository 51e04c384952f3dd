package hashing

import (
	"crypto/subtle"
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of iterations.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2

	// DefaultArgon2KeyLen is the default output key length in bytes.
	DefaultArgon2KeyLen uint32 = 32

	// DefaultArgon2SaltLen is the default random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16

	// argon2Version is the Argon2 specification version encoded in hashes.
	argon2Version = argon2.Version // 0x13 = 19

	// maxArgon2Time bounds the t= parameter accepted from a stored hash.
	maxArgon2Time = 1 << 16
)

// Argon2Options configures an [Argon2Hasher].
//
// All parameters are encoded into the output hash string, so changing them
// only affects newly produced hashes.
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads.  Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32 `mapstructure:"memory" yaml:"memory"`

	// Time is the number of passes over memory (iterations).
	// Minimum: 1.  Default: [DefaultArgon2Time] (3).
	Time uint32 `mapstructure:"time" yaml:"time"`

	// Threads is the degree of parallelism.
	// Minimum: 1.  Default: [DefaultArgon2Threads] (2).
	Threads uint8 `mapstructure:"threads" yaml:"threads"`

	// KeyLen is the length of the derived key in bytes.
	// Minimum: 4.  Default: [DefaultArgon2KeyLen] (32).
	KeyLen uint32 `mapstructure:"key_len" yaml:"key_len"`

	// SaltLen is the length of the random salt in bytes.
	// Minimum: [MinArgon2SaltLen].  Default: [DefaultArgon2SaltLen] (16).
	SaltLen uint32 `mapstructure:"salt_len" yaml:"salt_len"`
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
		SaltLen: DefaultArgon2SaltLen,
	}
}

// Params returns the key-derivation subset of o.
func (o Argon2Options) Params() Argon2Params {
	return Argon2Params{Time: o.Time, Memory: o.Memory, Threads: o.Threads, KeyLen: o.KeyLen}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < MinArgon2SaltLen {
		return fmt.Errorf("%w: argon2 salt_len must be ≥ %d, got %d",
			ErrInvalidOption, MinArgon2SaltLen, opts.SaltLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PHC decoding
// ──────────────────────────────────────────────────────────────────────────────

// argon2Hash holds parameters and raw values decoded from an Argon2 PHC string.
type argon2Hash struct {
	variant DriverName
	version uint32
	params  Argon2Params
	salt    []byte
	hash    []byte
}

// decodeArgon2 parses an Argon2 PHC hash string:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
func decodeArgon2(encoded string) (*argon2Hash, error) {
	p, err := splitPHC(encoded, true)
	if err != nil {
		return nil, err
	}

	var variant DriverName
	switch DriverName(p.id) {
	case DriverArgon2d, DriverArgon2i, DriverArgon2id:
		variant = DriverName(p.id)
	default:
		return nil, fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidHash, p.id)
	}

	version, err := parseKV(p.version, "v")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if version != argon2Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidHash, version)
	}

	memory, err := p.param("m", math.MaxUint32)
	if err != nil {
		return nil, err
	}
	time, err := p.param("t", maxArgon2Time)
	if err != nil {
		return nil, err
	}
	threads, err := p.param("p", math.MaxUint8)
	if err != nil {
		return nil, err
	}

	return &argon2Hash{
		variant: variant,
		version: uint32(version),
		params: Argon2Params{
			Time:    uint32(time),
			Memory:  uint32(memory),
			Threads: uint8(threads),
			KeyLen:  uint32(len(p.hash)),
		},
		salt: p.salt,
		hash: p.hash,
	}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// Argon2Hasher hashes passwords with one Argon2 variant.
//
// Argon2id is the recommended choice for password storage (RFC 9106).
// Argon2i uses data-independent memory access; Argon2d uses data-dependent
// access and is faster but exposed to side channels.
//
// Output format: PHC string ($argon2id$v=19$m=…,t=…,p=…$<salt>$<hash>).
//
// # Thread safety
//
// Argon2Hasher is immutable after construction and safe for concurrent use.
type Argon2Hasher struct {
	variant DriverName
	opts    Argon2Options
}

// NewArgon2Hasher constructs a hasher for variant, which must be one of
// [DriverArgon2d], [DriverArgon2i] or [DriverArgon2id].
func NewArgon2Hasher(variant DriverName, opts Argon2Options) (*Argon2Hasher, error) {
	switch variant {
	case DriverArgon2d, DriverArgon2i, DriverArgon2id:
	default:
		return nil, fmt.Errorf("%w: %q is not an argon2 variant", ErrInvalidOption, variant)
	}
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2Hasher{variant: variant, opts: opts}, nil
}

// NewArgon2dHasher constructs an Argon2d hasher.
func NewArgon2dHasher(opts Argon2Options) (*Argon2Hasher, error) {
	return NewArgon2Hasher(DriverArgon2d, opts)
}

// NewArgon2iHasher constructs an Argon2i hasher.
func NewArgon2iHasher(opts Argon2Options) (*Argon2Hasher, error) {
	return NewArgon2Hasher(DriverArgon2i, opts)
}

// NewArgon2idHasher constructs an Argon2id hasher.
// Use [DefaultArgon2Options] for recommended defaults.
func NewArgon2idHasher(opts Argon2Options) (*Argon2Hasher, error) {
	return NewArgon2Hasher(DriverArgon2id, opts)
}

// Driver returns the Argon2 variant this hasher produces.
func (h *Argon2Hasher) Driver() DriverName { return h.variant }

// Options returns the current Argon2 parameter set.
func (h *Argon2Hasher) Options() Argon2Options { return h.opts }

// Make hashes password and returns a PHC-formatted string.
// A fresh random salt of the configured length is generated for each call.
func (h *Argon2Hasher) Make(password string) (string, error) {
	salt, err := randomSalt(int(h.opts.SaltLen))
	if err != nil {
		return "", err
	}
	key, err := h.deriveKey([]byte(password), salt, h.opts.Params())
	if err != nil {
		return "", err
	}
	params := fmt.Sprintf("m=%d,t=%d,p=%d", h.opts.Memory, h.opts.Time, h.opts.Threads)
	return encodePHC(string(h.variant), fmt.Sprintf("v=%d", argon2Version), params, salt, key), nil
}

// Check verifies that password matches the PHC hash.
// The parameters are read from the hash string itself, so verification works
// even when the hasher's options have changed.
func (h *Argon2Hasher) Check(password, hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	computed, err := h.deriveKey([]byte(password), p.salt, p.params)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(computed, p.hash) == 1, nil
}

// NeedsRehash returns true if any parameter stored in hash differs from the
// hasher's current configuration.
func (h *Argon2Hasher) NeedsRehash(hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return p.params != h.opts.Params(), nil
}

// Info parses the PHC string and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "version" → int
//   - "memory"  → uint32 (KiB)
//   - "time"    → uint32
//   - "threads" → uint8
//   - "key_len" → uint32
func (h *Argon2Hasher) Info(hash string) (HashInfo, error) {
	p, err := h.decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: p.variant,
		Params: map[string]any{
			"version": int(p.version),
			"memory":  p.params.Memory,
			"time":    p.params.Time,
			"threads": p.params.Threads,
			"key_len": p.params.KeyLen,
		},
	}, nil
}

// deriveKey runs the KDF with a memory ceiling of DefaultArgon2MaxMem, raised
// to the hasher's own cost when that is larger.  A stored hash asking for
// more than either fails with ErrMemoryLimit.
func (h *Argon2Hasher) deriveKey(password, salt []byte, p Argon2Params) ([]byte, error) {
	p.MaxMem = max(DefaultArgon2MaxMem, uint64(h.opts.Memory)*1024)
	return Derive(h.variant, password, salt, KDFParams{Argon2: p}).Unwrap()
}

func (h *Argon2Hasher) decode(hash string) (*argon2Hash, error) {
	if d, ok := DetectDriver(hash); ok && d != h.variant {
		return nil, fmt.Errorf("%w: hash is %s, not %s", ErrAlgorithmMismatch, d, h.variant)
	}
	p, err := decodeArgon2(hash)
	if err != nil {
		return nil, err
	}
	if p.variant != h.variant {
		return nil, fmt.Errorf("%w: hash is %s, not %s", ErrAlgorithmMismatch, p.variant, h.variant)
	}
	return p, nil
}
