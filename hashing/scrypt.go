package hashing

import (
	"crypto/subtle"
	"fmt"
	"math/bits"
)

const (
	// DefaultScryptN is the default CPU/memory cost (2^17, 128 MiB with r=8).
	DefaultScryptN = 1 << 17

	// DefaultScryptR is the default block size.
	DefaultScryptR = 8

	// DefaultScryptP is the default parallelisation factor.
	DefaultScryptP = 1

	// DefaultScryptKeyLen is the default output key length in bytes.
	DefaultScryptKeyLen = 32

	// DefaultScryptSaltLen is the default random salt length in bytes.
	DefaultScryptSaltLen = 16

	// maxScryptLogN keeps 1<<ln representable as an int.
	maxScryptLogN = 62
)

// ScryptOptions configures a [ScryptHasher].
type ScryptOptions struct {
	// N is the CPU/memory cost; a power of two greater than 1.
	N int `mapstructure:"n" yaml:"n"`

	// R is the block size.  Minimum: 1.
	R int `mapstructure:"r" yaml:"r"`

	// P is the parallelisation factor.  Minimum: 1.
	P int `mapstructure:"p" yaml:"p"`

	// KeyLen is the length of the derived key in bytes.  Minimum: 16.
	KeyLen int `mapstructure:"key_len" yaml:"key_len"`

	// SaltLen is the length of the random salt in bytes.  Minimum: 8.
	SaltLen int `mapstructure:"salt_len" yaml:"salt_len"`
}

// DefaultScryptOptions returns ScryptOptions with the recommended defaults.
func DefaultScryptOptions() ScryptOptions {
	return ScryptOptions{
		N:       DefaultScryptN,
		R:       DefaultScryptR,
		P:       DefaultScryptP,
		KeyLen:  DefaultScryptKeyLen,
		SaltLen: DefaultScryptSaltLen,
	}
}

// Params returns the key-derivation subset of o.
func (o ScryptOptions) Params() ScryptParams {
	return ScryptParams{N: o.N, R: o.R, P: o.P, KeyLen: o.KeyLen}
}

func validateScryptOptions(opts ScryptOptions) error {
	if opts.N <= 1 || opts.N&(opts.N-1) != 0 {
		return fmt.Errorf("%w: scrypt N must be a power of 2 greater than 1, got %d", ErrInvalidOption, opts.N)
	}
	if opts.R < 1 || opts.P < 1 {
		return fmt.Errorf("%w: scrypt r and p must be ≥ 1, got r=%d p=%d", ErrInvalidOption, opts.R, opts.P)
	}
	if opts.KeyLen < 16 {
		return fmt.Errorf("%w: scrypt key_len must be ≥ 16, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: scrypt salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// decodeScrypt parses a scrypt PHC hash string:
//
//	$scrypt$ln=17,r=8,p=1$<salt>$<hash>
func decodeScrypt(encoded string) (ScryptParams, []byte, []byte, error) {
	if d, ok := DetectDriver(encoded); ok && d != DriverScrypt {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: hash is %s, not scrypt", ErrAlgorithmMismatch, d)
	}
	p, err := splitPHC(encoded, false)
	if err != nil {
		return ScryptParams{}, nil, nil, err
	}
	if DriverName(p.id) != DriverScrypt {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: hash is %s, not scrypt", ErrAlgorithmMismatch, p.id)
	}
	ln, err := p.param("ln", maxScryptLogN)
	if err != nil {
		return ScryptParams{}, nil, nil, err
	}
	r, err := p.param("r", 1<<30)
	if err != nil {
		return ScryptParams{}, nil, nil, err
	}
	par, err := p.param("p", 1<<30)
	if err != nil {
		return ScryptParams{}, nil, nil, err
	}
	params := ScryptParams{N: 1 << ln, R: int(r), P: int(par), KeyLen: len(p.hash)}
	return params, p.salt, p.hash, nil
}

// ScryptHasher hashes passwords with scrypt.
//
// Output format: PHC string ($scrypt$ln=…,r=…,p=…$<salt>$<hash>), where
// ln is log2(N).  This matches passlib's scrypt format.
//
// # Thread safety
//
// ScryptHasher is immutable after construction and safe for concurrent use.
type ScryptHasher struct {
	opts ScryptOptions
}

// NewScryptHasher constructs a ScryptHasher with the given options.
// Use [DefaultScryptOptions] for recommended defaults.
func NewScryptHasher(opts ScryptOptions) (*ScryptHasher, error) {
	if err := validateScryptOptions(opts); err != nil {
		return nil, err
	}
	return &ScryptHasher{opts: opts}, nil
}

// Driver returns [DriverScrypt].
func (h *ScryptHasher) Driver() DriverName { return DriverScrypt }

// Options returns the current scrypt parameter set.
func (h *ScryptHasher) Options() ScryptOptions { return h.opts }

// Make hashes password with scrypt and returns a PHC-formatted string.
func (h *ScryptHasher) Make(password string) (string, error) {
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key, err := Scrypt(password, salt, h.opts.Params()).Unwrap()
	if err != nil {
		return "", err
	}
	params := fmt.Sprintf("ln=%d,r=%d,p=%d", bits.TrailingZeros(uint(h.opts.N)), h.opts.R, h.opts.P)
	return encodePHC(string(DriverScrypt), "", params, salt, key), nil
}

// Check verifies that password matches the scrypt PHC hash.
func (h *ScryptHasher) Check(password, hash string) (bool, error) {
	params, salt, want, err := decodeScrypt(hash)
	if err != nil {
		return false, err
	}
	computed, err := Scrypt(password, salt, params).Unwrap()
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(computed, want) == 1, nil
}

// NeedsRehash returns true if any parameter stored in hash differs from the
// hasher's current configuration.
func (h *ScryptHasher) NeedsRehash(hash string) (bool, error) {
	params, _, _, err := decodeScrypt(hash)
	if err != nil {
		return false, err
	}
	return params != h.opts.Params(), nil
}

// Info parses the PHC string and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "n", "r", "p" → int
//   - "key_len"     → int
func (h *ScryptHasher) Info(hash string) (HashInfo, error) {
	params, _, _, err := decodeScrypt(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverScrypt,
		Params: map[string]any{
			"n":       params.N,
			"r":       params.R,
			"p":       params.P,
			"key_len": params.KeyLen,
		},
	}, nil
}
