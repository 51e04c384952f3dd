package digest

import (
	"fmt"
	"hash"

	dblake2b "github.com/dchest/blake2b"
	dblake2s "github.com/dchest/blake2s"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/hasbyte1/go-crypto-utils/result"
)

// Blake2Options configures [Blake2b] and [Blake2s].
//
// A nil field is absent.  A present Salt or Personalization must have exactly
// the algorithm's parameter width: 16 bytes for BLAKE2b, 8 for BLAKE2s.
type Blake2Options struct {
	// Key turns the digest into a MAC.  At most 64 bytes (BLAKE2b) or
	// 32 bytes (BLAKE2s).
	Key []byte

	// Salt randomises the digest.
	Salt []byte

	// Personalization separates application domains.
	Personalization []byte

	// DKLen is the output length in bytes.  Zero selects the full width:
	// 64 for BLAKE2b, 32 for BLAKE2s.
	DKLen int
}

// blake2Params holds the widths that differ between the two variants.
type blake2Params struct {
	name     string
	size     int
	paramLen int
}

var (
	blake2bParams = blake2Params{name: "blake2b", size: blake2b.Size, paramLen: dblake2b.SaltSize}
	blake2sParams = blake2Params{name: "blake2s", size: blake2s.Size, paramLen: dblake2s.SaltSize}
)

var (
	blake2bDigest = result.Wrap2(result.Hashing, blake2bSum)
	blake2sDigest = result.Wrap2(result.Hashing, blake2sSum)
)

// Blake2b returns the BLAKE2b digest of in.
//
// It fails when the salt or personalization is not 16 bytes, when the key is
// longer than 64 bytes, or when DKLen is outside 0..64.
func Blake2b[I Input](in I, opts *Blake2Options) result.Result[[]byte] {
	return blake2bDigest([]byte(in), opts)
}

// Blake2s returns the BLAKE2s digest of in.
//
// It fails when the salt or personalization is not 8 bytes, when the key is
// longer than 32 bytes, or when DKLen is outside 0..32.
func Blake2s[I Input](in I, opts *Blake2Options) result.Result[[]byte] {
	return blake2sDigest([]byte(in), opts)
}

// validate checks the parameter-block fields the providers would otherwise
// zero-pad or truncate, and returns the effective output size.
func (p blake2Params) validate(opts *Blake2Options) (int, error) {
	if opts.Salt != nil && len(opts.Salt) != p.paramLen {
		return 0, fmt.Errorf("%w: %s salt must be %d bytes, got %d",
			ErrInvalidSaltLength, p.name, p.paramLen, len(opts.Salt))
	}
	if opts.Personalization != nil && len(opts.Personalization) != p.paramLen {
		return 0, fmt.Errorf("%w: %s personalization must be %d bytes, got %d",
			ErrInvalidPersonalizationLength, p.name, p.paramLen, len(opts.Personalization))
	}
	size := opts.DKLen
	if size == 0 {
		size = p.size
	}
	if size < 1 || size > p.size {
		return 0, fmt.Errorf("%w: %s output must be 1..%d bytes, got %d",
			ErrInvalidOutputLength, p.name, p.size, opts.DKLen)
	}
	return size, nil
}

func blake2bSum(in []byte, opts *Blake2Options) ([]byte, error) {
	if opts == nil {
		sum := blake2b.Sum512(in)
		return sum[:], nil
	}
	size, err := blake2bParams.validate(opts)
	if err != nil {
		return nil, err
	}

	var h hash.Hash
	if opts.Salt == nil && opts.Personalization == nil {
		h, err = blake2b.New(size, opts.Key)
	} else {
		h, err = dblake2b.New(&dblake2b.Config{
			Size:   uint8(size),
			Key:    opts.Key,
			Salt:   opts.Salt,
			Person: opts.Personalization,
		})
	}
	if err != nil {
		return nil, err
	}
	h.Write(in)
	return h.Sum(nil), nil
}

func blake2sSum(in []byte, opts *Blake2Options) ([]byte, error) {
	if opts == nil {
		sum := blake2s.Sum256(in)
		return sum[:], nil
	}
	size, err := blake2sParams.validate(opts)
	if err != nil {
		return nil, err
	}

	var h hash.Hash
	if opts.Salt == nil && opts.Personalization == nil && size == blake2s.Size {
		h, err = blake2s.New256(opts.Key)
	} else {
		h, err = dblake2s.New(&dblake2s.Config{
			Size:   uint8(size),
			Key:    opts.Key,
			Salt:   opts.Salt,
			Person: opts.Personalization,
		})
	}
	if err != nil {
		return nil, err
	}
	h.Write(in)
	return h.Sum(nil), nil
}
