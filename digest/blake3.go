package digest

import (
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/hasbyte1/go-crypto-utils/result"
)

// DefaultBlake3Length is the BLAKE3 output length used when DKLen is zero.
const DefaultBlake3Length = 32

// Blake3Options configures [Blake3].  Key and Context are mutually exclusive.
type Blake3Options struct {
	// Key selects keyed-hash mode.  It must be exactly 32 bytes.
	Key []byte

	// Context selects key-derivation mode; in is then the key material.
	Context []byte

	// DKLen is the output length in bytes, read from the extendable output.
	// Zero selects [DefaultBlake3Length].
	DKLen int
}

var blake3Digest = result.Wrap2(result.Hashing, blake3Sum)

// Blake3 returns the BLAKE3 digest of in.
//
// It fails when both Key and Context are set, when Key is not 32 bytes, or
// when DKLen is negative.
func Blake3[I Input](in I, opts *Blake3Options) result.Result[[]byte] {
	return blake3Digest([]byte(in), opts)
}

func blake3Sum(in []byte, opts *Blake3Options) ([]byte, error) {
	if opts == nil {
		sum := blake3.Sum256(in)
		return sum[:], nil
	}
	if opts.Key != nil && opts.Context != nil {
		return nil, fmt.Errorf("%w: blake3 key and context cannot both be set", ErrConflictingOptions)
	}
	if opts.DKLen < 0 {
		return nil, fmt.Errorf("%w: blake3 output must be non-negative, got %d",
			ErrInvalidOutputLength, opts.DKLen)
	}

	var h *blake3.Hasher
	switch {
	case opts.Key != nil:
		var err error
		if h, err = blake3.NewKeyed(opts.Key); err != nil {
			return nil, err
		}
	case opts.Context != nil:
		h = blake3.NewDeriveKey(string(opts.Context))
	default:
		h = blake3.New()
	}
	if _, err := h.Write(in); err != nil {
		return nil, err
	}

	size := opts.DKLen
	if size == 0 {
		size = DefaultBlake3Length
	}
	out := make([]byte, size)
	if _, err := h.Digest().Read(out); err != nil {
		return nil, err
	}
	return out, nil
}
