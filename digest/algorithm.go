package digest

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-crypto-utils/result"
)

// Algorithm names a digest supported by [Compute].
type Algorithm string

const (
	AlgSHA224     Algorithm = "sha224"
	AlgSHA256     Algorithm = "sha256"
	AlgSHA384     Algorithm = "sha384"
	AlgSHA512     Algorithm = "sha512"
	AlgSHA512_224 Algorithm = "sha512_224"
	AlgSHA512_256 Algorithm = "sha512_256"
	AlgSHA3_256   Algorithm = "sha3_256"
	AlgSHA3_512   Algorithm = "sha3_512"
	AlgKeccak256  Algorithm = "keccak256"
	AlgBlake2b    Algorithm = "blake2b"
	AlgBlake2s    Algorithm = "blake2s"
	AlgBlake3     Algorithm = "blake3"
)

// Options is the union of every digest option, used by [Compute].  Only the
// fields meaningful to the selected algorithm may be set.
type Options struct {
	Key             []byte
	Salt            []byte
	Personalization []byte
	Context         []byte
	DKLen           int
}

func (o *Options) isZero() bool {
	return o == nil || (o.Key == nil && o.Salt == nil && o.Personalization == nil &&
		o.Context == nil && o.DKLen == 0)
}

var fixed = map[Algorithm]func([]byte) []byte{
	AlgSHA224:     SHA224[[]byte],
	AlgSHA256:     SHA256[[]byte],
	AlgSHA384:     SHA384[[]byte],
	AlgSHA512:     SHA512[[]byte],
	AlgSHA512_224: SHA512_224[[]byte],
	AlgSHA512_256: SHA512_256[[]byte],
	AlgSHA3_256:   SHA3_256[[]byte],
	AlgSHA3_512:   SHA3_512[[]byte],
	AlgKeccak256:  Keccak256[[]byte],
}

// Algorithms returns every name accepted by [Compute], sorted.
func Algorithms() []Algorithm {
	out := []Algorithm{AlgBlake2b, AlgBlake2s, AlgBlake3}
	for alg := range fixed {
		out = append(out, alg)
	}
	slices.Sort(out)
	return out
}

var compute = result.Wrap3(result.Hashing, computeSum)

// Compute dispatches to the digest named alg.
//
// Fixed-output algorithms take no options; passing any makes Compute fail,
// as does an unknown name.  All failures are tagged [result.Hashing].
func Compute(alg Algorithm, in []byte, opts *Options) result.Result[[]byte] {
	return compute(alg, in, opts)
}

func computeSum(alg Algorithm, in []byte, opts *Options) ([]byte, error) {
	if fn, ok := fixed[alg]; ok {
		if !opts.isZero() {
			return nil, fmt.Errorf("%w: %s takes no options", ErrUnsupportedOption, alg)
		}
		return fn(in), nil
	}

	switch alg {
	case AlgBlake2b, AlgBlake2s:
		var b2 *Blake2Options
		if !opts.isZero() {
			if opts.Context != nil {
				return nil, fmt.Errorf("%w: %s has no context", ErrUnsupportedOption, alg)
			}
			b2 = &Blake2Options{
				Key:             opts.Key,
				Salt:            opts.Salt,
				Personalization: opts.Personalization,
				DKLen:           opts.DKLen,
			}
		}
		if alg == AlgBlake2b {
			return blake2bSum(in, b2)
		}
		return blake2sSum(in, b2)
	case AlgBlake3:
		var b3 *Blake3Options
		if !opts.isZero() {
			if opts.Salt != nil || opts.Personalization != nil {
				return nil, fmt.Errorf("%w: blake3 has no salt or personalization", ErrUnsupportedOption)
			}
			b3 = &Blake3Options{Key: opts.Key, Context: opts.Context, DKLen: opts.DKLen}
		}
		return blake3Sum(in, b3)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
