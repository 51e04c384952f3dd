package digest

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// Input is the set of accepted message types.
type Input interface {
	~string | ~[]byte
}

// SHA224 returns the 28-byte SHA-224 digest of in.
func SHA224[I Input](in I) []byte {
	sum := sha256.Sum224([]byte(in))
	return sum[:]
}

// SHA256 returns the 32-byte SHA-256 digest of in.
func SHA256[I Input](in I) []byte {
	sum := sha256.Sum256([]byte(in))
	return sum[:]
}

// SHA384 returns the 48-byte SHA-384 digest of in.
func SHA384[I Input](in I) []byte {
	sum := sha512.Sum384([]byte(in))
	return sum[:]
}

// SHA512 returns the 64-byte SHA-512 digest of in.
func SHA512[I Input](in I) []byte {
	sum := sha512.Sum512([]byte(in))
	return sum[:]
}

// SHA512_224 returns the 28-byte SHA-512/224 digest of in.
func SHA512_224[I Input](in I) []byte {
	sum := sha512.Sum512_224([]byte(in))
	return sum[:]
}

// SHA512_256 returns the 32-byte SHA-512/256 digest of in.
func SHA512_256[I Input](in I) []byte {
	sum := sha512.Sum512_256([]byte(in))
	return sum[:]
}

// SHA3_256 returns the 32-byte SHA3-256 digest of in.
func SHA3_256[I Input](in I) []byte {
	sum := sha3.Sum256([]byte(in))
	return sum[:]
}

// SHA3_512 returns the 64-byte SHA3-512 digest of in.
func SHA3_512[I Input](in I) []byte {
	sum := sha3.Sum512([]byte(in))
	return sum[:]
}

// Keccak256 returns the 32-byte legacy Keccak-256 digest of in, as used by
// Ethereum.  It differs from SHA3-256 only in padding.
func Keccak256[I Input](in I) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(in))
	return h.Sum(nil)
}
