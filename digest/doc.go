// Package digest computes fixed-length cryptographic digests.
//
// # Total and option-taking digests
//
// The SHA-2 family ([SHA224], [SHA256], [SHA384], [SHA512], [SHA512_224],
// [SHA512_256]) and the SHA-3 helpers are defined for every input, so they
// return the digest directly.
//
// [Blake2b], [Blake2s] and [Blake3] accept caller-supplied options (key,
// salt, personalization, context, output length).  Some combinations are
// invalid, so these return a [result.Result] tagged [result.Hashing] on
// failure.  A nil options pointer selects the plain unkeyed digest.
//
// # Inputs
//
// Every function accepts a string or a byte slice (see [Input]); strings are
// hashed as their UTF-8 bytes.
//
// # Providers
//
//   - SHA-2: crypto/sha256, crypto/sha512
//   - SHA-3 / Keccak: golang.org/x/crypto/sha3
//   - BLAKE2b: golang.org/x/crypto/blake2b, github.com/dchest/blake2b when a
//     salt or personalization is given
//   - BLAKE2s: golang.org/x/crypto/blake2s for the 32-byte digest,
//     github.com/dchest/blake2s otherwise
//   - BLAKE3: github.com/zeebo/blake3
package digest
