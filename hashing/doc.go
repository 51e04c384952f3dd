// Package hashing provides password hashing and password-based key
// derivation.
//
// # Key derivation
//
// [Scrypt], [Argon2d], [Argon2i] and [Argon2id] derive raw keys from a
// password and salt.  They never panic or return a bare error: every call
// yields a [result.Result], and failures carry the
// [result.PasswordHashing] category.
//
//	r := hashing.Argon2d("password", "salt", hashing.Argon2Params{Time: 2, Memory: 65536, Threads: 1})
//	r.IsFailure() // true: Argon2 salts must be at least 8 bytes
//
// [Derive] selects the function by [DriverName].
//
// # Encoded password hashes
//
// The [Hasher] interface wraps the same functions in self-describing hash
// strings.  Five drivers ship with this package:
//
//   - [BcryptHasher]: Modular Crypt Format, widest ecosystem support
//   - [Argon2Hasher] for argon2d, argon2i and argon2id: PHC string format
//   - [ScryptHasher]: PHC string format
//
// The [Manager] is a driver registry and dispatcher.  Register named [Hasher]
// implementations, designate one as the default, then delegate all hashing
// operations through the [Manager].
//
//	m, err := hashing.NewDefaultManager()   // Argon2id default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok,   _ := m.Check("my-secret-password", hash)
//
// # Hash formats
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>
//	$scrypt$ln=17,r=8,p=1$<base64-salt>$<base64-hash>
//	$2a$12$<bcrypt-salt-and-hash>
//
// Base64 segments use the standard alphabet without padding.  All parameters
// live in the string, so verifying an old hash needs no external
// configuration; [Manager.NeedsRehash] reports when a stored hash was made
// with parameters other than the current default's.
//
// # Security defaults
//
//   - bcrypt:   cost 12.
//   - Argon2:   m=64 MiB, t=3 iterations, p=2 threads, 32-byte key.
//   - scrypt:   N=2^17, r=8, p=1, 32-byte key.
package hashing
