package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Key-derivation failures arrive wrapped in a [result.Failure] tagged
// [result.PasswordHashing]; the sentinel is still reachable with [errors.Is]:
//
//	_, err := hashing.Argon2id(pw, "salt", params).Unwrap()
//	if errors.Is(err, hashing.ErrSaltTooShort) {
//	    // ask for a longer salt
//	}
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed because
	// it has an unrecognised format, missing fields, or invalid encoding.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a cost parameter falls outside its
	// allowed range (a bcrypt cost above 31, an Argon2 time of 0, ...).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrSaltTooShort is returned by the Argon2 functions when the salt is
	// shorter than [MinArgon2SaltLen].
	ErrSaltTooShort = errors.New("hashing: salt too short")

	// ErrMemoryLimit is returned by [Scrypt] and the Argon2 functions when the
	// memory the parameters require exceeds MaxMem.
	ErrMemoryLimit = errors.New("hashing: memory limit exceeded")

	// ErrUnsupportedAlgorithm is returned by [Derive] for names that are not
	// key-derivation functions.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported algorithm")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned by a [Hasher]'s Check or NeedsRehash
	// method when the hash string was produced by a different algorithm than
	// the one implemented by that hasher.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)
