package digest

import "errors"

// Causes attached to [result.Hashing] failures raised by this package.
// Key-size failures come straight from the underlying BLAKE implementations.
var (
	// ErrInvalidSaltLength is the cause when a BLAKE2 salt is not exactly
	// 16 bytes (BLAKE2b) or 8 bytes (BLAKE2s).
	ErrInvalidSaltLength = errors.New("digest: invalid salt length")

	// ErrInvalidPersonalizationLength is the cause when a BLAKE2
	// personalization is not exactly 16 bytes (BLAKE2b) or 8 bytes (BLAKE2s).
	ErrInvalidPersonalizationLength = errors.New("digest: invalid personalization length")

	// ErrInvalidOutputLength is the cause when the requested output length is
	// outside the range the algorithm supports.
	ErrInvalidOutputLength = errors.New("digest: invalid output length")

	// ErrConflictingOptions is the cause when mutually exclusive options are
	// combined, such as a BLAKE3 key together with a derivation context.
	ErrConflictingOptions = errors.New("digest: conflicting options")

	// ErrUnsupportedOption is the cause when [Compute] receives an option the
	// selected algorithm does not take.
	ErrUnsupportedOption = errors.New("digest: option not supported by algorithm")

	// ErrUnknownAlgorithm is the cause when [Compute] receives an algorithm
	// name it does not know.
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")
)
