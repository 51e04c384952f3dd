package codec

import "errors"

// Causes attached to [result.Encoding] failures raised by this package.
// Decoding failures from encoding/hex and encoding/base64 are attached as-is.
var (
	// ErrNegativeNumber is the cause when a negative integer is packed.
	ErrNegativeNumber = errors.New("codec: number must be non-negative")

	// ErrNumberTooLarge is the cause when an integer needs more bytes than
	// the requested length.
	ErrNumberTooLarge = errors.New("codec: number does not fit in requested length")

	// ErrInvalidLength is the cause when a negative byte length is requested.
	ErrInvalidLength = errors.New("codec: length must be non-negative")
)
