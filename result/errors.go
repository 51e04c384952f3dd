package result

import (
	"errors"
	"fmt"
)

// Category classifies why a facade operation failed.  The set is closed.
type Category uint8

const (
	// Encoding tags failures of byte/text conversions.
	Encoding Category = iota + 1
	// Hashing tags option-validation failures of keyed or parameterised digests.
	Hashing
	// PasswordHashing tags failures of password key-derivation functions.
	PasswordHashing
)

// String returns the tag name of c.
func (c Category) String() string {
	switch c {
	case Encoding:
		return "EncodingError"
	case Hashing:
		return "HashingError"
	case PasswordHashing:
		return "PasswordHashingError"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Sentinel errors, one per [Category].
//
// Every [*Failure] matches the sentinel of its own category under [errors.Is]:
//
//	r := codec.HexToBytes("abc")
//	if errors.Is(r.Failure(), result.ErrEncoding) {
//	    // malformed hex
//	}
var (
	// ErrEncoding matches failures tagged [Encoding].
	ErrEncoding = errors.New("encoding error")

	// ErrHashing matches failures tagged [Hashing].
	ErrHashing = errors.New("hashing error")

	// ErrPasswordHashing matches failures tagged [PasswordHashing].
	ErrPasswordHashing = errors.New("password hashing error")
)

func (c Category) valid() bool { return c >= Encoding && c <= PasswordHashing }

func (c Category) sentinel() error {
	switch c {
	case Encoding:
		return ErrEncoding
	case Hashing:
		return ErrHashing
	case PasswordHashing:
		return ErrPasswordHashing
	default:
		return nil
	}
}

// Failure is a categorised failure of a primitive call.
//
// Cause is the error the primitive provider returned (or the panic it raised)
// and is kept verbatim; it is never summarised or interpreted.
type Failure struct {
	Category Category
	Cause    error
}

// NewFailure returns a Failure of category c carrying cause.
func NewFailure(c Category, cause error) *Failure {
	return &Failure{Category: c, Cause: cause}
}

// NewEncodingError returns a Failure tagged [Encoding].
func NewEncodingError(cause error) *Failure { return NewFailure(Encoding, cause) }

// NewHashingError returns a Failure tagged [Hashing].
func NewHashingError(cause error) *Failure { return NewFailure(Hashing, cause) }

// NewPasswordHashingError returns a Failure tagged [PasswordHashing].
func NewPasswordHashingError(cause error) *Failure { return NewFailure(PasswordHashing, cause) }

// Error reports the category followed by the cause's message.
func (f *Failure) Error() string {
	if f.Cause == nil {
		return f.Category.String()
	}
	return f.Category.String() + ": " + f.Cause.Error()
}

// Unwrap returns the provider's original error.
func (f *Failure) Unwrap() error { return f.Cause }

// Is reports whether target is the sentinel of f's category.
func (f *Failure) Is(target error) bool {
	s := f.Category.sentinel()
	return s != nil && target == s
}

// IsEncodingError reports whether err is, or wraps, a Failure tagged [Encoding].
func IsEncodingError(err error) bool { return hasCategory(err, Encoding) }

// IsHashingError reports whether err is, or wraps, a Failure tagged [Hashing].
func IsHashingError(err error) bool { return hasCategory(err, Hashing) }

// IsPasswordHashingError reports whether err is, or wraps, a Failure tagged
// [PasswordHashing].
func IsPasswordHashingError(err error) bool { return hasCategory(err, PasswordHashing) }

func hasCategory(err error, c Category) bool {
	var f *Failure
	return errors.As(err, &f) && f.Category == c
}

// PanicError is the cause recorded when a primitive panics with a value that
// is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
