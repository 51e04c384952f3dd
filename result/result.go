package result

import "fmt"

// Result holds either a success value of type T or a [*Failure], never both.
//
// The zero Result is a success holding the zero value of T.  Results are
// meant to be branched on immediately by the caller, not stored.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result carrying f.
//
// It panics if f is nil or its Category is not one of [Encoding], [Hashing]
// or [PasswordHashing]; either is a programming error.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		panic("result: Fail called with a nil Failure")
	}
	if !f.Category.valid() {
		panic(fmt.Sprintf("result: Fail called with unknown %v", f.Category))
	}
	return Result[T]{failure: f}
}

// IsOk reports whether r holds a success value.
func (r Result[T]) IsOk() bool { return r.failure == nil }

// IsFailure reports whether r holds a Failure.
func (r Result[T]) IsFailure() bool { return r.failure != nil }

// Value returns the success value, or the zero value of T on failure.
func (r Result[T]) Value() T { return r.value }

// Failure returns the Failure, or nil on success.
func (r Result[T]) Failure() *Failure { return r.failure }

// Unwrap returns the pair form of r for callers using ordinary Go error
// handling.  The error is nil on success and a *Failure otherwise.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}

// ValueOr returns the success value, or def on failure.
func (r Result[T]) ValueOr(def T) T {
	if r.failure != nil {
		return def
	}
	return r.value
}
