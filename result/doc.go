// Package result turns fallible cryptographic primitives into values.
//
// # Architecture
//
// Every failure produced by this module is a [*Failure]: a closed [Category]
// (Encoding, Hashing or PasswordHashing) plus the provider's original error
// as the cause.  The category says which facade produced the failure; the
// cause says why.  Category identity is the enum value, never the cause text.
//
// [Result] is the discriminated success/failure value returned by every
// fallible facade operation.  It is built by [Try] and by the arity adapters
// [Wrap], [Wrap1], [Wrap2] and [Wrap3], which convert a primitive of shape
// func(A, B, …) (R, error) into func(A, B, …) Result[R].  A primitive that
// panics is treated exactly like one that returns an error: the panic is
// recovered and attached as the cause.
//
// # Quick start
//
//	hexToBytes := result.Wrap1(result.Encoding, hex.DecodeString)
//
//	r := hexToBytes("zz")
//	if r.IsFailure() {
//	    fmt.Println(r.Failure().Category) // EncodingError
//	}
//
// The adapters perform no logging, retries, argument rewriting or caching.
// They hold no state and are safe for concurrent use.
package result
