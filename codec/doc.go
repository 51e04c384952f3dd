// Package codec converts between bytes, hex, base64, UTF-8 text and
// big-endian integers.
//
// Conversions whose success depends on the shape of their input (hex and
// base64 decoding, integer packing) return a [result.Result] tagged
// [result.Encoding] on failure.  [BytesToHex], [BytesToBase64] and
// [BytesToNumber] cannot fail on well-typed input but share the same
// Result-returning shape so that encode and decode pair up symmetrically.
//
// Pure data transformations ([UTF8ToBytes], [BytesToUTF8], [ConcatBytes])
// return plain values.  [RandomBytes] also returns a plain value: an
// unavailable entropy source is an environment fault, so it panics instead
// of producing a Failure.
package codec
