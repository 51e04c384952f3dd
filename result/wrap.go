package result

// Try calls fn and converts its outcome into a Result.
//
// A non-nil error returned by fn, or a panic raised inside it, becomes a
// Failure of category c whose Cause is the original error.  A panic with a
// non-error value is recorded as a [*PanicError] holding that value.
// fn is called exactly once.
func Try[T any](c Category, fn func() (T, error)) (r Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = Fail[T](NewFailure(c, panicCause(v)))
		}
	}()
	v, err := fn()
	if err != nil {
		return Fail[T](NewFailure(c, err))
	}
	return Ok(v)
}

func panicCause(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// Wrap adapts a niladic primitive.
func Wrap[R any](c Category, fn func() (R, error)) func() Result[R] {
	return func() Result[R] {
		return Try(c, fn)
	}
}

// Wrap1 adapts a one-argument primitive, keeping its argument type.
func Wrap1[A, R any](c Category, fn func(A) (R, error)) func(A) Result[R] {
	return func(a A) Result[R] {
		return Try(c, func() (R, error) { return fn(a) })
	}
}

// Wrap2 adapts a two-argument primitive, keeping its argument types.
func Wrap2[A, B, R any](c Category, fn func(A, B) (R, error)) func(A, B) Result[R] {
	return func(a A, b B) Result[R] {
		return Try(c, func() (R, error) { return fn(a, b) })
	}
}

// Wrap3 adapts a three-argument primitive, keeping its argument types.
func Wrap3[A, B, C, R any](c Category, fn func(A, B, C) (R, error)) func(A, B, C) Result[R] {
	return func(a A, b B, x C) Result[R] {
		return Try(c, func() (R, error) { return fn(a, b, x) })
	}
}
