package expected

// Map applies f to the success payload. An error is carried over unchanged
// and f is not called.
func Map[T, U, E any](r Expected[T, E], f func(T) U) Expected[U, E] {
	if !r.IsSuccess() {
		return Fail[U](r.err)
	}
	return Success[U, E](f(r.value))
}

// Bind returns f(value) on success, so results of fallible steps are not nested.
// An error is carried over unchanged and f is not called.
func Bind[T, U, E any](r Expected[T, E], f func(T) Expected[U, E]) Expected[U, E] {
	if !r.IsSuccess() {
		return Fail[U](r.err)
	}
	return f(r.value)
}

// MapError converts the error payload with f. Success values pass through.
func MapError[T, E, F any](r Expected[T, E], f func(E) F) Expected[T, F] {
	if r.IsSuccess() {
		return Success[T, F](r.value)
	}
	return Fail[T](f(r.err))
}

// OrElse gives f a chance to recover from an error. Success values pass through.
func OrElse[T, E any](r Expected[T, E], f func(E) Expected[T, E]) Expected[T, E] {
	if r.IsSuccess() {
		return r
	}
	return f(r.err)
}
