package expected

// ValueProvider is implemented by anything that can report a success payload.
type ValueProvider[T any] interface {
	// IsSuccess returns true if a success payload is held
	IsSuccess() bool
	// Value returns the success payload or ErrWrongVariantAccess
	Value() (T, error)
}

// WithError extends ValueProvider with access to the error payload
type WithError[T, E any] interface {
	ValueProvider[T]
	// Error returns the error payload or ErrWrongVariantAccess
	Error() (E, error)
	Kind() Kind
}

var _ WithError[int, string] = Expected[int, string]{}
