package expected

import "reflect"

// FromPair lifts a Go (value, error) return. Only an untyped nil err gives
// Success(v); a typed nil pointer stored in err is still an error.
func FromPair[T any](v T, err error) Expected[T, error] {
	if err == nil {
		return Success[T, error](v)
	}
	return Fail[T](err)
}

// Get is the inverse of FromPair.
func Get[T any](r Expected[T, error]) (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
