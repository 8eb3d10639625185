package expected

import "fmt"

type Kind uint8

const (
	// KindError is the zero Kind, so the zero Expected holds an error.
	KindError Kind = iota
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Expected holds either a success value or an error value.
// Only the payload matching kind is live; the other field stays zero.
type Expected[T, E any] struct {
	kind  Kind
	value T
	err   E
}

// Unexpected marks a value as an error at the call site.
type Unexpected[E any] struct {
	Value E
}

type unexpectTag struct{}

// Unexpect is the marker passed to WithUnexpect.
var Unexpect = unexpectTag{}

func Success[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{
		kind:  KindSuccess,
		value: v,
	}
}

func Fail[T, E any](e E) Expected[T, E] {
	return Expected[T, E]{
		kind: KindError,
		err:  e,
	}
}

func MakeUnexpected[E any](e E) Unexpected[E] {
	return Unexpected[E]{Value: e}
}

func FromUnexpected[T, E any](u Unexpected[E]) Expected[T, E] {
	return Fail[T](u.Value)
}

// WithUnexpect is the tag-first spelling of Fail.
func WithUnexpect[T, E any](_ unexpectTag, e E) Expected[T, E] {
	return Fail[T](e)
}

func (r Expected[T, E]) Kind() Kind {
	return r.kind
}

func (r Expected[T, E]) IsSuccess() bool {
	return r.kind == KindSuccess
}

func (r Expected[T, E]) IsError() bool {
	return r.kind != KindSuccess
}

// Value returns the success payload, or ErrWrongVariantAccess when r holds an error.
func (r Expected[T, E]) Value() (T, error) {
	if !r.IsSuccess() {
		var zero T
		return zero, wrongVariant(KindSuccess, r.kind)
	}
	return r.value, nil
}

// Error returns the error payload, or ErrWrongVariantAccess when r holds a value.
func (r Expected[T, E]) Error() (E, error) {
	if r.IsSuccess() {
		var zero E
		return zero, wrongVariant(KindError, r.kind)
	}
	return r.err, nil
}

// ValuePtr returns a pointer to the stored success payload.
// Writes through it are visible in r.
func (r *Expected[T, E]) ValuePtr() (*T, error) {
	if !r.IsSuccess() {
		return nil, wrongVariant(KindSuccess, r.kind)
	}
	return &r.value, nil
}

// ErrorPtr returns a pointer to the stored error payload.
func (r *Expected[T, E]) ErrorPtr() (*E, error) {
	if r.IsSuccess() {
		return nil, wrongVariant(KindError, r.kind)
	}
	return &r.err, nil
}

// MustValue panics unless r holds a value. Use it only where the kind is
// already known.
func (r Expected[T, E]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// MustError panics unless r holds an error.
func (r Expected[T, E]) MustError() E {
	e, err := r.Error()
	if err != nil {
		panic(err)
	}
	return e
}

func (r Expected[T, E]) ValueOr(fallback T) T {
	if r.IsSuccess() {
		return r.value
	}
	return fallback
}

func (r Expected[T, E]) ErrorOr(fallback E) E {
	if r.IsSuccess() {
		return fallback
	}
	return r.err
}

// Unexpected re-wraps the error payload so it can seed an Expected with
// another success type.
func (r Expected[T, E]) Unexpected() (Unexpected[E], error) {
	e, err := r.Error()
	if err != nil {
		return Unexpected[E]{}, err
	}
	return MakeUnexpected(e), nil
}

// Pair returns both payload fields and whether r holds a value.
// The field that does not match the kind is always zero.
func (r Expected[T, E]) Pair() (T, E, bool) {
	return r.value, r.err, r.IsSuccess()
}

// Match calls exactly one of the handlers. Nil handlers are skipped.
func (r Expected[T, E]) Match(onSuccess func(T), onError func(E)) {
	if r.IsSuccess() {
		if onSuccess != nil {
			onSuccess(r.value)
		}
		return
	}
	if onError != nil {
		onError(r.err)
	}
}

func (r Expected[T, E]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("error(%v)", r.err)
}
