package expected

import (
	"github.com/pkg/errors"
)

// ErrWrongVariantAccess is returned (or panicked with, by MustValue and
// MustError) when a payload is read that does not match the current kind.
var ErrWrongVariantAccess = errors.New("expected: wrong variant access")

func wrongVariant(want, got Kind) error {
	return errors.Wrapf(ErrWrongVariantAccess, "%s requested, holds %s", want, got)
}
