package stream

import (
	"github.com/google/uuid"

	"github.com/ib-77/expected/pkg/expected"
)

// Tracked is a pipeline item: a result plus the identity of the input it came from.
type Tracked[T, E any] struct {
	ID       uuid.UUID
	Position int
	Result   expected.Expected[T, E]
}

func Track[T, E any](position int, r expected.Expected[T, E]) Tracked[T, E] {
	return Tracked[T, E]{
		ID:       uuid.New(),
		Position: position,
		Result:   r,
	}
}

// Carry attaches r to the identity of from.
func Carry[In, Out, E any](from Tracked[In, E], r expected.Expected[Out, E]) Tracked[Out, E] {
	return Tracked[Out, E]{
		ID:       from.ID,
		Position: from.Position,
		Result:   r,
	}
}
