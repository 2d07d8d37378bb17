package navigation

import "fmt"

// Result is the typed outcome of a window interaction: either Ok with a
// value, or Cancelled. Immutable once constructed.
type Result[T any] struct {
	value T
	ok    bool
}

// Ok builds an accepted result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Cancelled builds a result with no value.
func Cancelled[T any]() Result[T] {
	return Result[T]{}
}

// Value returns the carried value and whether the interaction was
// accepted. The value is the zero of T for cancelled results.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

func (r Result[T]) String() string {
	if !r.ok {
		return "cancelled"
	}
	return fmt.Sprintf("ok(%v)", r.value)
}
