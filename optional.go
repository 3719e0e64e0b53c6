package selbounds

import "fmt"

// Optional holds a value that may be absent. The zero value is absent.
//
// It is used for the two sides of a selection record, where "no bound"
// must stay distinguishable from a bound at the origin.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.ok }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Value returns the value, or the zero value when absent.
func (o Optional[T]) Value() T { return o.value }

// String returns "none" or the formatted value.
func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}
