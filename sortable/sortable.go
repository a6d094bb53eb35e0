package sortable

import (
	"github.com/amp-labs/amp-list/compare"
)

// Sortable is implemented by types that know how to order themselves
// relative to another value of the same type.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparer is implemented by types with a three-way Compare method, such as
// time.Time. It takes precedence over Sortable when both are implemented.
type Comparer[T any] interface {
	Compare(other T) int
}
