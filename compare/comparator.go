package compare

import (
	"cmp"
)

// Comparator is a three-way comparison function. It returns a negative number
// when a orders before b, zero when they are equivalent, and a positive number
// when a orders after b.
//
// Only the sign of the result is significant. Sorting in the list package
// relies on the comparator being a consistent ordering (transitive, and
// antisymmetric in sign); a comparator that isn't still terminates but leaves
// the elements in an unspecified order.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural comparator for the built-in ordered types.
// NaN orders before every other float, matching cmp.Compare.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts the order imposed by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a comparator that orders by first and breaks ties with next.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
//	byName := compare.By(func(p Person) string { return p.Name })
//	people.SortFunc(compare.Then(byAge, byName))
func Then[T any](first Comparator[T], next ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if c := first(a, b); c != 0 {
			return c
		}

		for _, n := range next {
			if c := n(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// By orders values by a key extracted from each of them.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// FromLess builds a comparator out of a strict less-than function.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
