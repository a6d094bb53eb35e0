// Package compare provides equality and ordering glue for generic containers.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualsFunc adapts a Comparable type into a plain equality function, which is
// the shape list.EqualFunc expects.
func EqualsFunc[T Comparable[T]]() func(a, b T) bool {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}
