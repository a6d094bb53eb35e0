// Package list provides List, a growable sequence container with indexed
// access, snapshot iteration and in-place quicksort.
//
// A List keeps its backing slice exactly as long as its contents: every Add,
// Insert, RemoveAt and Clear installs a freshly sized slice rather than
// growing or shrinking the old one. That keeps no spare capacity around, and
// it means a slice handed out before a mutation is never written to by it.
//
// List is not safe for concurrent use. Callers sharing one across goroutines
// must guard it with their own lock.
package list

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-list/errors"
)

// List is a growable sequence of T. The zero value is an empty list ready to use.
type List[T any] struct {
	elements []T
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding a copy of values, in order.
func Of[T any](values ...T) *List[T] {
	l := &List[T]{}

	if len(values) > 0 {
		l.elements = make([]T, len(values))
		copy(l.elements, values)
	}

	return l
}

// Add appends value to the end of the list.
func (l *List[T]) Add(value T) {
	grown := make([]T, len(l.elements)+1)
	copy(grown, l.elements)
	grown[len(l.elements)] = value

	l.elements = grown
}

// Insert places value at index, shifting the elements at index and after it
// one position toward the end. Index may equal Size(), which appends.
// An index outside [0, Size()] returns an *errors.IndexOutOfRangeError and
// leaves the list untouched.
func (l *List[T]) Insert(index int, value T) error {
	size := len(l.elements)

	if index < 0 || index > size {
		return errors.NewIndexOutOfRange(index, size)
	}

	grown := make([]T, size+1)
	copy(grown, l.elements[:index])
	grown[index] = value
	copy(grown[index+1:], l.elements[index:])

	l.elements = grown

	return nil
}

// RemoveAt removes and returns the element at index, shifting the elements
// after it one position toward the start. An index outside [0, Size())
// returns an *errors.IndexOutOfRangeError and leaves the list untouched.
func (l *List[T]) RemoveAt(index int) (T, error) {
	size := len(l.elements)

	if index < 0 || index >= size {
		var zero T

		return zero, errors.NewIndexOutOfRange(index, size)
	}

	removed := l.elements[index]

	shrunk := make([]T, size-1)
	copy(shrunk, l.elements[:index])
	copy(shrunk[index:], l.elements[index+1:])

	l.elements = shrunk

	return removed, nil
}

// Get returns the element at index. An index outside [0, Size()) returns an
// *errors.IndexOutOfRangeError instead of panicking.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T

		return zero, errors.NewIndexOutOfRange(index, len(l.elements))
	}

	return l.elements[index], nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.elements = nil
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return len(l.elements)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return len(l.elements) == 0
}

// ToSlice returns a copy of the elements in storage order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.elements))
	copy(out, l.elements)

	return out
}

// String renders the list as "[e1, e2, ..., en]", formatting each element
// with %v. An empty list renders as "[]".
func (l *List[T]) String() string {
	if len(l.elements) == 0 {
		return "[]"
	}

	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range l.elements {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, v)
	}

	sb.WriteByte(']')

	return sb.String()
}

// LogValue implements slog.LogValuer so a list can be passed straight to a logger.
func (l *List[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", len(l.elements)),
		slog.String("elements", l.String()),
	)
}

// Equal reports whether a and b hold the same elements in the same order.
// A nil list is equal to an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	as, bs := a.view(), b.view()

	if len(as) != len(bs) {
		return false
	}

	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}

	return true
}

// view returns the backing slice, tolerating a nil list.
func (l *List[T]) view() []T {
	if l == nil {
		return nil
	}

	return l.elements
}
