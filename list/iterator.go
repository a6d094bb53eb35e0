package list

import (
	"github.com/amp-labs/amp-list/errors"
)

// Iterator is a single-pass, forward-only cursor over the elements a list held
// when the iterator was created. It cannot be rewound; ask the list for a new
// one to traverse again.
type Iterator[T any] struct {
	values []T
	cursor int
}

// Iterator returns an iterator over a private copy of the current elements.
// Later changes to the list, including sorting, are not visible through it.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{values: l.ToSlice()}
}

// SharedIterator returns an iterator over the list's current backing slice
// without copying it. Add, Insert, RemoveAt and Clear install a new backing
// slice and so never affect it, but a Sort or SortFunc made while it is in
// use reorders the elements it has yet to return.
func (l *List[T]) SharedIterator() *Iterator[T] {
	return &Iterator[T]{values: l.elements}
}

// HasNext reports whether Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < len(it.values)
}

// Next returns the next element and advances the cursor. Once the iterator is
// exhausted it returns errors.ErrNoSuchElement.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T

		return zero, errors.ErrNoSuchElement
	}

	value := it.values[it.cursor]
	it.cursor++

	return value, nil
}

// Remaining returns how many elements are left.
func (it *Iterator[T]) Remaining() int {
	return len(it.values) - it.cursor
}
