package list

import (
	"iter"
)

// Seq returns an iterator over a snapshot of the elements, for use with range:
//
//	for v := range l.Seq() {
//	    fmt.Println(v)
//	}
func (l *List[T]) Seq() iter.Seq[T] {
	snapshot := l.ToSlice()

	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// All is like Seq but also yields each element's index.
func (l *List[T]) All() iter.Seq2[int, T] {
	snapshot := l.ToSlice()

	return func(yield func(int, T) bool) {
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Collect builds a list from every value seq yields.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	var values []T

	for v := range seq {
		values = append(values, v)
	}

	return Of(values...)
}
