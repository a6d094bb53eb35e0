package list

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-list/compare"
	"github.com/amp-labs/amp-list/errors"
	"github.com/amp-labs/amp-list/sortable"
)

// Sort orders the elements by T's natural ordering, as resolved by
// sortable.Natural. Sorting a list whose element type has no natural ordering
// is a programming error: Sort panics with an error wrapping
// errors.ErrUnordered and leaves the elements as they were. Use TrySort to
// get the error back instead, or SortFunc to supply the ordering.
//
// The sort is not stable.
func (l *List[T]) Sort() {
	if err := l.TrySort(); err != nil {
		panic(err)
	}
}

// TrySort is Sort, but returns an error wrapping errors.ErrUnordered instead
// of panicking when T has no natural ordering.
func (l *List[T]) TrySort() error {
	natural, ok := sortable.Natural[T]()
	if !ok {
		return fmt.Errorf("%w: %v", errors.ErrUnordered, reflect.TypeFor[T]())
	}

	l.SortFunc(natural)

	return nil
}

// SortFunc orders the elements in place using c. The sort is not stable.
func (l *List[T]) SortFunc(c compare.Comparator[T]) {
	quickSort(l.elements, c)
}

// SortOrdered sorts a list of a built-in ordered type. It is the
// compile-time-checked counterpart of List.Sort.
func SortOrdered[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// quickSort is a partition-exchange sort taking the last element of each
// range as its pivot. It recurses into the smaller partition and loops over
// the larger one, so stack depth stays logarithmic even when every pivot
// lands at an end of its range.
func quickSort[T any](values []T, c compare.Comparator[T]) {
	low, high := 0, len(values)-1

	for low < high {
		p := partition(values, low, high, c)

		if p-low < high-p {
			quickSortRange(values, low, p-1, c)
			low = p + 1
		} else {
			quickSortRange(values, p+1, high, c)
			high = p - 1
		}
	}
}

func quickSortRange[T any](values []T, low, high int, c compare.Comparator[T]) {
	if low < high {
		quickSort(values[low:high+1], c)
	}
}

// partition moves every element ordering before the pivot values[high] to the
// front of [low, high], then swaps the pivot in right after them and returns
// its final index.
func partition[T any](values []T, low, high int, c compare.Comparator[T]) int {
	pivot := values[high]
	boundary := low - 1

	for j := low; j < high; j++ {
		if c(values[j], pivot) < 0 {
			boundary++
			values[boundary], values[j] = values[j], values[boundary]
		}
	}

	values[boundary+1], values[high] = values[high], values[boundary+1]

	return boundary + 1
}
