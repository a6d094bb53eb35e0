// Package errors holds the error taxonomy shared by the list, sortable and
// command packages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the sentinel behind every IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoSuchElement is returned by an iterator that has been exhausted.
	ErrNoSuchElement = errors.New("no such element")

	// ErrUnordered is raised when a natural-order sort is requested for a type
	// that has no natural ordering.
	ErrUnordered = errors.New("type has no natural ordering")
)

// IndexOutOfRangeError reports an index that fell outside the valid range
// of an operation. Index is the index the caller supplied and Size is the
// number of elements at the time of the call.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

// NewIndexOutOfRange returns an *IndexOutOfRangeError for the given index and size.
func NewIndexOutOfRange(index, size int) error {
	return &IndexOutOfRangeError{Index: index, Size: size}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, size %d", ErrIndexOutOfRange, e.Index, e.Size)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the single error if there's
// only one, or the errors joined with errors.Join.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
