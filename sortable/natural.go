package sortable

import (
	"cmp"
	"reflect"

	"github.com/amp-labs/amp-list/compare"
)

// Natural returns the natural-order comparator for T, and false if T has none.
// See the package documentation for the resolution rules.
//
// The interface checks are made against T itself, so a T whose Compare or
// LessThan method has a pointer receiver only qualifies when T is the pointer
// type. Calling the returned comparator on nil interface values panics.
func Natural[T any]() (compare.Comparator[T], bool) {
	typ := reflect.TypeFor[T]()

	switch {
	case typ.Implements(reflect.TypeFor[Comparer[T]]()):
		return func(a, b T) int {
			return any(a).(Comparer[T]).Compare(b) //nolint:forcetypeassert
		}, true
	case typ.Implements(reflect.TypeFor[Sortable[T]]()):
		return func(a, b T) int {
			switch {
			case any(a).(Sortable[T]).LessThan(b): //nolint:forcetypeassert
				return -1
			case any(b).(Sortable[T]).LessThan(a): //nolint:forcetypeassert
				return 1
			default:
				return 0
			}
		}, true
	}

	if c, ok := predeclared[T](); ok {
		return c, true
	}

	return byKind[T](typ)
}

// HasNatural reports whether T has a natural ordering.
func HasNatural[T any]() bool {
	_, ok := Natural[T]()

	return ok
}

// predeclared avoids reflection for the built-in ordered types.
func predeclared[T any]() (compare.Comparator[T], bool) {
	var zero T

	switch any(zero).(type) {
	case int:
		return ordered[T, int](), true
	case int8:
		return ordered[T, int8](), true
	case int16:
		return ordered[T, int16](), true
	case int32:
		return ordered[T, int32](), true
	case int64:
		return ordered[T, int64](), true
	case uint:
		return ordered[T, uint](), true
	case uint8:
		return ordered[T, uint8](), true
	case uint16:
		return ordered[T, uint16](), true
	case uint32:
		return ordered[T, uint32](), true
	case uint64:
		return ordered[T, uint64](), true
	case uintptr:
		return ordered[T, uintptr](), true
	case float32:
		return ordered[T, float32](), true
	case float64:
		return ordered[T, float64](), true
	case string:
		return ordered[T, string](), true
	default:
		return nil, false
	}
}

// ordered is only called once the type switch has proven T and O identical.
func ordered[T any, O cmp.Ordered]() compare.Comparator[T] {
	return any(compare.Comparator[O](cmp.Compare[O])).(compare.Comparator[T]) //nolint:forcetypeassert
}

// byKind covers named types whose underlying type is ordered.
func byKind[T any](typ reflect.Type) (compare.Comparator[T], bool) {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	default:
		return nil, false
	}
}
