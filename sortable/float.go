package sortable

import "cmp"

// Float is a sortable wrapper type for float64. NaN orders before every
// other value and equals itself, so a slice holding NaNs still sorts into a
// consistent order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals reports whether both values are equal, treating NaN as equal to NaN.
func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan reports whether f orders before other.
func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
