package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	l := list.Of[sortable.Int](5, 3, 7)
//	l.Sort()
//	// l.String() == "[3, 5, 7]"
//
// Plain int already has a natural ordering, so the wrapper is only needed
// where a Sortable[T] constraint is spelled out explicitly.
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
