// Package sortable defines what it means for an element type to have a
// natural ordering, and resolves that ordering into a comparator.
//
// # Overview
//
// list.List.Sort sorts by natural ordering, which it obtains from [Natural].
// A type T has a natural ordering when any of the following holds, checked
// in this order:
//
//   - T implements [Comparer] (a three-way Compare method, as time.Time has)
//   - T implements [Sortable] (Equals plus LessThan)
//   - T's underlying kind is a signed or unsigned integer, a float, or a string
//
// The last rule covers named types such as `type Celsius float64` without any
// extra methods. The wrapper types [Int], [Float], [String] and [Byte] exist for
// code that needs the ordering expressed as a Sortable constraint.
//
// # Creating Custom Sortable Types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Compare(other Version) int {
//	    if c := cmp.Compare(v.Major, other.Major); c != 0 {
//	        return c
//	    }
//	    return cmp.Compare(v.Minor, other.Minor)
//	}
//
// # Types Without an Ordering
//
// Structs, pointers, maps and interfaces have no natural ordering unless they
// implement one of the interfaces above. [Natural] reports false for them, and
// sorting them by natural order is a caller error. Use a comparator from the
// compare package instead.
package sortable
