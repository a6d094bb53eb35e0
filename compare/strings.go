package compare

import (
	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings so that embedded numbers compare numerically,
// e.g. "file2" comes before "file10".
func NaturalStrings(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Collated returns a comparator that orders strings by the collation rules of
// the given language, e.g. placing "é" next to "e" instead of after "z".
//
// The returned comparator owns a collate.Collator, which is not safe for
// concurrent use; create one comparator per goroutine.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	collator := collate.New(tag, opts...)

	return collator.CompareString
}
