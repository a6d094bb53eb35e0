package main

import (
	"github.com/amp-labs/amp-list/compare"
	"github.com/amp-labs/amp-list/list"
)

// sortWords applies the configured ordering. The plain natural order goes
// through List.Sort; everything else is expressed as a comparator.
func sortWords(words *list.List[string], cfg config) {
	if cfg.order == orderNatural && !cfg.reverse {
		words.Sort()

		return
	}

	c := comparatorFor(cfg)

	if cfg.reverse {
		c = compare.Reverse(c)
	}

	words.SortFunc(c)
}

func comparatorFor(cfg config) compare.Comparator[string] {
	switch cfg.order {
	case orderNatsort:
		return compare.NaturalStrings
	case orderCollate:
		return compare.Collated(cfg.locale)
	case orderLength:
		return compare.Then(
			compare.By(func(s string) int { return len([]rune(s)) }),
			compare.Ordered[string](),
		)
	default:
		return compare.Ordered[string]()
	}
}
