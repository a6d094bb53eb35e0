package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/amp-labs/amp-list/envutil"
	"github.com/amp-labs/amp-list/errors"
	"golang.org/x/text/language"
)

const (
	orderNatural = "natural"
	orderNatsort = "natsort"
	orderCollate = "collate"
	orderLength  = "length"
)

var orders = []string{orderNatural, orderNatsort, orderCollate, orderLength} //nolint:gochecknoglobals

type config struct {
	order   string
	locale  language.Tag
	reverse bool
	remove  int
	words   []string
}

// loadConfig reads SEQSORT_ORDER, SEQSORT_LOCALE and SEQSORT_REVERSE, then
// lets command-line flags override them. Every problem found is reported at once.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	var errs errors.Collection

	orderEnv := envutil.OneOf("SEQSORT_ORDER", orders, envutil.Default(orderNatural))
	_, err := orderEnv.Value()
	errs.Add(err)

	localeEnv := envutil.String("SEQSORT_LOCALE", envutil.Default("en"))

	reverseEnv := envutil.Bool("SEQSORT_REVERSE", envutil.Default(false))
	_, err = reverseEnv.Value()
	errs.Add(err)

	fs := flag.NewFlagSet("seqsort", flag.ContinueOnError)
	fs.SetOutput(stderr)

	order := fs.String("order", orderEnv.ValueOrElse(orderNatural),
		"ordering to sort by: natural, natsort, collate or length")
	locale := fs.String("locale", localeEnv.ValueOrElse("en"), "BCP 47 language tag used by -order=collate")
	reverse := fs.Bool("reverse", reverseEnv.ValueOrElse(false), "sort in descending order")
	remove := fs.Int("remove", -1, "index of a word to remove before sorting")

	if err = fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		order:   *order,
		reverse: *reverse,
		remove:  *remove,
		words:   fs.Args(),
	}

	if !slices.Contains(orders, cfg.order) {
		errs.Add(fmt.Errorf("%w: unknown order %q", errBadConfig, cfg.order))
	}

	tag, err := language.Parse(*locale)
	if err != nil {
		errs.Add(fmt.Errorf("%w: locale %q: %w", errBadConfig, *locale, err))
	}

	cfg.locale = tag

	return cfg, errs.GetError()
}
