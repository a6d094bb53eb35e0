// Command seqsort reads words, collects them into a list and prints them
// sorted.
//
// Usage:
//
//	seqsort [-order natural|natsort|collate|length] [-locale tag] [-reverse] [-remove index] [word ...]
//
// With no words on the command line, seqsort reads one word per line from
// standard input. Logging is configured through LOG_JSON, LOG_LEVEL and
// LOG_OUTPUT.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-list/list"
	"github.com/amp-labs/amp-list/logger"
)

var errBadConfig = errors.New("bad configuration")

func main() {
	os.Exit(realMain(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func realMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger.ConfigureLogging("seqsort", logger.WithOutput(stderr))

	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		logger.Get(ctx).Error("invalid configuration", "error", err)

		return 2
	}

	words := cfg.words
	if len(words) == 0 {
		words, err = readWords(stdin)
		if err != nil {
			logger.Get(ctx).Error("reading words", "error", err)

			return 1
		}
	}

	if err := run(ctx, cfg, words, stdout); err != nil {
		logger.Get(ctx).Error("seqsort failed", "error", err)

		return 1
	}

	return 0
}

func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}

	return words, scanner.Err()
}

func run(ctx context.Context, cfg config, words []string, out io.Writer) error {
	ctx = logger.With(ctx, "order", cfg.order)

	l := list.New[string]()
	for _, w := range words {
		l.Add(w)
	}

	logger.Get(ctx).Debug("loaded words", "list", l)

	if cfg.remove >= 0 {
		removed, err := l.RemoveAt(cfg.remove)
		if err != nil {
			return fmt.Errorf("removing word: %w", err)
		}

		logger.Get(ctx).Debug("removed word", "index", cfg.remove, "word", removed)
	}

	sortWords(l, cfg)

	logger.Get(ctx).Debug("sorted words", "list", l)

	_, err := fmt.Fprintln(out, l)

	return err
}
