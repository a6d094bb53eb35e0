// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ErrNotAllowed is returned by OneOf for a value outside the allowed set.
var ErrNotAllowed = errors.New("value not allowed")

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool reads a boolean in any form strconv.ParseBool accepts.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int reads a base-10 integer.
func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel reads a log level such as "debug", "INFO" or "warn+2".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(s)))

		return level, err
	}), opts)
}

// OneOf reads a string that must be one of allowed. Matching is case-insensitive
// and the value is returned lowercased.
func OneOf(key string, allowed []string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), func(s string) (string, error) {
		norm := strings.ToLower(strings.TrimSpace(s))

		if !slices.Contains(allowed, norm) {
			return norm, fmt.Errorf("%w: %q (expected one of %s)",
				ErrNotAllowed, s, strings.Join(allowed, ", "))
		}

		return norm, nil
	}), opts)
}
