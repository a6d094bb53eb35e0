package envutil_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-list/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooSmall = errors.New("too small")

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestString(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		t.Setenv("TEST_STRING", "hello")

		reader := envutil.String("TEST_STRING")
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
		assert.True(t, reader.HasValue())
		assert.Equal(t, "TEST_STRING", reader.Key())
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String("TEST_STRING_MISSING")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
	})

	t.Run("with default", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String("TEST_STRING_MISSING", envutil.Default("default"))
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestBool(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		t.Setenv("TEST_BOOL", " TRUE ")

		value, err := envutil.Bool("TEST_BOOL").Value()
		require.NoError(t, err)
		assert.True(t, value)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "maybe")

		reader := envutil.Bool("TEST_BOOL", envutil.Default(true))

		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		require.Error(t, reader.Error())
		assert.False(t, reader.ValueOrElse(false))
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		assert.True(t, envutil.Bool("TEST_BOOL_MISSING", envutil.Default(true)).ValueOrFatal())
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestInt(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")

		value, err := envutil.Int("TEST_INT").Value()
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("validation", func(t *testing.T) {
		t.Setenv("TEST_INT", "3")

		reader := envutil.Int("TEST_INT", envutil.Validate(func(v int) error {
			if v < 10 {
				return errTooSmall
			}

			return nil
		}))

		_, err := reader.Value()
		require.ErrorIs(t, err, errTooSmall)
		assert.Equal(t, 99, reader.ValueOrElse(99))
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestSlogLevel(t *testing.T) {
	t.Run("named level", func(t *testing.T) {
		t.Setenv("TEST_LEVEL", "debug")

		value, err := envutil.SlogLevel("TEST_LEVEL").Value()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, value)
	})

	t.Run("offset level", func(t *testing.T) {
		t.Setenv("TEST_LEVEL", "WARN+2")

		value, err := envutil.SlogLevel("TEST_LEVEL").Value()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn+2, value)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		value := envutil.SlogLevel("TEST_LEVEL_MISSING", envutil.Default(slog.LevelInfo)).ValueOrFatal()
		assert.Equal(t, slog.LevelInfo, value)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestOneOf(t *testing.T) {
	allowed := []string{"natural", "natsort"}

	t.Run("allowed value is normalized", func(t *testing.T) {
		t.Setenv("TEST_ORDER", " NatSort ")

		value, err := envutil.OneOf("TEST_ORDER", allowed).Value()
		require.NoError(t, err)
		assert.Equal(t, "natsort", value)
	})

	t.Run("rejected value", func(t *testing.T) {
		t.Setenv("TEST_ORDER", "random")

		_, err := envutil.OneOf("TEST_ORDER", allowed).Value()
		require.ErrorIs(t, err, envutil.ErrNotAllowed)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	missing := envutil.Map(envutil.String("TEST_MAP_MISSING"), func(s string) (int, error) {
		return len(s), nil
	})

	assert.False(t, missing.HasValue())
	require.NoError(t, missing.Error())

	present := envutil.Map(envutil.String("TEST_MAP_MISSING", envutil.Default("four")), func(s string) (int, error) {
		return len(s), nil
	})

	value, err := present.Value()
	require.NoError(t, err)
	assert.Equal(t, 4, value)
}
