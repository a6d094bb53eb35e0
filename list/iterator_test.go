package list

import (
	"testing"

	"github.com/amp-labs/amp-list/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Parallel()

	l := Of("One", "Two")
	it := l.Iterator()

	assert.True(t, it.HasNext())
	assert.Equal(t, 2, it.Remaining())

	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "One", first)

	assert.True(t, it.HasNext())

	second, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "Two", second)

	assert.False(t, it.HasNext())
	assert.Equal(t, 0, it.Remaining())
}

func TestIterator_Exhausted(t *testing.T) {
	t.Parallel()

	it := Of("One").Iterator()

	got, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "One", got)

	got, err = it.Next()
	require.ErrorIs(t, err, errors.ErrNoSuchElement)
	assert.Empty(t, got)

	// Stays exhausted.
	_, err = it.Next()
	require.ErrorIs(t, err, errors.ErrNoSuchElement)
	assert.False(t, it.HasNext())
}

func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	it := New[int]().Iterator()

	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, errors.ErrNoSuchElement)
}

func drain[T any](t *testing.T, it *Iterator[T]) []T {
	t.Helper()

	var out []T

	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)

		out = append(out, v)
	}

	return out
}

func TestIterator_SnapshotIgnoresMutation(t *testing.T) {
	t.Parallel()

	l := Of(3, 1, 2)
	it := l.Iterator()

	l.Add(4)
	require.NoError(t, l.Insert(0, 0))
	_, err := l.RemoveAt(1)
	require.NoError(t, err)
	l.Sort()

	assert.Equal(t, []int{3, 1, 2}, drain(t, it))

	l.Clear()

	assert.Empty(t, drain(t, l.Iterator()))
}

func TestSharedIterator(t *testing.T) {
	t.Parallel()

	t.Run("does not see structural changes", func(t *testing.T) {
		t.Parallel()

		l := Of("a", "b", "c")
		it := l.SharedIterator()

		l.Add("d")
		_, err := l.RemoveAt(0)
		require.NoError(t, err)
		l.Clear()

		assert.Equal(t, []string{"a", "b", "c"}, drain(t, it))
	})

	t.Run("sees an in-place sort", func(t *testing.T) {
		t.Parallel()

		l := Of(3, 1, 2)
		it := l.SharedIterator()

		l.Sort()

		assert.Equal(t, []int{1, 2, 3}, drain(t, it))
	})
}

func TestIterator_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	l := Of(1, 2, 3)

	drain(t, l.Iterator())
	drain(t, l.SharedIterator())

	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}
