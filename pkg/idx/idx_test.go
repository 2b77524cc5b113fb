package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	prev := New()
	_, err := Parse(prev.String())
	require.NoError(t, err)

	for range 100 {
		id := New()
		require.Len(t, id.String(), 26)
		require.Greater(t, id.String(), prev.String(), "IDs must sort in generation order")
		prev = id
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParse(t *testing.T) {
	t.Parallel()

	valid := New().String()

	t.Run("accepts canonical ulid", func(t *testing.T) {
		id, err := Parse(valid)
		require.NoError(t, err)
		require.Equal(t, valid, id.String())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		id, err := Parse("  " + valid + "\n")
		require.NoError(t, err)
		require.Equal(t, valid, id.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "not-a-ulid", "0123456789"} {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrInvalid)
		}
	})
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, Zero.IsZero())
	require.False(t, New().IsZero())
	require.True(t, Zero.Time().IsZero())
}
