package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	t.Run("returns requested length", func(t *testing.T) {
		for _, n := range []int{1, 24, 48} {
			s, err := RandomString(n)
			require.NoError(t, err)
			require.Len(t, s, n)
		}
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := RandomString(0)
		require.Error(t, err)
		_, err = RandomString(-5)
		require.Error(t, err)
	})

	t.Run("only alphanumeric output", func(t *testing.T) {
		s, err := RandomString(256)
		require.NoError(t, err)
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			require.True(t, ok, "unexpected character %q", r)
		}
	})

	t.Run("successive values differ", func(t *testing.T) {
		a, err := RandomString(48)
		require.NoError(t, err)
		b, err := RandomString(48)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})
}

func TestConstantTimeEquals(t *testing.T) {
	t.Parallel()

	require.True(t, ConstantTimeEquals("abc", "abc"))
	require.True(t, ConstantTimeEquals("", ""))
	require.False(t, ConstantTimeEquals("abc", "abd"))
	require.False(t, ConstantTimeEquals("abc", "abcd"))
	require.False(t, ConstantTimeEquals("abc", ""))
}
