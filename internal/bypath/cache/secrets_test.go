package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSecretCache(t *testing.T) {
	t.Parallel()

	t.Run("set then get", func(t *testing.T) {
		c := NewSecretCache()
		c.Set("ck1", "secret1", time.Minute)

		secret, ok := c.Get("ck1")
		require.True(t, ok)
		require.Equal(t, "secret1", secret)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewSecretCache()
		_, ok := c.Get("nope")
		require.False(t, ok)
	})

	t.Run("expired entries read as miss", func(t *testing.T) {
		c := NewSecretCache()
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("ck1", "secret1", time.Minute)

		now = now.Add(61 * time.Second)
		_, ok := c.Get("ck1")
		require.False(t, ok)
	})

	t.Run("zero ttl uses default", func(t *testing.T) {
		c := NewSecretCache()
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("ck1", "secret1", 0)

		now = now.Add(DefaultTTL - time.Second)
		_, ok := c.Get("ck1")
		require.True(t, ok)

		now = now.Add(2 * time.Second)
		_, ok = c.Get("ck1")
		require.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := NewSecretCache()
		c.Set("ck1", "secret1", time.Minute)
		c.Invalidate("ck1")

		_, ok := c.Get("ck1")
		require.False(t, ok)
	})

	t.Run("invalidating a missing key is a no-op", func(t *testing.T) {
		c := NewSecretCache()
		c.Invalidate("missing")
	})

	t.Run("concurrent readers and writers", func(t *testing.T) {
		c := NewSecretCache()
		done := make(chan struct{})

		go func() {
			defer close(done)
			for range 1000 {
				c.Set("ck1", "secret1", time.Minute)
				c.Invalidate("ck1")
			}
		}()

		for range 1000 {
			c.Get("ck1")
		}
		<-done
	})
}
