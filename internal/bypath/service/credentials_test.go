package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/cache"
	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/internal/bypath/store/drivers/sqlite"
	"github.com/aussiebroadwan/bypath/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newCredentialService(t *testing.T) *CredentialService {
	t.Helper()
	return &CredentialService{
		Store: newTestStore(t),
		Cache: cache.NewSecretCache(),
		TTL:   time.Minute,
	}
}

func TestCredentialServiceCreateClient(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(t)

	client, err := svc.CreateClient(ctx, "mobile-app")
	require.NoError(t, err)
	require.Len(t, client.Key, domain.ClientKeyLength)
	require.Len(t, client.Secret, domain.ClientSecretLength)
	require.Equal(t, domain.StatusEnabled, client.Status)

	stored, err := svc.Store.Clients().GetClientByKey(ctx, client.Key)
	require.NoError(t, err)
	require.Equal(t, client.Secret, stored.Secret)
}

func TestCredentialServiceSecret(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(t)

	client, err := svc.CreateClient(ctx, "cache-check")
	require.NoError(t, err)

	t.Run("unknown key resolves empty", func(t *testing.T) {
		secret, err := svc.Secret(ctx, "no-such-key")
		require.NoError(t, err)
		require.Empty(t, secret)
	})

	t.Run("empty key resolves empty", func(t *testing.T) {
		secret, err := svc.Secret(ctx, "")
		require.NoError(t, err)
		require.Empty(t, secret)
	})

	t.Run("store miss populates cache", func(t *testing.T) {
		secret, err := svc.Secret(ctx, client.Key)
		require.NoError(t, err)
		require.Equal(t, client.Secret, secret)

		cached, ok := svc.Cache.Get(client.Key)
		require.True(t, ok)
		require.Equal(t, client.Secret, cached)
	})

	t.Run("cache wins over store until invalidated", func(t *testing.T) {
		// Mutate the store behind the cache's back.
		require.NoError(t, svc.Store.Clients().UpdateClientSecret(ctx, client.ID, "changed-out-of-band"))

		secret, err := svc.Secret(ctx, client.Key)
		require.NoError(t, err)
		require.Equal(t, client.Secret, secret)

		svc.Cache.Invalidate(client.Key)
		secret, err = svc.Secret(ctx, client.Key)
		require.NoError(t, err)
		require.Equal(t, "changed-out-of-band", secret)
	})
}

func TestCredentialServiceEnsureCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(t)

	bare := domain.Client{
		ID:     idx.New().String(),
		Name:   "legacy-import",
		Status: domain.StatusEnabled,
	}
	require.NoError(t, svc.Store.Clients().CreateClient(ctx, bare))

	filled, err := svc.EnsureCredentials(ctx, bare.ID)
	require.NoError(t, err)
	require.Len(t, filled.Key, domain.ClientKeyLength)
	require.Len(t, filled.Secret, domain.ClientSecretLength)

	// A second call must not rotate anything.
	again, err := svc.EnsureCredentials(ctx, bare.ID)
	require.NoError(t, err)
	require.Equal(t, filled.Key, again.Key)
	require.Equal(t, filled.Secret, again.Secret)

	_, err = svc.EnsureCredentials(ctx, idx.New().String())
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCredentialServiceRotateSecret(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(t)

	client, err := svc.CreateClient(ctx, "rotate-me")
	require.NoError(t, err)

	// Warm the cache so rotation has something to invalidate.
	_, err = svc.Secret(ctx, client.Key)
	require.NoError(t, err)

	rotated, err := svc.RotateSecret(ctx, client.ID, "admin@ops")
	require.NoError(t, err)
	require.Len(t, rotated.Secret, domain.ClientSecretLength)
	require.NotEqual(t, client.Secret, rotated.Secret)

	_, ok := svc.Cache.Get(client.Key)
	require.False(t, ok)

	history, err := svc.ListRotations(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, client.Secret, history[0].FormerSecret)
	require.Equal(t, "admin@ops", history[0].Actor)

	_, err = svc.RotateSecret(ctx, idx.New().String(), "admin@ops")
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCredentialServiceSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := newCredentialService(t)

	client, err := svc.CreateClient(ctx, "toggle")
	require.NoError(t, err)

	_, err = svc.Secret(ctx, client.Key)
	require.NoError(t, err)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, client.ID, domain.ClientStatus("archived"))
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("disabling evicts the cached secret", func(t *testing.T) {
		updated, err := svc.SetStatus(ctx, client.ID, domain.StatusDisabled)
		require.NoError(t, err)
		require.Equal(t, domain.StatusDisabled, updated.Status)

		_, ok := svc.Cache.Get(client.Key)
		require.False(t, ok)

		// Disabled clients are invisible to the verification lookup.
		secret, err := svc.Secret(ctx, client.Key)
		require.NoError(t, err)
		require.Empty(t, secret)
	})

	t.Run("re-enabling restores verification", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, client.ID, domain.StatusEnabled)
		require.NoError(t, err)

		secret, err := svc.Secret(ctx, client.Key)
		require.NoError(t, err)
		require.NotEmpty(t, secret)
	})
}
