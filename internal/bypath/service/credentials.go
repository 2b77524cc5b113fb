package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/cache"
	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/cryptox"
	"github.com/aussiebroadwan/bypath/pkg/idx"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
)

var ErrInvalidStatus = errors.New("invalid client status")

// CredentialService manages client credential pairs: issuance, cached secret
// lookup for signature checks, rotation with history, and status changes.
type CredentialService struct {
	Store store.Store
	Cache *cache.SecretCache
	TTL   time.Duration
}

// Secret returns the secret for an enabled client key, consulting the cache
// before the store. Unknown or disabled keys resolve to the empty string with
// a nil error so signature verification can map them to its own failure mode.
func (s *CredentialService) Secret(ctx context.Context, clientKey string) (string, error) {
	if clientKey == "" {
		return "", nil
	}
	if secret, ok := s.Cache.Get(clientKey); ok {
		return secret, nil
	}

	client, err := s.Store.Clients().GetClientByKey(ctx, clientKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	s.Cache.Set(clientKey, client.Secret, s.TTL)
	return client.Secret, nil
}

// CreateClient registers a new client with a freshly generated credential
// pair. The secret is returned in the domain object and should be shown to
// the operator once.
func (s *CredentialService) CreateClient(ctx context.Context, name string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	now := time.Now()
	client := domain.Client{
		ID:        idx.New().String(),
		Name:      name,
		Key:       cryptox.MustRandomString(domain.ClientKeyLength),
		Secret:    cryptox.MustRandomString(domain.ClientSecretLength),
		Status:    domain.StatusEnabled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		l.Error("failed to create client", "error", err, "name", name)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", client.ID, "name", name)
	return client, nil
}

// EnsureCredentials backfills the credential pair of an existing client.
// Missing parts are generated, present parts are left untouched, so the call
// is idempotent and the key never changes once assigned.
func (s *CredentialService) EnsureCredentials(ctx context.Context, clientID string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, domain.ErrClientNotFound
		}
		return domain.Client{}, err
	}

	var newKey, newSecret string
	if client.Key == "" {
		newKey = cryptox.MustRandomString(domain.ClientKeyLength)
		client.Key = newKey
	}
	if client.Secret == "" {
		newSecret = cryptox.MustRandomString(domain.ClientSecretLength)
		client.Secret = newSecret
	}
	if newKey == "" && newSecret == "" {
		return client, nil
	}

	if err := s.Store.Clients().UpdateClientCredentials(ctx, clientID, newKey, newSecret); err != nil {
		l.Error("failed to backfill credentials", "error", err, "client_id", clientID)
		return domain.Client{}, err
	}

	l.Info("credentials backfilled", "client_id", clientID, "new_key", newKey != "", "new_secret", newSecret != "")
	return client, nil
}

// RotateSecret replaces a client's secret and archives the former one in the
// rotation history, all in one transaction. The cache entry for the client's
// key is dropped so stale secrets never outlive a rotation.
func (s *CredentialService) RotateSecret(ctx context.Context, clientID, actor string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var rotated domain.Client

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		client, err := tx.Clients().GetClientByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.ErrClientNotFound
			}
			return err
		}

		newSecret := cryptox.MustRandomString(domain.ClientSecretLength)
		if err := tx.Clients().UpdateClientSecret(ctx, clientID, newSecret); err != nil {
			return err
		}

		if client.Secret != "" {
			err = tx.Clients().AppendSecretRotation(ctx, domain.SecretRotation{
				ID:           idx.New().String(),
				ClientID:     clientID,
				FormerSecret: client.Secret,
				Actor:        actor,
				RotatedAt:    time.Now(),
			})
			if err != nil {
				return err
			}
		}

		client.Secret = newSecret
		rotated = client
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrClientNotFound) {
			l.Error("failed to rotate secret", "error", err, "client_id", clientID)
		}
		return domain.Client{}, err
	}

	s.Cache.Invalidate(rotated.Key)
	l.Info("client secret rotated", "client_id", clientID, "actor", actor)
	return rotated, nil
}

// SetStatus flips a client between enabled and disabled. Disabling drops the
// cached secret so in-flight signature checks stop honouring the client
// within the same request cycle, not a cache TTL later.
func (s *CredentialService) SetStatus(ctx context.Context, clientID string, status domain.ClientStatus) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if !status.Valid() {
		return domain.Client{}, ErrInvalidStatus
	}

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, domain.ErrClientNotFound
		}
		return domain.Client{}, err
	}

	if client.Status == status {
		return client, nil
	}

	if err := s.Store.Clients().UpdateClientStatus(ctx, clientID, status); err != nil {
		l.Error("failed to update client status", "error", err, "client_id", clientID)
		return domain.Client{}, err
	}

	if status != domain.StatusEnabled {
		s.Cache.Invalidate(client.Key)
	}

	client.Status = status
	l.Info("client status updated", "client_id", clientID, "status", string(status))
	return client, nil
}

// GetClient returns a client by ID.
func (s *CredentialService) GetClient(ctx context.Context, clientID string) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, domain.ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return client, nil
}

// ListClients returns all registered clients.
func (s *CredentialService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// ListRotations returns a client's secret rotation history, newest first.
func (s *CredentialService) ListRotations(ctx context.Context, clientID string) ([]domain.SecretRotation, error) {
	if _, err := s.Store.Clients().GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return s.Store.Clients().ListSecretRotations(ctx, clientID)
}
