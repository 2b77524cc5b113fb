package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/idx"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
	"github.com/google/uuid"
)

// TokenService issues per-user bearer tokens scoped to one client.
type TokenService struct {
	Store store.Store
}

// GetOrCreate returns the latest bearer token for the user under the client
// identified by clientKey. When no token exists and generate is true a fresh
// one is minted; with generate false the empty string is returned instead.
// Disabled or unknown clients yield domain.ErrClientNotFound.
func (s *TokenService) GetOrCreate(ctx context.Context, clientKey, userID string, generate bool) (string, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByKey(ctx, clientKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.ErrClientNotFound
		}
		return "", err
	}

	token, err := s.Store.Tokens().GetLatestToken(ctx, client.ID, userID)
	if err == nil {
		return token.Value, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	if !generate {
		return "", nil
	}

	token = domain.Token{
		ID:       idx.New().String(),
		Value:    uuid.NewString(),
		UserID:   userID,
		ClientID: client.ID,
		Label:    fmt.Sprintf("Token for %s of #%s", client.Name, userID),
		IssuedAt: time.Now(),
	}
	if err := s.Store.Tokens().CreateToken(ctx, token); err != nil {
		l.Error("failed to issue token", "error", err, "client_id", client.ID, "user_id", userID)
		return "", domain.ErrTokenGenerationFailed
	}

	l.Info("token issued", "client_id", client.ID, "user_id", userID)
	return token.Value, nil
}
