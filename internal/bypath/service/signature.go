package service

import (
	"context"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/cryptox"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
)

// SecretSource resolves a client key to its secret. An empty secret with a
// nil error means the key is unknown or the client is disabled.
type SecretSource interface {
	Secret(ctx context.Context, clientKey string) (string, error)
}

// SignatureService verifies signed request parameter sets against the shared
// hashing scheme in pkg/bypathsdk.
type SignatureService struct {
	Secrets SecretSource
}

// Verify checks a signed parameter set. Exactly the two reserved credential
// fields must be present, the client key must resolve to a secret, and the
// recomputed digest must match the submitted one. Failures surface as the
// structured domain errors so handlers can map them straight to responses.
func (s *SignatureService) Verify(ctx context.Context, params map[string]string) error {
	l := slogx.FromContext(ctx)

	clientKey, hasKey := params[bypathsdk.ParamClientKey]
	submitted, hasToken := params[bypathsdk.ParamToken]
	if !hasKey || !hasToken || clientKey == "" || submitted == "" {
		return domain.ErrBadRequest
	}

	secret, err := s.Secrets.Secret(ctx, clientKey)
	if err != nil {
		return err
	}
	if secret == "" {
		l.Info("signature check for unknown client key", "client_key", clientKey)
		return domain.ErrNoClient
	}

	expected := bypathsdk.SignParams(params, secret)
	if !cryptox.ConstantTimeEquals(expected, submitted) {
		l.Info("signature mismatch", "client_key", clientKey)
		return domain.ErrBadHash
	}

	return nil
}
