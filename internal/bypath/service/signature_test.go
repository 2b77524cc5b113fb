package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/stretchr/testify/require"
)

// staticSecrets is a SecretSource over a fixed key-to-secret map.
type staticSecrets map[string]string

func (s staticSecrets) Secret(_ context.Context, clientKey string) (string, error) {
	return s[clientKey], nil
}

func signedParams(clientKey, secret string, extra map[string]string) map[string]string {
	params := map[string]string{bypathsdk.ParamClientKey: clientKey}
	for k, v := range extra {
		params[k] = v
	}
	params[bypathsdk.ParamToken] = bypathsdk.SignParams(params, secret)
	return params
}

func TestSignatureServiceVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &SignatureService{Secrets: staticSecrets{"CK1": "SECRET1"}}

	t.Run("accepts a correctly signed request", func(t *testing.T) {
		params := signedParams("CK1", "SECRET1", map[string]string{"user_id": "42", "action": "sync"})
		require.NoError(t, svc.Verify(ctx, params))
	})

	t.Run("missing client key", func(t *testing.T) {
		err := svc.Verify(ctx, map[string]string{bypathsdk.ParamToken: "deadbeef"})
		require.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("missing token", func(t *testing.T) {
		err := svc.Verify(ctx, map[string]string{bypathsdk.ParamClientKey: "CK1"})
		require.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("empty credential fields", func(t *testing.T) {
		err := svc.Verify(ctx, map[string]string{
			bypathsdk.ParamClientKey: "",
			bypathsdk.ParamToken:     "",
		})
		require.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("unknown client key", func(t *testing.T) {
		params := signedParams("CK-unknown", "whatever", nil)
		require.ErrorIs(t, svc.Verify(ctx, params), domain.ErrNoClient)
	})

	t.Run("wrong secret produces bad hash", func(t *testing.T) {
		params := signedParams("CK1", "not-the-secret", map[string]string{"user_id": "42"})
		require.ErrorIs(t, svc.Verify(ctx, params), domain.ErrBadHash)
	})

	t.Run("tampered parameter produces bad hash", func(t *testing.T) {
		params := signedParams("CK1", "SECRET1", map[string]string{"user_id": "42"})
		params["user_id"] = "43"
		require.ErrorIs(t, svc.Verify(ctx, params), domain.ErrBadHash)
	})
}
