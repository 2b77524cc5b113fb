package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
)

// AuthScheme is the Authorization scheme for bearer tokens, matched
// case-insensitively.
const AuthScheme = "Bypath"

// Attempt tracks authentication state across a single request so the header
// is parsed and the token resolved at most once, no matter how many layers
// ask for the current user.
type Attempt struct {
	tried bool
	user  domain.User
}

// BearerAuthenticator resolves Authorization headers carrying the Bypath
// scheme to user identities. Requests without the scheme, or with a token
// that resolves to nothing, pass through unauthenticated rather than being
// rejected; downstream handlers decide whether identity is required.
type BearerAuthenticator struct {
	Store store.Store
}

// Authenticate resolves the request's bearer token to a user. The first call
// on an Attempt reads the header via readHeader and performs the lookups;
// subsequent calls return the memoised result without touching the header or
// the store again. The returned user is the zero value when the request
// carries no usable credential.
func (a *BearerAuthenticator) Authenticate(ctx context.Context, att *Attempt, readHeader func() string) (domain.User, error) {
	if att.tried {
		return att.user, nil
	}
	att.tried = true

	value, ok := parseBearer(readHeader())
	if !ok {
		return domain.User{}, nil
	}

	l := slogx.FromContext(ctx)

	token, err := a.Store.Tokens().GetTokenByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("bearer token not recognised")
			return domain.User{}, nil
		}
		return domain.User{}, err
	}

	user, err := a.Store.Users().GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("bearer token references missing user", "user_id", token.UserID)
			return domain.User{}, nil
		}
		return domain.User{}, err
	}

	att.user = user
	return user, nil
}

// parseBearer extracts the token from a "Bypath <token>" Authorization
// value. The scheme comparison ignores case; anything else yields no token.
func parseBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, AuthScheme) {
		return "", false
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}
	return token, true
}
