package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/stretchr/testify/require"
)

// countingStore instruments the token lookup path so tests can assert the
// authenticator runs it at most once per request.
type countingStore struct {
	store.Store
	tokenLookups int
	userLookups  int
}

func (c *countingStore) Tokens() store.Tokens { return countingTokens{c.Store.Tokens(), c} }
func (c *countingStore) Users() store.Users   { return countingUsers{c.Store.Users(), c} }

type countingTokens struct {
	store.Tokens
	s *countingStore
}

func (t countingTokens) GetTokenByValue(ctx context.Context, value string) (domain.Token, error) {
	t.s.tokenLookups++
	return t.Tokens.GetTokenByValue(ctx, value)
}

type countingUsers struct {
	store.Users
	s *countingStore
}

func (u countingUsers) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u.s.userLookups++
	return u.Users.GetUserByID(ctx, id)
}

func TestParseBearer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"canonical scheme", "Bypath abc-123", "abc-123", true},
		{"lowercase scheme", "bypath abc-123", "abc-123", true},
		{"mixed case scheme", "bYpAtH abc-123", "abc-123", true},
		{"surrounding whitespace", "  Bypath abc-123  ", "abc-123", true},
		{"empty header", "", "", false},
		{"scheme only", "Bypath", "", false},
		{"scheme with blank token", "Bypath   ", "", false},
		{"foreign scheme", "Bearer abc-123", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := parseBearer(tc.header)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.token, token)
		})
	}
}

func TestBearerAuthenticatorResolvesUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	client := seedClient(t, st, "bearer-client")
	user := seedUser(t, st, "carol")

	tokenSvc := &TokenService{Store: st}
	value, err := tokenSvc.GetOrCreate(ctx, client.Key, user.ID, true)
	require.NoError(t, err)

	auth := &BearerAuthenticator{Store: st}

	var att Attempt
	got, err := auth.Authenticate(ctx, &att, func() string { return "Bypath " + value })
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.DisplayName, got.DisplayName)
}

func TestBearerAuthenticatorSingleAttempt(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	client := seedClient(t, st, "once-client")
	user := seedUser(t, st, "dave")

	tokenSvc := &TokenService{Store: st}
	value, err := tokenSvc.GetOrCreate(ctx, client.Key, user.ID, true)
	require.NoError(t, err)

	counting := &countingStore{Store: st}
	auth := &BearerAuthenticator{Store: counting}

	headerReads := 0
	readHeader := func() string {
		headerReads++
		return "Bypath " + value
	}

	var att Attempt
	first, err := auth.Authenticate(ctx, &att, readHeader)
	require.NoError(t, err)
	require.Equal(t, user.ID, first.ID)

	second, err := auth.Authenticate(ctx, &att, readHeader)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, 1, headerReads)
	require.Equal(t, 1, counting.tokenLookups)
	require.Equal(t, 1, counting.userLookups)
}

func TestBearerAuthenticatorPassThrough(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &BearerAuthenticator{Store: st}

	t.Run("no header", func(t *testing.T) {
		var att Attempt
		user, err := auth.Authenticate(ctx, &att, func() string { return "" })
		require.NoError(t, err)
		require.Empty(t, user.ID)
	})

	t.Run("foreign scheme ignored without lookup", func(t *testing.T) {
		counting := &countingStore{Store: st}
		instrumented := &BearerAuthenticator{Store: counting}

		var att Attempt
		user, err := instrumented.Authenticate(ctx, &att, func() string { return "Bearer not-ours" })
		require.NoError(t, err)
		require.Empty(t, user.ID)
		require.Zero(t, counting.tokenLookups)
	})

	t.Run("unknown token passes through", func(t *testing.T) {
		var att Attempt
		user, err := auth.Authenticate(ctx, &att, func() string { return "Bypath nope" })
		require.NoError(t, err)
		require.Empty(t, user.ID)
	})

	t.Run("failed attempt is not retried", func(t *testing.T) {
		counting := &countingStore{Store: st}
		instrumented := &BearerAuthenticator{Store: counting}

		headerReads := 0
		readHeader := func() string {
			headerReads++
			return "Bypath nope"
		}

		var att Attempt
		_, err := instrumented.Authenticate(ctx, &att, readHeader)
		require.NoError(t, err)
		_, err = instrumented.Authenticate(ctx, &att, readHeader)
		require.NoError(t, err)

		require.Equal(t, 1, headerReads)
		require.Equal(t, 1, counting.tokenLookups)
	})
}
