package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/cryptox"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// AttemptMiddleware attaches a fresh authentication attempt to every request.
// The attempt is request-scoped by construction; nothing survives into the
// next request, so a failed resolution can never poison later ones.
func AttemptMiddleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), httpx.CtxKeyAuthAttempt, &service.Attempt{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// currentUser resolves the request's bearer identity through the attempt on
// the context. However many times a request path calls this, the header is
// parsed and the token looked up once.
func currentUser(r *http.Request, auth *service.BearerAuthenticator) (domain.User, error) {
	ctx := r.Context()

	att, ok := ctx.Value(httpx.CtxKeyAuthAttempt).(*service.Attempt)
	if !ok {
		att = &service.Attempt{}
	}

	return auth.Authenticate(ctx, att, func() string {
		return r.Header.Get("Authorization")
	})
}

// AdminKeyMiddleware guards administrative endpoints with a shared key
// supplied in the X-Admin-Key header, compared in constant time. An empty
// configured key disables the admin surface outright.
func AdminKeyMiddleware(adminKey string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				writeError(w, http.StatusForbidden, "admin_disabled", "Administrative API is not configured.")
				return
			}
			if !cryptox.ConstantTimeEquals(adminKey, r.Header.Get("X-Admin-Key")) {
				writeError(w, http.StatusUnauthorized, "invalid_admin_key", "Missing or invalid admin key.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
