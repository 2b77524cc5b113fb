package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the user identity resolved by the bearer
	// authenticator. Absent for anonymous requests.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyAuthAttempt carries the per-request authentication attempt state.
	// It is request-scoped by construction: a fresh value is attached at the
	// start of every request.
	CtxKeyAuthAttempt ctxKey = "auth_attempt"
)

// ContextWithUserID records the resolved user identity on the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the resolved user identity, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}
