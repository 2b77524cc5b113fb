package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	issuedAt := t.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO tokens (id, value, user_id, client_id, label, issued_at)
VALUES (?, ?, ?, ?, ?, ?)
`, t.ID, t.Value, t.UserID, t.ClientID, t.Label, toUnix(issuedAt))
	return mapConstraint(err)
}

func (r *tokensRepo) GetLatestToken(ctx context.Context, clientID, userID string) (domain.Token, error) {
	// ULID ids sort by creation order, so the id tie-break keeps "most recent
	// wins" deterministic for same-second duplicates.
	row := r.db.QueryRowContext(ctx, `
SELECT id, value, user_id, client_id, label, issued_at
FROM tokens
WHERE client_id = ? AND user_id = ?
ORDER BY issued_at DESC, id DESC
LIMIT 1
`, clientID, userID)
	return scanToken(row)
}

func (r *tokensRepo) GetTokenByValue(ctx context.Context, value string) (domain.Token, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, value, user_id, client_id, label, issued_at
FROM tokens
WHERE value = ?
`, value)
	return scanToken(row)
}

func scanToken(row rowScanner) (domain.Token, error) {
	var (
		t        domain.Token
		issuedAt int64
	)
	if err := row.Scan(&t.ID, &t.Value, &t.UserID, &t.ClientID, &t.Label, &issuedAt); err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.IssuedAt = fromUnix(issuedAt)
	return t, nil
}
