package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, name, client_key, client_secret, status, created_at, updated_at`

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+clientColumns+` FROM clients WHERE id = ?
`, id)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByKey(ctx context.Context, key string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+clientColumns+` FROM clients WHERE client_key = ? AND status = 'enabled'
`, key)
	return scanClient(row)
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	now := toUnix(time.Now())
	createdAt := now
	if !c.CreatedAt.IsZero() {
		createdAt = toUnix(c.CreatedAt)
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO clients (id, name, client_key, client_secret, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.Name, mapStringNull(c.Key), mapStringNull(c.Secret), string(c.Status), createdAt, now)
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClientCredentials(ctx context.Context, clientID, key, secret string) error {
	// Empty arguments keep the stored value, so a generated key is never
	// overwritten by a later save.
	_, err := r.db.ExecContext(ctx, `
UPDATE clients
SET client_key    = COALESCE(NULLIF(?, ''), client_key),
    client_secret = COALESCE(NULLIF(?, ''), client_secret),
    updated_at    = ?
WHERE id = ?
`, key, secret, toUnix(time.Now()), clientID)
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClientSecret(ctx context.Context, clientID, secret string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE clients SET client_secret = ?, updated_at = ? WHERE id = ?
`, secret, toUnix(time.Now()), clientID)
	return err
}

func (r *clientsRepo) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE clients SET status = ?, updated_at = ? WHERE id = ?
`, string(status), toUnix(time.Now()), clientID)
	return err
}

func (r *clientsRepo) AppendSecretRotation(ctx context.Context, rot domain.SecretRotation) error {
	rotatedAt := rot.RotatedAt
	if rotatedAt.IsZero() {
		rotatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO secret_rotations (id, client_id, former_secret, actor, rotated_at)
VALUES (?, ?, ?, ?, ?)
`, rot.ID, rot.ClientID, rot.FormerSecret, rot.Actor, toUnix(rotatedAt))
	return err
}

func (r *clientsRepo) ListSecretRotations(ctx context.Context, clientID string) ([]domain.SecretRotation, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, client_id, former_secret, actor, rotated_at
FROM secret_rotations
WHERE client_id = ?
ORDER BY rotated_at DESC, id DESC
`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rotations []domain.SecretRotation
	for rows.Next() {
		var rot domain.SecretRotation
		var rotatedAt int64
		if err := rows.Scan(&rot.ID, &rot.ClientID, &rot.FormerSecret, &rot.Actor, &rotatedAt); err != nil {
			return nil, err
		}
		rot.RotatedAt = fromUnix(rotatedAt)
		rotations = append(rotations, rot)
	}
	return rotations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var (
		c                    domain.Client
		key, secret          sql.NullString
		status               string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &key, &secret, &status, &createdAt, &updatedAt); err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.Key = mapNullString(key)
	c.Secret = mapNullString(secret)
	c.Status = domain.ClientStatus(status)
	c.CreatedAt = fromUnix(createdAt)
	c.UpdatedAt = fromUnix(updatedAt)
	return c, nil
}
