package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var (
		u         domain.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, display_name, created_at FROM users WHERE id = ?
`, id).Scan(&u.ID, &u.Username, &u.DisplayName, &createdAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = fromUnix(createdAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, username, display_name, created_at)
VALUES (?, ?, ?, ?)
`, u.ID, u.Username, u.DisplayName, toUnix(createdAt))
	return mapConstraint(err)
}
