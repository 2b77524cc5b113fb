package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Lookup of a nonexistent record returns ErrNotFound, never a
// driver error; callers treat it as a normal negative result.
type Store interface {
	Clients() Clients
	Tokens() Tokens
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store. The
	// caller MUST Commit or Rollback the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. Preferred over Tx for multi-step mutations such as
	// secret rotation.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// GetClientByID fetches a client regardless of status (admin paths).
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// GetClientByKey fetches an enabled client by its public key. Disabled
	// clients are invisible to this lookup, matching the verification path.
	GetClientByKey(ctx context.Context, key string) (domain.Client, error)

	// ListClients returns all clients, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts a new client. Key and secret may be empty; they
	// are filled in by the first credential save.
	CreateClient(ctx context.Context, c domain.Client) error

	// UpdateClientCredentials sets key and/or secret and bumps updated_at.
	// Empty arguments leave the stored value untouched, which keeps the key
	// immutable once generated.
	UpdateClientCredentials(ctx context.Context, clientID, key, secret string) error

	// UpdateClientSecret replaces the signing secret and bumps updated_at.
	UpdateClientSecret(ctx context.Context, clientID, secret string) error

	// UpdateClientStatus transitions the lifecycle state.
	UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus) error

	// AppendSecretRotation records an audit entry for a secret regeneration.
	AppendSecretRotation(ctx context.Context, rot domain.SecretRotation) error

	// ListSecretRotations returns the rotation history, newest first.
	ListSecretRotations(ctx context.Context, clientID string) ([]domain.SecretRotation, error)
}

type Tokens interface {
	// CreateToken stores a new token record.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetLatestToken returns the most recently issued token for a
	// (client, user) pair. Ordering is by issuance time then record ID, so
	// the winner is deterministic even when concurrent issuance produced
	// duplicates in the same instant.
	GetLatestToken(ctx context.Context, clientID, userID string) (domain.Token, error)

	// GetTokenByValue resolves a presented bearer token to its record.
	GetTokenByValue(ctx context.Context, value string) (domain.Token, error)
}

type Users interface {
	// GetUserByID resolves an identity, used for token labels and bearer
	// resolution.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a new user (id provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error
}
