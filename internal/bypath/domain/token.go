package domain

import "time"

// Token is a per-user bearer credential issued under a specific client. The
// value is a random UUID; records are never mutated after creation. Expiry and
// deletion are administrative concerns outside this core.
type Token struct {
	ID       string
	Value    string
	UserID   string // identity the token authenticates as
	ClientID string // client the token was issued under
	Label    string // human-readable, e.g. "Token for Mobile App of #01J..."
	IssuedAt time.Time
}
