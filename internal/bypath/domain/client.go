package domain

import "time"

// Credential lengths match what existing integrations already store.
const (
	ClientKeyLength    = 24
	ClientSecretLength = 48
)

// ClientStatus is the lifecycle state of a registered client.
type ClientStatus string

const (
	StatusEnabled  ClientStatus = "enabled"
	StatusDisabled ClientStatus = "disabled"
)

// Valid reports whether s is a known status value.
func (s ClientStatus) Valid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

// Client is a registered external application permitted to call the API.
// Key is the public identifier, generated once on first save and immutable
// thereafter. Secret is the private signing secret and may be rotated.
type Client struct {
	ID        string
	Name      string
	Key       string
	Secret    string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enabled reports whether the client may authenticate requests.
func (c Client) Enabled() bool { return c.Status == StatusEnabled }

// SecretRotation is the audit record appended whenever a client secret is
// regenerated.
type SecretRotation struct {
	ID           string
	ClientID     string
	FormerSecret string
	Actor        string // administrator who requested the rotation
	RotatedAt    time.Time
}
