package bypathsdk

// ErrorResponse is the structured error body returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenResponse is returned by POST /v1/tokens.
type TokenResponse struct {
	Token string `json:"token"`
}

// VerifyResponse is returned by POST /v1/verify on success.
type VerifyResponse struct {
	Verified bool `json:"verified"`
}

// WhoAmIResponse is returned by GET /v1/whoami. Authenticated is false when
// the bearer authenticator passed the request through unresolved.
type WhoAmIResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
}

// CreateClientRequest is the body for POST /v1/clients.
type CreateClientRequest struct {
	Name string `json:"name"`
}

// ClientInfo describes a client in admin responses. Secret is only populated
// on single-client fetches, never in list views.
type ClientInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Key       string `json:"key"`
	Secret    string `json:"secret,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListClientsResponse is returned by GET /v1/clients.
type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// RotateSecretResponse is returned by POST /v1/clients/{id}/secret with the
// newly generated secret.
type RotateSecretResponse struct {
	Secret string `json:"secret"`
}

// RotationInfo describes one entry of a client's secret rotation history.
type RotationInfo struct {
	FormerSecret string `json:"former_secret"`
	Actor        string `json:"actor"`
	RotatedAt    string `json:"rotated_at"`
}

// ListRotationsResponse is returned by GET /v1/clients/{id}/rotations.
type ListRotationsResponse struct {
	Rotations []RotationInfo `json:"rotations"`
}

// UpdateStatusRequest is the body for POST /v1/clients/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateUserRequest is the body for POST /v1/users.
type CreateUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// UserResponse describes a user identity.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of individual dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
