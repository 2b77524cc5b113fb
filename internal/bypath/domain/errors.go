package domain

import "net/http"

// APIError is a verification or issuance failure carrying a machine-readable
// code, a human-readable message, and an HTTP-class status. These are returned
// as values to callers, never panicked, and rendered as structured JSON at the
// HTTP boundary.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string { return e.Code + ": " + e.Message }

// The full failure taxonomy. Handlers dispatch on these with errors.Is.
var (
	// ErrBadRequest: the reserved credential fields are incomplete. Client
	// error, not retryable without fixing the request.
	ErrBadRequest = &APIError{
		Code:    "bad_request",
		Message: "Client key or token is not set. Please check your request.",
		Status:  http.StatusBadRequest,
	}

	// ErrNoClient: unknown client key during verification. Treated as
	// unauthenticated, not a system fault.
	ErrNoClient = &APIError{
		Code:    "no_client",
		Message: "No client found. Please check if request data is proper.",
		Status:  http.StatusUnauthorized,
	}

	// ErrBadHash: signature mismatch. Authentication failure; logged but not
	// alarmed on individually.
	ErrBadHash = &APIError{
		Code:    "bad_hash",
		Message: "Failed to pass hash test. Please check your request is valid.",
		Status:  http.StatusForbidden,
	}

	// ErrClientNotFound: token issuance against an unknown client.
	ErrClientNotFound = &APIError{
		Code:    "client_not_found",
		Message: "No client found.",
		Status:  http.StatusNotFound,
	}

	// ErrTokenGenerationFailed: storage failure during issuance. A system
	// fault, eligible for caller-side retry.
	ErrTokenGenerationFailed = &APIError{
		Code:    "token_generation_failed",
		Message: "Failed to generate new token.",
		Status:  http.StatusInternalServerError,
	}
)
