package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
)

// writeAPIError renders a failure as the structured JSON error body. Known
// domain errors carry their own status and code; anything else is a 500 and
// gets logged, since unexpected errors are system faults rather than caller
// mistakes.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		httpx.WriteJSON(w, apiErr.Status, bypathsdk.ErrorResponse{
			Error:            apiErr.Code,
			ErrorDescription: apiErr.Message,
		})
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
	httpx.WriteJSON(w, http.StatusInternalServerError, bypathsdk.ErrorResponse{
		Error:            "server_error",
		ErrorDescription: "An unexpected error occurred.",
	})
}

// writeError renders an ad-hoc error code without a domain counterpart.
func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, bypathsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}
