package http

import (
	"net/http"

	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// WhoAmIHandler serves GET /v1/whoami.
type WhoAmIHandler struct {
	Authenticator *service.BearerAuthenticator
}

// ServeHTTP godoc
//
//	@Summary		Resolve the calling identity
//	@Description	Resolves the "Authorization: Bypath {token}" header to its owning user. Requests without a usable credential are not rejected; they resolve to an anonymous identity.
//	@Tags			Identity
//	@Produce		json
//	@Param			Authorization	header		string	false	"Bearer credential. Format: Bypath {token}"
//	@Success		200				{object}	bypathsdk.WhoAmIResponse
//	@Router			/v1/whoami [get].
func (h *WhoAmIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Authenticator)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	if user.ID == "" {
		httpx.WriteJSON(w, http.StatusOK, bypathsdk.WhoAmIResponse{Authenticated: false})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bypathsdk.WhoAmIResponse{
		Authenticated: true,
		UserID:        user.ID,
		DisplayName:   user.DisplayName,
	})
}
