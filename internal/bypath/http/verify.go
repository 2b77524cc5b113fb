package http

import (
	"net/http"

	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// VerifyHandler serves POST /v1/verify.
type VerifyHandler struct {
	SignatureService *service.SignatureService
}

// ServeHTTP godoc
//
//	@Summary		Verify a signed parameter set
//	@Description	Recomputes the request signature from the submitted parameters and the stored client secret and reports whether it matches. Lets services hosted elsewhere delegate signature checks.
//	@Tags			Verification
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			client_key	formData	string	true	"Client key"
//	@Param			token		formData	string	true	"Request signature digest"
//	@Success		200			{object}	bypathsdk.VerifyResponse
//	@Failure		400			{object}	bypathsdk.ErrorResponse	"bad_request"
//	@Failure		401			{object}	bypathsdk.ErrorResponse	"no_client"
//	@Failure		403			{object}	bypathsdk.ErrorResponse	"bad_hash"
//	@Router			/v1/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, ok := signedFormParams(w, r)
	if !ok {
		return
	}

	if err := h.SignatureService.Verify(r.Context(), params); err != nil {
		writeAPIError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bypathsdk.VerifyResponse{Verified: true})
}
