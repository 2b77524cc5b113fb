package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// TokenHandler serves POST /v1/tokens.
// Accepts application/x-www-form-urlencoded; the whole parameter set takes
// part in the request signature.
type TokenHandler struct {
	SignatureService *service.SignatureService
	TokenService     *service.TokenService
	UserService      *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Issue or fetch a user token
//	@Description	Returns the bearer token for the given user under the calling client, minting one when none exists. The request must be signed: the "token" field carries the SHA-256 digest over the sorted parameter values and the client secret.
//	@Tags			Tokens
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			client_key	formData	string	true	"Client key (24 characters)"
//	@Param			token		formData	string	true	"Request signature digest"
//	@Param			user_id		formData	string	true	"User the token is issued for"
//	@Success		200			{object}	bypathsdk.TokenResponse
//	@Failure		400			{object}	bypathsdk.ErrorResponse	"bad_request"
//	@Failure		401			{object}	bypathsdk.ErrorResponse	"no_client"
//	@Failure		403			{object}	bypathsdk.ErrorResponse	"bad_hash"
//	@Failure		404			{object}	bypathsdk.ErrorResponse	"client_not_found, user_not_found"
//	@Failure		500			{object}	bypathsdk.ErrorResponse	"token_generation_failed"
//	@Router			/v1/tokens [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, ok := signedFormParams(w, r)
	if !ok {
		return
	}

	if err := h.SignatureService.Verify(ctx, params); err != nil {
		writeAPIError(w, r, err)
		return
	}

	userID := strings.TrimSpace(params["user_id"])
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "user_id is required.")
		return
	}
	if _, err := h.UserService.GetUser(ctx, userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found", "No user found for the given id.")
			return
		}
		writeAPIError(w, r, err)
		return
	}

	value, err := h.TokenService.GetOrCreate(ctx, params[bypathsdk.ParamClientKey], userID, true)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bypathsdk.TokenResponse{Token: value})
}

// signedFormParams parses the urlencoded body into the flat parameter map the
// signature scheme hashes over. Multi-valued fields keep their first value,
// matching what signing clients produce.
func signedFormParams(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		writeError(w, http.StatusBadRequest, "bad_request", "Content-Type must be application/x-www-form-urlencoded.")
		return nil, false
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Malformed form body.")
		return nil, false
	}

	params := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		params[key] = r.PostForm.Get(key)
	}
	return params, true
}
