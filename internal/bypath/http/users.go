package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// UsersHandler serves the administrative user endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Register a user identity
//	@Description	Seeds a user that tokens can be issued for. Display name defaults to the username.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bypathsdk.CreateUserRequest	true	"User details"
//	@Success		201		{object}	bypathsdk.UserResponse
//	@Failure		400		{object}	bypathsdk.ErrorResponse
//	@Failure		409		{object}	bypathsdk.ErrorResponse	"username_taken"
//	@Security		AdminKey
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bypathsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Malformed JSON body.")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "username is required.")
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req.Username, strings.TrimSpace(req.DisplayName))
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "username_taken", "A user with that username already exists.")
			return
		}
		writeAPIError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bypathsdk.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}
