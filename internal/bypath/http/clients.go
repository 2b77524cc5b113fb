package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// ClientsHandler serves the administrative client endpoints under /v1/clients.
type ClientsHandler struct {
	CredentialService *service.CredentialService
}

// HandleCreate godoc
//
//	@Summary		Register a new API client
//	@Description	Creates a client with a freshly generated key and secret. The secret is returned once; store it securely.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bypathsdk.CreateClientRequest	true	"Client name"
//	@Success		201		{object}	bypathsdk.ClientInfo
//	@Failure		400		{object}	bypathsdk.ErrorResponse
//	@Failure		401		{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bypathsdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Malformed JSON body.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "name is required.")
		return
	}

	client, err := h.CredentialService.CreateClient(r.Context(), req.Name)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clientInfo(client, true))
}

// HandleList godoc
//
//	@Summary		List API clients
//	@Description	Returns all registered clients, newest first. Secrets are redacted; fetch a single client to reveal one.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{object}	bypathsdk.ListClientsResponse
//	@Failure		401	{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.CredentialService.ListClients(r.Context())
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	out := bypathsdk.ListClientsResponse{Clients: make([]bypathsdk.ClientInfo, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, clientInfo(c, false))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Fetch one API client
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"Client ID"
//	@Success		200	{object}	bypathsdk.ClientInfo
//	@Failure		404	{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.CredentialService.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientInfo(client, true))
}

// HandleRotateSecret godoc
//
//	@Summary		Regenerate a client secret
//	@Description	Replaces the client's signing secret and archives the former one in the rotation history. In-flight signature checks stop honouring the old secret immediately.
//	@Tags			Clients
//	@Produce		json
//	@Param			id				path		string	true	"Client ID"
//	@Param			X-Admin-Actor	header		string	false	"Administrator recorded in the rotation history"
//	@Success		200				{object}	bypathsdk.RotateSecretResponse
//	@Failure		404				{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients/{id}/secret [post].
func (h *ClientsHandler) HandleRotateSecret(w http.ResponseWriter, r *http.Request) {
	actor := strings.TrimSpace(r.Header.Get("X-Admin-Actor"))
	if actor == "" {
		actor = "admin"
	}

	client, err := h.CredentialService.RotateSecret(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bypathsdk.RotateSecretResponse{Secret: client.Secret})
}

// HandleListRotations godoc
//
//	@Summary		List a client's secret rotation history
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"Client ID"
//	@Success		200	{object}	bypathsdk.ListRotationsResponse
//	@Failure		404	{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients/{id}/rotations [get].
func (h *ClientsHandler) HandleListRotations(w http.ResponseWriter, r *http.Request) {
	rotations, err := h.CredentialService.ListRotations(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	out := bypathsdk.ListRotationsResponse{Rotations: make([]bypathsdk.RotationInfo, 0, len(rotations))}
	for _, rot := range rotations {
		out.Rotations = append(out.Rotations, bypathsdk.RotationInfo{
			FormerSecret: rot.FormerSecret,
			Actor:        rot.Actor,
			RotatedAt:    rot.RotatedAt.UTC().Format(time.RFC3339),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateStatus godoc
//
//	@Summary		Enable or disable a client
//	@Description	Disabled clients fail signature verification and token issuance until re-enabled. Disabling also evicts the cached secret.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Client ID"
//	@Param			request	body		bypathsdk.UpdateStatusRequest	true	"New status: enabled or disabled"
//	@Success		200		{object}	bypathsdk.ClientInfo
//	@Failure		400		{object}	bypathsdk.ErrorResponse
//	@Failure		404		{object}	bypathsdk.ErrorResponse
//	@Security		AdminKey
//	@Router			/v1/clients/{id}/status [post].
func (h *ClientsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req bypathsdk.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Malformed JSON body.")
		return
	}

	client, err := h.CredentialService.SetStatus(r.Context(), r.PathValue("id"), domain.ClientStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "bad_request", "status must be enabled or disabled.")
			return
		}
		writeAPIError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientInfo(client, false))
}

func clientInfo(c domain.Client, includeSecret bool) bypathsdk.ClientInfo {
	info := bypathsdk.ClientInfo{
		ID:        c.ID,
		Name:      c.Name,
		Key:       c.Key,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeSecret {
		info.Secret = c.Secret
	}
	return info
}
