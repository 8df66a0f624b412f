package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/service"
	"github.com/MKhiriev/go-user-mgmt/internal/utils"
	"github.com/MKhiriev/go-user-mgmt/models"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.IssueToken(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", request.Username).Msg("invalid credentials")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token issuance")
			h.internalServerError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
