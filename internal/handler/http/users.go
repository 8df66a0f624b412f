package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
	"github.com/MKhiriev/go-user-mgmt/internal/utils"
	"github.com/MKhiriev/go-user-mgmt/internal/validators"
	"github.com/MKhiriev/go-user-mgmt/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.services.UserService.ListUsers(r.Context())

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-integer user id in path")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int("id", id).Msg("user not found")
			w.WriteHeader(http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			h.internalServerError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, request)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-integer user id in path")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, id, request)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-integer user id in path")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int("id", id).Msg("user not found")
			w.WriteHeader(http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user deletion")
			h.internalServerError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeUserError translates the error contract of the user service's write
// operations into HTTP responses: field validation problems become a 400
// with the field→messages mapping as the body, duplicate emails become a
// 409, unknown ids become a 404, anything else is an unexpected fault.
func (h *Handler) writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrors validators.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		log.Err(err).Msg("validation failed")
		utils.WriteJSON(w, fieldErrors, http.StatusBadRequest)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Err(err).Msg("email already exists")
		utils.WriteJSON(w, models.MessageResponse{Message: MsgEmailAlreadyExists}, http.StatusConflict)
	case errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user not found")
		w.WriteHeader(http.StatusNotFound)
	default:
		log.Err(err).Msg("unexpected error occurred during user write")
		h.internalServerError(w, r, err)
	}
}

// userIDFromRequest parses the {id} path parameter as an integer.
func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
