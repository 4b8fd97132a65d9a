// internal/profile/handlers.go
// HTTP handlers for questionnaire profiles

package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/heartlinkhq/heartlink-backend/internal/auth"
	"github.com/heartlinkhq/heartlink-backend/internal/common/utils"
)

// Handler handles profile HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new profile handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// UpsertMyProfile handles PUT /api/v1/profiles/me
func (h *Handler) UpsertMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), userID, &req)
	if errors.Is(err, ErrInvalidGender) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid gender")
		return
	}
	if errors.Is(err, ErrTooManyInterests) {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GetMyProfile handles GET /api/v1/profiles/me
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.respondWithProfile(w, r, userID)
}

// GetProfile handles GET /api/v1/profiles/{userId}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	h.respondWithProfile(w, r, userID)
}

func (h *Handler) respondWithProfile(w http.ResponseWriter, r *http.Request, userID int64) {
	profile, err := h.service.GetProfile(r.Context(), userID)
	if err == ErrProfileNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}
