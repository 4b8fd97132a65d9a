// internal/photo/handlers.go
// HTTP handlers for photo upload and management

package photo

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartlinkhq/heartlink-backend/internal/auth"
	"github.com/heartlinkhq/heartlink-backend/internal/common/utils"
)

// Handler handles photo HTTP requests
type Handler struct {
	service      Service
	maxUploadLen int64
}

// NewHandler creates a new photo handler
func NewHandler(service Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{service: service, maxUploadLen: maxUploadBytes}
}

// Upload handles POST /api/v1/photos
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadLen)
	if err := r.ParseMultipartForm(h.maxUploadLen); err != nil {
		utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	photo, err := h.service.Upload(r.Context(), userID, file, header)
	if err == ErrUnsupportedType {
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Only JPEG and PNG images are accepted")
		return
	}
	if err == ErrPhotoLimitReached {
		utils.RespondWithError(w, http.StatusConflict, "Photo limit reached")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, &UploadResponse{Photo: photo})
}

// List handles GET /api/v1/photos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	photos, err := h.service.ListPhotos(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, photos)
}

// SetPrimary handles PUT /api/v1/photos/{photoId}/primary
func (h *Handler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	photoID := mux.Vars(r)["photoId"]
	err := h.service.SetPrimary(r.Context(), userID, photoID)
	if err == ErrPhotoNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to set primary photo")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Primary photo updated"})
}

// Reanalyze handles POST /api/v1/photos/{photoId}/reanalyze
func (h *Handler) Reanalyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	photoID := mux.Vars(r)["photoId"]
	photo, err := h.service.Reanalyze(r.Context(), userID, photoID)
	if err == ErrPhotoNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reanalyze photo")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, photo)
}

// Delete handles DELETE /api/v1/photos/{photoId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	photoID := mux.Vars(r)["photoId"]
	err := h.service.Delete(r.Context(), userID, photoID)
	if err == ErrPhotoNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted"})
}
