package match

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"
    "github.com/heartlinkhq/heartlink-backend/internal/common/utils"
)

type Handler struct {
    service Service
    hub     *Hub
}

func NewHandler(service Service, hub *Hub) *Handler {
    return &Handler{service: service, hub: hub}
}

// GetCompatibility computes the pairwise match between the authenticated
// user and the target user.
func (h *Handler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
    userID := r.Context().Value("userID").(int64)

    vars := mux.Vars(r)
    targetID, err := strconv.ParseInt(vars["userId"], 10, 64)
    if err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
        return
    }

    if targetID == userID {
        utils.RespondWithError(w, http.StatusBadRequest, "Cannot compute match with yourself")
        return
    }

    result, err := h.service.ComputeMatch(r.Context(), userID, targetID)
    if err != nil {
        if errors.Is(err, ErrUserNotFound) {
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute match")
        return
    }

    utils.RespondWithJSON(w, http.StatusOK, result)
}

// RankCandidates scores a candidate set (or the whole eligible pool when no
// IDs are given) against the authenticated user.
func (h *Handler) RankCandidates(w http.ResponseWriter, r *http.Request) {
    userID := r.Context().Value("userID").(int64)

    var dto RankRequestDTO
    if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }
    if err := utils.ValidateStruct(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    results, err := h.service.RankCandidates(r.Context(), userID, dto.CandidateIDs, RankOptions{
        TopN:     dto.TopN,
        MinScore: dto.MinScore,
    })
    if err != nil {
        if errors.Is(err, ErrUserNotFound) {
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to rank candidates")
        return
    }

    utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *Handler) GetDailyPicks(w http.ResponseWriter, r *http.Request) {
    userID := r.Context().Value("userID").(int64)

    limit := dailyPickCount
    if raw := r.URL.Query().Get("limit"); raw != "" {
        if l, err := strconv.Atoi(raw); err == nil {
            limit = l
        }
    }

    picks, err := h.service.GetDailyPicks(r.Context(), userID, limit)
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get daily picks")
        return
    }

    utils.RespondWithJSON(w, http.StatusOK, picks)
}

func (h *Handler) GeneratePicks(w http.ResponseWriter, r *http.Request) {
    if err := h.service.GenerateDailyPicks(r.Context()); err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate picks")
        return
    }

    utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "generated"})
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
    h.hub.ServeWS(w, r)
}
