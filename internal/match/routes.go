package match

import (
    "github.com/gorilla/mux"
    "github.com/heartlinkhq/heartlink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
    api := router.PathPrefix("/api/v1/match").Subrouter()
    api.Use(authMiddleware.Authenticate)

    // Pairwise compatibility
    api.HandleFunc("/compatibility/{userId}", handler.GetCompatibility).Methods("GET")

    // Candidate ranking
    api.HandleFunc("/rank", handler.RankCandidates).Methods("POST")

    // Daily picks
    api.HandleFunc("/daily-picks", handler.GetDailyPicks).Methods("GET")
    api.HandleFunc("/daily-picks/generate", handler.GeneratePicks).Methods("POST")

    // Realtime pick notifications
    api.HandleFunc("/ws", handler.ServeWS).Methods("GET")
}
