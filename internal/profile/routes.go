// internal/profile/routes.go
// Route registration for profile endpoints

package profile

import (
	"github.com/gorilla/mux"

	"github.com/heartlinkhq/heartlink-backend/internal/auth"
)

// RegisterRoutes sets up all profile routes
func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profiles").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/me", handler.UpsertMyProfile).Methods("PUT")
	api.HandleFunc("/me", handler.GetMyProfile).Methods("GET")
	api.HandleFunc("/{userId:[0-9]+}", handler.GetProfile).Methods("GET")
}
