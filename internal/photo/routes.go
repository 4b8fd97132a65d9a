// internal/photo/routes.go
// Route registration for photo endpoints

package photo

import (
	"github.com/gorilla/mux"

	"github.com/heartlinkhq/heartlink-backend/internal/auth"
)

// RegisterRoutes sets up all photo routes
func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/photos").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.Upload).Methods("POST")
	api.HandleFunc("", handler.List).Methods("GET")
	api.HandleFunc("/{photoId}/primary", handler.SetPrimary).Methods("PUT")
	api.HandleFunc("/{photoId}/reanalyze", handler.Reanalyze).Methods("POST")
	api.HandleFunc("/{photoId}", handler.Delete).Methods("DELETE")
}
