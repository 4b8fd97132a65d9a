// internal/auth/routes.go
// Route registration for authentication endpoints

package auth

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all authentication routes
func RegisterRoutes(router *mux.Router, handler *Handler, middleware *Middleware) {
	public := router.PathPrefix("/api/v1/auth").Subrouter()
	public.HandleFunc("/signup", handler.Signup).Methods("POST")
	public.HandleFunc("/signin", handler.Signin).Methods("POST")
	public.HandleFunc("/refresh", handler.Refresh).Methods("POST")

	protected := router.PathPrefix("/api/v1/auth").Subrouter()
	protected.Use(middleware.Authenticate)
	protected.HandleFunc("/me", handler.Me).Methods("GET")
}
