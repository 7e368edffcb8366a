package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/handlers"
	auth_handler "github.com/viettl/skipli/internal/handlers/auth-handler"
	"github.com/viettl/skipli/state"
)

func AuthRouter(r chi.Router, appState *state.AppState) {
	authHandler := auth_handler.NewAuthHandler(appState)

	r.Post("/api/v1/auth/login", handlers.WrapHandler(authHandler.Login))
	r.Post("/api/v1/auth/verify", handlers.WrapHandler(authHandler.Verify))
	r.Post("/api/v1/auth/login-password", handlers.WrapHandler(authHandler.LoginWithPassword))
	r.Post("/api/v1/auth/setup-account", handlers.WrapHandler(authHandler.SetupAccount))
}
