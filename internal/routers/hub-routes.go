package routers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/handlers"
	hub_handler "github.com/viettl/skipli/internal/handlers/hub-handler"
	"github.com/viettl/skipli/internal/realtime"
	"github.com/viettl/skipli/internal/utils"
	"github.com/viettl/skipli/state"
)

func HubRouter(r chi.Router, appState *state.AppState, hub *realtime.Hub) {
	hubHandler := hub_handler.NewHubHandler(hub)

	// websocket handshakes carry the token as a query param, browsers
	// cannot set headers on websocket upgrades
	authenticate := func(req *http.Request) (string, error) {
		token := req.URL.Query().Get("token")
		if token == "" {
			return "", fmt.Errorf("missing token")
		}
		claims, err := utils.ParseAndVerifySign(token, appState.JwtSecret)
		if err != nil {
			return "", err
		}
		return claims.Sub, nil
	}

	r.Get("/ws", hub.HandleWS(authenticate))

	r.Route("/api/v1/hub", func(r chi.Router) {
		r.Get("/health", hubHandler.HandleHealth)
		r.Get("/stats", handlers.WrapHandler(hubHandler.HandleGetStats))
		r.Get("/online", handlers.WrapHandler(hubHandler.HandleGetOnlineUsers))
		r.Get("/users/{userId}/status", handlers.WrapHandler(hubHandler.HandleGetUserStatus))
	})
}
