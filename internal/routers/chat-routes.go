package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/handlers"
	chat_handler "github.com/viettl/skipli/internal/handlers/chat-handler"
	"github.com/viettl/skipli/internal/middleware"
	"github.com/viettl/skipli/state"
)

func ChatRouter(r chi.Router, appState *state.AppState) {
	chatHandler := chat_handler.NewChatHandler(appState)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.JWTAuth(appState.JwtSecret))

		protected.Get("/api/v1/chat/{userId}/messages", handlers.WrapHandler(chatHandler.RoomMessages))
		protected.Patch("/api/v1/chat/{userId}/read", handlers.WrapHandler(chatHandler.MarkRead))
	})
}
