package chat_handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/handlers"
	"github.com/viettl/skipli/internal/middleware"
	chat_service "github.com/viettl/skipli/internal/use-case/chat-case"
	"github.com/viettl/skipli/state"
)

type ChatHandler struct {
	State   *state.AppState
	Service chat_service.ChatServiceContract
}

func NewChatHandler(appState *state.AppState) *ChatHandler {
	return &ChatHandler{
		State:   appState,
		Service: chat_service.NewChatService(appState),
	}
}

// RoomMessages serves the REST view of a conversation, the websocket join
// backfill returns the same history.
func (h *ChatHandler) RoomMessages(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}

	other := chi.URLParam(r, "userId")
	if other == "" {
		return app_error.NewAppError(http.StatusBadRequest, "Missing user id", "userId")
	}

	resp, err := h.Service.RoomMessages(r.Context(), claims.Sub, other)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("messages fetched", *resp, handlers.RequestID(r)))
	return nil
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}

	other := chi.URLParam(r, "userId")
	if other == "" {
		return app_error.NewAppError(http.StatusBadRequest, "Missing user id", "userId")
	}

	resp, err := h.Service.MarkRead(r.Context(), claims.Sub, other)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("messages marked read", *resp, handlers.RequestID(r)))
	return nil
}
