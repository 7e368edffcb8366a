package hub_handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/handlers"
	"github.com/viettl/skipli/internal/realtime"
)

type HubHandler struct {
	Hub *realtime.Hub
}

func NewHubHandler(hub *realtime.Hub) *HubHandler {
	return &HubHandler{
		Hub: hub,
	}
}

func (h *HubHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "classroom-server",
	})
}

func (h *HubHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	stats := h.Hub.Stats()
	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("get websocket stats", stats, handlers.RequestID(r)))
	return nil
}

func (h *HubHandler) HandleGetOnlineUsers(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	users := h.Hub.OnlineUsers()
	resp := map[string]any{
		"count": len(users),
		"users": users,
	}
	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("get online users", resp, handlers.RequestID(r)))
	return nil
}

func (h *HubHandler) HandleGetUserStatus(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	userID := chi.URLParam(r, "userId")

	online := false
	for _, u := range h.Hub.OnlineUsers() {
		if u == userID {
			online = true
			break
		}
	}

	resp := map[string]any{
		"user_id": userID,
		"online":  online,
	}
	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("get user status", resp, handlers.RequestID(r)))
	return nil
}
