package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/middleware"
	"github.com/viettl/skipli/internal/realtime"
	"github.com/viettl/skipli/state"
)

func NewRouter(appState *state.AppState, hub *realtime.Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestId)

	AuthRouter(r, appState)
	InstructorRouter(r, appState)
	StudentRouter(r, appState)
	ChatRouter(r, appState)
	HubRouter(r, appState, hub)
	return r
}
