package realtime

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the web app's deploy host is fixed
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AuthenticatorFunc vets the handshake request and yields the user id the
// session belongs to.
type AuthenticatorFunc func(r *http.Request) (string, error)

// HandleWS upgrades the request and hands the connection to the hub. The
// authenticated user id is not presence: the client still has to announce
// itself with a user_online event.
func (h *Hub) HandleWS(auth AuthenticatorFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth != nil {
			if _, err := auth(r); err != nil {
				log.Warn().Err(err).Msg("realtime: handshake rejected")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error().Err(err).Msg("realtime: upgrade failed")
			return
		}

		client := newClient(uuid.New().String(), conn, h)
		h.Register(client)
		client.Start()
	}
}
