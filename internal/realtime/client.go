package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20 // 1 MB
)

// Client is one live transport session. It is created on handshake and
// destroyed on disconnect; it is never persisted.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	hub       *Hub
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	ctx, cancel := context.WithCancel(hub.ctx)
	return &Client{
		ID:     id,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		hub:    hub,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the read/write pumps. Split out from construction so
// tests can drive a client without a live socket.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
	})
}

// SendEvent queues an outgoing event; a slow consumer's event is dropped
// rather than blocking the caller.
func (c *Client) SendEvent(evt OutgoingEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("event", evt.Event).Msg("realtime: failed to marshal event")
		return
	}

	select {
	case c.Send <- data:
	case <-c.ctx.Done():
	default:
		log.Warn().Str("clientID", c.ID).Str("event", evt.Event).Msg("realtime: slow consumer, dropping event")
	}
}

// writePump takes data from c.Send and writes it to the socket, plus
// keep-alive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// readPump reads inbound events and hands them to the hub. The deferred
// unregister is the disconnect signal: it retracts presence and room
// membership exactly once per connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("clientID", c.ID).Msg("realtime: unexpected close")
			}
			break
		}

		c.hub.handleEvent(c, raw)
	}
}
