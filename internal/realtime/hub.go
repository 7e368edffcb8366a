package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/viettl/skipli/internal/entity"
	chat_repo "github.com/viettl/skipli/internal/repo/chat"
)

const persistTimeout = 10 * time.Second

// Hub owns all realtime state for one server process: the connection set,
// the presence map (connection -> user) and room membership. It has an
// explicit lifecycle (built at startup, injected into handlers, cleared
// by Close) and every bit of it is lost on restart.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	presence map[*Client]string

	repo chat_repo.ChatRepoContract

	ctx    context.Context
	cancel context.CancelFunc

	stats   HubStats
	statsMu sync.RWMutex
}

type HubStats struct {
	TotalRooms       int       `json:"total_rooms"`
	TotalClients     int       `json:"total_clients"`
	TotalConnections int64     `json:"total_connections"`
	MessagesSent     int64     `json:"messages_sent"`
	LastReset        time.Time `json:"last_reset"`
}

func NewHub(repo chat_repo.ChatRepoContract) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:  make(map[*Client]struct{}),
		rooms:    make(map[string]map[*Client]struct{}),
		presence: make(map[*Client]string),
		repo:     repo,
		ctx:      ctx,
		cancel:   cancel,
		stats: HubStats{
			LastReset: time.Now(),
		},
	}
}

// Register adds a freshly upgraded connection to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.updateStats(func(stats *HubStats) {
		stats.TotalConnections++
	})

	log.Info().Str("clientID", c.ID).Msg("realtime: client registered")
}

// Unregister removes a connection from every room it joined, retracts its
// presence and drops it from the hub. Safe to call for a connection that
// was never registered.
func (h *Hub) Unregister(c *Client) {
	h.MarkOffline(c)

	h.mu.Lock()
	for roomID, members := range h.rooms {
		if _, ok := members[c]; ok {
			delete(members, c)
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	delete(h.clients, c)
	h.mu.Unlock()

	log.Info().Str("clientID", c.ID).Msg("realtime: client unregistered")
}

// MarkOnline records the connection -> user mapping and announces the user
// to every other connected session. Re-invoking for the same connection
// overwrites the previous mapping without error.
//
// Presence is deliberately 1 connection = 1 user: a user online from two
// devices triggers independent online/offline events per connection.
func (h *Hub) MarkOnline(c *Client, userID string) {
	h.mu.Lock()
	h.presence[c] = userID
	h.mu.Unlock()

	h.broadcastAll(c, OutgoingEvent{Event: EventUserOnline, Data: userID})

	log.Info().Str("clientID", c.ID).Str("userID", userID).Msg("realtime: user online")
}

// MarkOffline retracts the presence entry for a connection. A connection
// that never announced itself is a no-op and produces no broadcast.
func (h *Hub) MarkOffline(c *Client) {
	h.mu.Lock()
	userID, ok := h.presence[c]
	if ok {
		delete(h.presence, c)
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	h.broadcastAll(c, OutgoingEvent{Event: EventUserOffline, Data: userID})

	log.Info().Str("clientID", c.ID).Str("userID", userID).Msg("realtime: user offline")
}

// Join attaches the connection to a room and delivers the room's history
// to that connection only, as a single backfill event. Joining a room the
// connection is already part of is idempotent. Room identifiers are opaque
// strings; the hub does not check membership or authorization.
func (h *Hub) Join(ctx context.Context, c *Client, roomID string) {
	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]struct{})
	}
	h.rooms[roomID][c] = struct{}{}
	size := len(h.rooms[roomID])
	h.mu.Unlock()

	log.Info().Str("clientID", c.ID).Str("roomID", roomID).Int("roomSize", size).Msg("realtime: client joined room")

	messages, err := h.repo.GetMessages(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("realtime: failed to fetch history")
		return
	}
	if messages == nil {
		messages = []entity.Message{}
	}

	c.SendEvent(OutgoingEvent{Event: EventMessageHistory, Data: messages})
}

// Leave detaches the connection from the room. No-op if not a member.
func (h *Hub) Leave(c *Client, roomID string) {
	h.mu.Lock()
	if members, ok := h.rooms[roomID]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	h.mu.Unlock()

	log.Info().Str("clientID", c.ID).Str("roomID", roomID).Msg("realtime: client left room")
}

// SendMessage stamps the outbound message, broadcasts it to every
// connection in the room, sender included, and persists it asynchronously.
// By the time it returns, every member at that instant has been handed the
// message; durability is a separate outcome reported on the returned
// channel and never rolls back the broadcast.
func (h *Hub) SendMessage(p SendMessagePayload) (entity.Message, <-chan error) {
	msg := entity.Message{
		ID:         uuid.New().String(),
		RoomID:     p.RoomID,
		SenderID:   p.SenderID,
		ReceiverID: p.ReceiverID,
		Content:    p.Content,
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}

	h.broadcastRoom(p.RoomID, nil, OutgoingEvent{Event: EventNewMessage, Data: msg})

	h.updateStats(func(stats *HubStats) {
		stats.MessagesSent++
	})

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(h.ctx, persistTimeout)
		defer cancel()

		if err := h.repo.SaveMessage(ctx, p.RoomID, &msg); err != nil {
			log.Error().Err(err).Str("roomID", p.RoomID).Str("messageID", msg.ID).Msg("realtime: failed to persist message")
			done <- err
			return
		}
		done <- nil
	}()

	return msg, done
}

// Typing relays a transient typing signal to the room, excluding the
// originating connection. Nothing is retained; a client joining mid-signal
// will not see it.
func (h *Hub) Typing(c *Client, p TypingPayload) {
	h.broadcastRoom(p.RoomID, c, OutgoingEvent{Event: EventUserTyping, Data: p.UserID})
}

func (h *Hub) StopTyping(c *Client, p TypingPayload) {
	h.broadcastRoom(p.RoomID, c, OutgoingEvent{Event: EventUserStoppedTyping, Data: p.UserID})
}

// handleEvent dispatches one inbound frame. A malformed payload aborts
// that single event only; nothing is surfaced back on the channel.
func (h *Hub) handleEvent(c *Client, raw []byte) {
	var evt IncomingEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		log.Warn().Err(err).Str("clientID", c.ID).Msg("realtime: malformed event envelope")
		return
	}

	switch evt.Event {
	case EventUserOnline:
		var p UserPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil || p.UserID == "" {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed user_online payload")
			return
		}
		h.MarkOnline(c, p.UserID)

	case EventJoinRoom:
		var p RoomPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil || p.RoomID == "" {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed join_room payload")
			return
		}
		h.Join(c.ctx, c, p.RoomID)

	case EventLeaveRoom:
		var p RoomPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil || p.RoomID == "" {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed leave_room payload")
			return
		}
		h.Leave(c, p.RoomID)

	case EventSendMessage:
		var p SendMessagePayload
		if err := json.Unmarshal(evt.Data, &p); err != nil || p.RoomID == "" {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed send_message payload")
			return
		}
		h.SendMessage(p)

	case EventTyping:
		var p TypingPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed typing payload")
			return
		}
		h.Typing(c, p)

	case EventStopTyping:
		var p TypingPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			log.Warn().Str("clientID", c.ID).Msg("realtime: malformed stop_typing payload")
			return
		}
		h.StopTyping(c, p)

	default:
		log.Warn().Str("clientID", c.ID).Str("event", evt.Event).Msg("realtime: unknown event")
	}
}

// broadcastAll delivers an event to every connected session except one.
func (h *Hub) broadcastAll(except *Client, evt OutgoingEvent) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		if client == except {
			continue
		}
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		client.SendEvent(evt)
	}
}

// broadcastRoom delivers an event to the room's current members. A nil
// except includes everyone.
func (h *Hub) broadcastRoom(roomID string, except *Client, evt OutgoingEvent) {
	h.mu.RLock()
	var targets []*Client
	if members, ok := h.rooms[roomID]; ok {
		targets = make([]*Client, 0, len(members))
		for client := range members {
			if except != nil && client == except {
				continue
			}
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		client.SendEvent(evt)
	}
}

// RoomSize reports current membership of a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// OnlineUsers snapshots the user ids with at least one live connection.
func (h *Hub) OnlineUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{}, len(h.presence))
	users := make([]string, 0, len(h.presence))
	for _, userID := range h.presence {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		users = append(users, userID)
	}
	return users
}

// Stats returns overall hub statistics.
func (h *Hub) Stats() HubStats {
	h.statsMu.RLock()
	stats := h.stats
	h.statsMu.RUnlock()

	h.mu.RLock()
	stats.TotalRooms = len(h.rooms)
	stats.TotalClients = len(h.clients)
	h.mu.RUnlock()

	return stats
}

func (h *Hub) updateStats(fn func(*HubStats)) {
	h.statsMu.Lock()
	fn(&h.stats)
	h.statsMu.Unlock()
}

// Close shuts down the hub and every live connection.
func (h *Hub) Close() {
	log.Info().Msg("realtime: shutting down hub")

	h.cancel()

	h.mu.RLock()
	allClients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		allClients = append(allClients, client)
	}
	h.mu.RUnlock()

	for _, client := range allClients {
		client.Close()
	}

	log.Info().Int("clients", len(allClients)).Msg("realtime: hub shutdown completed")
}
