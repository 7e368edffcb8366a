package realtime

import "encoding/json"

// Wire events. Client-to-server events carry a JSON envelope of
// {event, data}; server-to-client events use the same envelope.
const (
	EventUserOnline        = "user_online"
	EventUserOffline       = "user_offline"
	EventJoinRoom          = "join_room"
	EventLeaveRoom         = "leave_room"
	EventSendMessage       = "send_message"
	EventNewMessage        = "new_message"
	EventMessageHistory    = "message_history"
	EventTyping            = "typing"
	EventStopTyping        = "stop_typing"
	EventUserTyping        = "user_typing"
	EventUserStoppedTyping = "user_stopped_typing"
)

type IncomingEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type OutgoingEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type UserPayload struct {
	UserID string `json:"userId"`
}

type RoomPayload struct {
	RoomID string `json:"roomId"`
}

type SendMessagePayload struct {
	RoomID     string `json:"roomId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

type TypingPayload struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}
