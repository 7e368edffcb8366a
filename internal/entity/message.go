package entity

import "time"

// Message is immutable once created; only the read flag is ever updated,
// and only through the bulk mark-as-read operation.
type Message struct {
	ID         string    `bson:"_id" json:"id"`
	RoomID     string    `bson:"roomId" json:"-"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	Content    string    `bson:"content" json:"content"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Read       bool      `bson:"read" json:"read"`
}

// ChatRoom is the persisted room record. It only exists as a grouping key
// for messages plus a denormalized preview of the latest one; it is not the
// source of truth for history.
type ChatRoom struct {
	ID          string    `bson:"_id" json:"id"`
	LastMessage *Message  `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
