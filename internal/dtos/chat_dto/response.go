package chat_dto

import "github.com/viettl/skipli/internal/entity"

type RoomMessagesResponse struct {
	RoomID   string           `json:"roomId"`
	Messages []entity.Message `json:"messages"`
}

type MarkReadResponse struct {
	RoomID  string `json:"roomId"`
	Updated int64  `json:"updated"`
}
