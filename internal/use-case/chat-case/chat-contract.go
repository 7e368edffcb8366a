package chat_service

import (
	"context"

	"github.com/viettl/skipli/internal/dtos/chat_dto"
	app_error "github.com/viettl/skipli/internal/errors"
)

type ChatServiceContract interface {
	// RoomMessages returns the full conversation between two users,
	// oldest first. The pair order does not matter.
	RoomMessages(ctx context.Context, userA, userB string) (*chat_dto.RoomMessagesResponse, *app_error.AppError)
	// MarkRead flips the caller's unread messages in the conversation.
	MarkRead(ctx context.Context, callerID, otherID string) (*chat_dto.MarkReadResponse, *app_error.AppError)
}
