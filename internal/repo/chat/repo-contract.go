package chat_repo

import (
	"context"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

type ChatRepoContract interface {
	// SaveMessage persists a message under its room and refreshes the
	// room record's denormalized last-message preview. The two writes are
	// independent; there is no cross-write transaction.
	SaveMessage(ctx context.Context, roomID string, msg *entity.Message) *app_error.AppError

	// GetMessages returns the full room history sorted ascending by
	// timestamp. An unknown room yields an empty slice, not an error.
	GetMessages(ctx context.Context, roomID string) ([]entity.Message, *app_error.AppError)

	// MarkMessagesRead flips every unread message addressed to userID in
	// the room and reports how many were updated.
	MarkMessagesRead(ctx context.Context, roomID, userID string) (int64, *app_error.AppError)
}
