package chat_service

import (
	"context"

	"github.com/viettl/skipli/internal/dtos/chat_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/realtime"
	chat_repo "github.com/viettl/skipli/internal/repo/chat"
	"github.com/viettl/skipli/state"
)

type ChatService struct {
	AppState *state.AppState
	Messages chat_repo.ChatRepoContract
}

func NewChatService(appState *state.AppState) ChatServiceContract {
	return &ChatService{
		AppState: appState,
		Messages: chat_repo.NewChatRepo(appState),
	}
}

func (s *ChatService) RoomMessages(ctx context.Context, userA, userB string) (*chat_dto.RoomMessagesResponse, *app_error.AppError) {
	roomID := realtime.RoomKey(userA, userB)

	messages, err := s.Messages.GetMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []entity.Message{}
	}

	return &chat_dto.RoomMessagesResponse{RoomID: roomID, Messages: messages}, nil
}

func (s *ChatService) MarkRead(ctx context.Context, callerID, otherID string) (*chat_dto.MarkReadResponse, *app_error.AppError) {
	roomID := realtime.RoomKey(callerID, otherID)

	updated, err := s.Messages.MarkMessagesRead(ctx, roomID, callerID)
	if err != nil {
		return nil, err
	}

	return &chat_dto.MarkReadResponse{RoomID: roomID, Updated: updated}, nil
}
