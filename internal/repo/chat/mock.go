package chat_repo

import (
	"context"
	"sort"
	"sync"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

// MockChatRepo is an in-memory ChatRepoContract for tests. SaveErr, when
// set, makes every SaveMessage call fail without recording the message.
type MockChatRepo struct {
	mu       sync.Mutex
	messages map[string][]entity.Message
	SaveErr  *app_error.AppError
}

func NewMockChatRepo() *MockChatRepo {
	return &MockChatRepo{
		messages: make(map[string][]entity.Message),
	}
}

func (m *MockChatRepo) SaveMessage(_ context.Context, roomID string, msg *entity.Message) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	stored := *msg
	stored.RoomID = roomID
	m.messages[roomID] = append(m.messages[roomID], stored)
	return nil
}

func (m *MockChatRepo) GetMessages(_ context.Context, roomID string) ([]entity.Message, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Message, len(m.messages[roomID]))
	copy(out, m.messages[roomID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (m *MockChatRepo) MarkMessagesRead(_ context.Context, roomID, userID string) (int64, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var updated int64
	msgs := m.messages[roomID]
	for i := range msgs {
		if msgs[i].ReceiverID == userID && !msgs[i].Read {
			msgs[i].Read = true
			updated++
		}
	}
	return updated, nil
}
