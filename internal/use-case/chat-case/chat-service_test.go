package chat_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/realtime"
	chat_repo "github.com/viettl/skipli/internal/repo/chat"
	"github.com/viettl/skipli/state"
)

func newTestChatService(t *testing.T) (*ChatService, *chat_repo.MockChatRepo) {
	t.Helper()

	repo := chat_repo.NewMockChatRepo()
	svc := &ChatService{
		AppState: &state.AppState{},
		Messages: repo,
	}
	return svc, repo
}

func TestRoomMessages_PairOrderIrrelevant(t *testing.T) {
	svc, repo := newTestChatService(t)

	roomID := realtime.RoomKey("alice", "bob")
	require.Nil(t, repo.SaveMessage(context.Background(), roomID, &entity.Message{
		ID:        "m1",
		RoomID:    roomID,
		SenderID:  "alice",
		Content:   "hi",
		Timestamp: time.Now().UTC(),
	}))

	forward, err := svc.RoomMessages(context.Background(), "alice", "bob")
	require.Nil(t, err)
	reversed, err := svc.RoomMessages(context.Background(), "bob", "alice")
	require.Nil(t, err)

	assert.Equal(t, forward.RoomID, reversed.RoomID)
	require.Len(t, forward.Messages, 1)
	assert.Equal(t, forward.Messages, reversed.Messages)
}

func TestRoomMessages_UnknownRoomIsEmpty(t *testing.T) {
	svc, _ := newTestChatService(t)

	resp, err := svc.RoomMessages(context.Background(), "alice", "stranger")
	require.Nil(t, err)
	assert.NotNil(t, resp.Messages)
	assert.Empty(t, resp.Messages)
}

func TestMarkRead(t *testing.T) {
	svc, repo := newTestChatService(t)

	roomID := realtime.RoomKey("alice", "bob")
	for _, id := range []string{"m1", "m2"} {
		require.Nil(t, repo.SaveMessage(context.Background(), roomID, &entity.Message{
			ID:         id,
			RoomID:     roomID,
			SenderID:   "bob",
			ReceiverID: "alice",
			Content:    "hello",
			Timestamp:  time.Now().UTC(),
		}))
	}

	resp, err := svc.MarkRead(context.Background(), "alice", "bob")
	require.Nil(t, err)
	assert.Equal(t, roomID, resp.RoomID)
	assert.Equal(t, int64(2), resp.Updated)

	// nothing left unread on the second pass
	resp, err = svc.MarkRead(context.Background(), "alice", "bob")
	require.Nil(t, err)
	assert.Equal(t, int64(0), resp.Updated)
}
