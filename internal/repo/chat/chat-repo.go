package chat_repo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/state"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	messagesCollection  = "messages"
	chatRoomsCollection = "chatRooms"
)

type ChatRepo struct {
	AppState *state.AppState
}

func NewChatRepo(appState *state.AppState) ChatRepoContract {
	return &ChatRepo{
		AppState: appState,
	}
}

func (r *ChatRepo) SaveMessage(ctx context.Context, roomID string, msg *entity.Message) *app_error.AppError {
	msg.RoomID = roomID

	collection := r.AppState.Collection(messagesCollection)
	if _, err := collection.InsertOne(ctx, msg); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to save message: %v", err), "mongo")
	}

	// Merge-upsert the room record. A failure here leaves the preview
	// stale but the message itself is already durable.
	rooms := r.AppState.Collection(chatRoomsCollection)
	update := bson.M{"$set": bson.M{
		"lastMessage": msg,
		"updatedAt":   time.Now().UTC(),
	}}
	if _, err := rooms.UpdateOne(ctx, bson.M{"_id": roomID}, update, options.UpdateOne().SetUpsert(true)); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to upsert chat room record: %v", err), "mongo")
	}

	return nil
}

func (r *ChatRepo) GetMessages(ctx context.Context, roomID string) ([]entity.Message, *app_error.AppError) {
	collection := r.AppState.Collection(messagesCollection)

	cur, err := collection.Find(ctx, bson.M{"roomId": roomID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch messages: %v", err), "mongo")
	}
	defer cur.Close(ctx)

	var messages []entity.Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to decode messages: %v", err), "mongo")
	}

	// Stored timestamps come back in the driver's local zone; history is
	// served canonically in UTC.
	for i := range messages {
		messages[i].Timestamp = messages[i].Timestamp.UTC()
	}

	return messages, nil
}

func (r *ChatRepo) MarkMessagesRead(ctx context.Context, roomID, userID string) (int64, *app_error.AppError) {
	collection := r.AppState.Collection(messagesCollection)

	filter := bson.M{"roomId": roomID, "receiverId": userID, "read": false}
	result, err := collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to mark messages as read: %v", err), "mongo")
	}

	return result.ModifiedCount, nil
}
