package lesson_repo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/state"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const lessonsCollection = "lessons"

type LessonRepo struct {
	AppState *state.AppState
}

func NewLessonRepo(appState *state.AppState) LessonRepoContract {
	return &LessonRepo{
		AppState: appState,
	}
}

func (r *LessonRepo) SaveLesson(ctx context.Context, lesson *entity.Lesson) *app_error.AppError {
	if _, err := r.AppState.Collection(lessonsCollection).InsertOne(ctx, lesson); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to create lesson: %v", err), "mongo")
	}
	return nil
}

func (r *LessonRepo) FindLessonByID(ctx context.Context, id string) (*entity.Lesson, *app_error.AppError) {
	var lesson entity.Lesson
	err := r.AppState.Collection(lessonsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch lesson: %v", err), "mongo")
	}
	return &lesson, nil
}

func (r *LessonRepo) LessonsByStudent(ctx context.Context, studentEmail string) ([]entity.Lesson, *app_error.AppError) {
	cur, err := r.AppState.Collection(lessonsCollection).Find(ctx, bson.M{"studentEmail": studentEmail},
		options.Find().SetSort(bson.D{{Key: "assignedAt", Value: -1}}))
	if err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch lessons: %v", err), "mongo")
	}
	defer cur.Close(ctx)

	var lessons []entity.Lesson
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to decode lessons: %v", err), "mongo")
	}
	return lessons, nil
}

func (r *LessonRepo) UpdateLesson(ctx context.Context, id string, updates bson.M) *app_error.AppError {
	result, err := r.AppState.Collection(lessonsCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to update lesson: %v", err), "mongo")
	}
	if result.MatchedCount == 0 {
		return app_error.NewAppError(http.StatusNotFound, "lesson not found", "not-found")
	}
	return nil
}

func (r *LessonRepo) ReassignStudentEmail(ctx context.Context, oldEmail, newEmail string) *app_error.AppError {
	_, err := r.AppState.Collection(lessonsCollection).UpdateMany(ctx,
		bson.M{"studentEmail": oldEmail},
		bson.M{"$set": bson.M{"studentEmail": newEmail}})
	if err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to reassign lessons: %v", err), "mongo")
	}
	return nil
}

func (r *LessonRepo) DeleteLessonsByStudent(ctx context.Context, studentEmail string) *app_error.AppError {
	if _, err := r.AppState.Collection(lessonsCollection).DeleteMany(ctx, bson.M{"studentEmail": studentEmail}); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete lessons: %v", err), "mongo")
	}
	return nil
}
