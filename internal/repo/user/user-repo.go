package user_repo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/state"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

type UserRepo struct {
	AppState *state.AppState
}

func NewUserRepo(appState *state.AppState) UserRepoContract {
	return &UserRepo{
		AppState: appState,
	}
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*entity.User, *app_error.AppError) {
	var user entity.User
	err := r.AppState.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch user: %v", err), "mongo")
	}
	return &user, nil
}

func (r *UserRepo) FindUserByID(ctx context.Context, id string) (*entity.User, *app_error.AppError) {
	var user entity.User
	err := r.AppState.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch user: %v", err), "mongo")
	}
	return &user, nil
}

func (r *UserRepo) SaveUser(ctx context.Context, user *entity.User) *app_error.AppError {
	if _, err := r.AppState.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to create user: %v", err), "mongo")
	}
	return nil
}

func (r *UserRepo) UpdateUser(ctx context.Context, id string, updates bson.M) *app_error.AppError {
	updates["updatedAt"] = time.Now().UTC()
	result, err := r.AppState.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to update user: %v", err), "mongo")
	}
	if result.MatchedCount == 0 {
		return app_error.NewAppError(http.StatusNotFound, "user not found", "not-found")
	}
	return nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id string) *app_error.AppError {
	if _, err := r.AppState.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete user: %v", err), "mongo")
	}
	return nil
}

func (r *UserRepo) ListStudents(ctx context.Context, instructorID string) ([]entity.User, *app_error.AppError) {
	filter := bson.M{"role": entity.RoleStudent, "instructorId": instructorID}
	cur, err := r.AppState.Collection(usersCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to list students: %v", err), "mongo")
	}
	defer cur.Close(ctx)

	var students []entity.User
	if err := cur.All(ctx, &students); err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to decode students: %v", err), "mongo")
	}
	return students, nil
}

func (r *UserRepo) FindStudent(ctx context.Context, instructorID, email string) (*entity.User, *app_error.AppError) {
	var user entity.User
	filter := bson.M{"email": email, "instructorId": instructorID, "role": entity.RoleStudent}
	err := r.AppState.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to fetch student: %v", err), "mongo")
	}
	return &user, nil
}
