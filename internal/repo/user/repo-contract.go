package user_repo

import (
	"context"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserRepoContract interface {
	// FindUserByEmail returns (nil, nil) when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, *app_error.AppError)
	// FindUserByID returns (nil, nil) when no user matches.
	FindUserByID(ctx context.Context, id string) (*entity.User, *app_error.AppError)
	SaveUser(ctx context.Context, user *entity.User) *app_error.AppError
	UpdateUser(ctx context.Context, id string, updates bson.M) *app_error.AppError
	DeleteUser(ctx context.Context, id string) *app_error.AppError
	// ListStudents returns the students owned by an instructor, newest first.
	ListStudents(ctx context.Context, instructorID string) ([]entity.User, *app_error.AppError)
	// FindStudent scopes the lookup to one instructor's roster; (nil, nil)
	// when the student does not exist or belongs to someone else.
	FindStudent(ctx context.Context, instructorID, email string) (*entity.User, *app_error.AppError)
}
