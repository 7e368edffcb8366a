package student_service

import (
	"context"

	"github.com/viettl/skipli/internal/dtos/student_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

type StudentServiceContract interface {
	// MyLessons returns the caller's lessons, newest assignment first.
	MyLessons(ctx context.Context, studentEmail string) ([]entity.Lesson, *app_error.AppError)
	// MarkLessonDone completes one of the caller's lessons. Completing an
	// already completed lesson is a no-op.
	MarkLessonDone(ctx context.Context, studentEmail string, req student_dto.MarkLessonDoneRequest) (*entity.Lesson, *app_error.AppError)
	EditProfile(ctx context.Context, studentID string, req student_dto.EditProfileRequest) (*entity.User, *app_error.AppError)
}
