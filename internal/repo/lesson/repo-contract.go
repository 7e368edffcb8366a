package lesson_repo

import (
	"context"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type LessonRepoContract interface {
	SaveLesson(ctx context.Context, lesson *entity.Lesson) *app_error.AppError
	// FindLessonByID returns (nil, nil) when no lesson matches.
	FindLessonByID(ctx context.Context, id string) (*entity.Lesson, *app_error.AppError)
	// LessonsByStudent returns a student's lessons, newest assignment first.
	LessonsByStudent(ctx context.Context, studentEmail string) ([]entity.Lesson, *app_error.AppError)
	UpdateLesson(ctx context.Context, id string, updates bson.M) *app_error.AppError
	// ReassignStudentEmail repoints a student's lessons after an email edit.
	ReassignStudentEmail(ctx context.Context, oldEmail, newEmail string) *app_error.AppError
	DeleteLessonsByStudent(ctx context.Context, studentEmail string) *app_error.AppError
}
