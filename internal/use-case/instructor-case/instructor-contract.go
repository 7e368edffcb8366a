package instructor_service

import (
	"context"

	"github.com/viettl/skipli/internal/dtos/instructor_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

type InstructorServiceContract interface {
	// AddStudent creates a student on the instructor's roster and queues
	// the account setup invitation email.
	AddStudent(ctx context.Context, instructorID string, req instructor_dto.AddStudentRequest) (*entity.User, *app_error.AppError)
	AssignLesson(ctx context.Context, instructorID string, req instructor_dto.AssignLessonRequest) (*entity.Lesson, *app_error.AppError)
	// Students lists the roster with per-student lesson counters.
	Students(ctx context.Context, instructorID string) ([]instructor_dto.StudentSummary, *app_error.AppError)
	GetStudent(ctx context.Context, instructorID, email string) (*instructor_dto.StudentDetail, *app_error.AppError)
	EditStudent(ctx context.Context, instructorID, email string, req instructor_dto.EditStudentRequest) (*entity.User, *app_error.AppError)
	// DeleteStudent removes the student and every lesson assigned to them.
	DeleteStudent(ctx context.Context, instructorID, email string) *app_error.AppError
}
