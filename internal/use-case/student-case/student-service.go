package student_service

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/viettl/skipli/internal/dtos/student_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	lesson_repo "github.com/viettl/skipli/internal/repo/lesson"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/internal/utils"
	"github.com/viettl/skipli/state"
)

type StudentService struct {
	AppState *state.AppState
	Users    user_repo.UserRepoContract
	Lessons  lesson_repo.LessonRepoContract
}

func NewStudentService(appState *state.AppState) StudentServiceContract {
	return &StudentService{
		AppState: appState,
		Users:    user_repo.NewUserRepo(appState),
		Lessons:  lesson_repo.NewLessonRepo(appState),
	}
}

func (s *StudentService) MyLessons(ctx context.Context, studentEmail string) ([]entity.Lesson, *app_error.AppError) {
	lessons, err := s.Lessons.LessonsByStudent(ctx, studentEmail)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []entity.Lesson{}
	}
	return lessons, nil
}

func (s *StudentService) MarkLessonDone(ctx context.Context, studentEmail string, req student_dto.MarkLessonDoneRequest) (*entity.Lesson, *app_error.AppError) {
	lesson, err := s.Lessons.FindLessonByID(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "lesson not found", "lessonId")
	}
	if lesson.StudentEmail != studentEmail {
		return nil, app_error.NewAppError(http.StatusForbidden, "lesson belongs to another student", "lessonId")
	}
	if lesson.Status == entity.LessonCompleted {
		return lesson, nil
	}

	now := time.Now().UTC()
	if err := s.Lessons.UpdateLesson(ctx, lesson.ID, bson.M{
		"status":      entity.LessonCompleted,
		"completedAt": now,
	}); err != nil {
		return nil, err
	}

	lesson.Status = entity.LessonCompleted
	lesson.CompletedAt = &now
	return lesson, nil
}

func (s *StudentService) EditProfile(ctx context.Context, studentID string, req student_dto.EditProfileRequest) (*entity.User, *app_error.AppError) {
	user, err := s.Users.FindUserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "account not found", "id")
	}

	updates := bson.M{}
	if req.Name != "" {
		user.Name = utils.SanitizeString(req.Name)
		updates["name"] = user.Name
	}
	if req.Email != "" {
		newEmail := utils.NormalizeEmail(req.Email)
		if newEmail != user.Email {
			taken, terr := s.Users.FindUserByEmail(ctx, newEmail)
			if terr != nil {
				return nil, terr
			}
			if taken != nil {
				return nil, app_error.NewAppError(http.StatusConflict, "email already registered", "email")
			}

			oldEmail := user.Email
			user.Email = newEmail
			updates["email"] = newEmail
			if rerr := s.Lessons.ReassignStudentEmail(ctx, oldEmail, newEmail); rerr != nil {
				return nil, rerr
			}
		}
	}

	if len(updates) == 0 {
		return user, nil
	}

	if uerr := s.Users.UpdateUser(ctx, user.ID, updates); uerr != nil {
		return nil, uerr
	}
	return user, nil
}
