package instructor_service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/viettl/skipli/config"
	"github.com/viettl/skipli/internal/dtos/instructor_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/queue"
	lesson_repo "github.com/viettl/skipli/internal/repo/lesson"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/internal/utils"
	"github.com/viettl/skipli/state"
)

type InstructorService struct {
	AppState *state.AppState
	Users    user_repo.UserRepoContract
	Lessons  lesson_repo.LessonRepoContract
	Producer queue.ProducerContract
}

func NewInstructorService(appState *state.AppState) InstructorServiceContract {
	return &InstructorService{
		AppState: appState,
		Users:    user_repo.NewUserRepo(appState),
		Lessons:  lesson_repo.NewLessonRepo(appState),
		Producer: queue.NewRedisProducer(appState.Redis),
	}
}

func (s *InstructorService) AddStudent(ctx context.Context, instructorID string, req instructor_dto.AddStudentRequest) (*entity.User, *app_error.AppError) {
	email := utils.NormalizeEmail(req.Email)

	existing, err := s.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, app_error.NewAppError(http.StatusConflict, "email already registered", "email")
	}

	instructor, err := s.Users.FindUserByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "instructor not found", "instructor")
	}

	now := time.Now().UTC()
	student := &entity.User{
		ID:              email,
		Email:           email,
		Name:            utils.SanitizeString(req.Name),
		Role:            entity.RoleStudent,
		InstructorID:    instructor.ID,
		InstructorEmail: instructor.Email,
		IsAccountSetup:  false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Users.SaveUser(ctx, student); err != nil {
		return nil, err
	}

	setupLink := fmt.Sprintf("%s/setup-account?id=%s", config.Conf.App.URL, url.QueryEscape(student.ID))
	payload := queue.MustMarshal(queue.SendInvitationPayload{
		Email:     student.Email,
		Name:      student.Name,
		SetupLink: setupLink,
	})
	if qerr := s.Producer.Enqueue(ctx, queue.JobSendInvitation, payload, 1); qerr != nil {
		// the student record exists either way, the invite can be resent
		log.Error().Err(qerr).Str("email", student.Email).Msg("failed to enqueue invitation mail")
	}

	return student, nil
}

func (s *InstructorService) AssignLesson(ctx context.Context, instructorID string, req instructor_dto.AssignLessonRequest) (*entity.Lesson, *app_error.AppError) {
	email := utils.NormalizeEmail(req.StudentEmail)

	student, err := s.Users.FindStudent(ctx, instructorID, email)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "student not found", "studentEmail")
	}

	lesson := &entity.Lesson{
		ID:           uuid.New().String(),
		Title:        utils.SanitizeString(req.Title),
		Description:  utils.SanitizeString(req.Description),
		Status:       entity.LessonAssigned,
		StudentEmail: student.Email,
		InstructorID: instructorID,
		AssignedAt:   time.Now().UTC(),
	}

	if err := s.Lessons.SaveLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *InstructorService) Students(ctx context.Context, instructorID string) ([]instructor_dto.StudentSummary, *app_error.AppError) {
	students, err := s.Users.ListStudents(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]instructor_dto.StudentSummary, 0, len(students))
	for _, student := range students {
		lessons, lerr := s.Lessons.LessonsByStudent(ctx, student.Email)
		if lerr != nil {
			return nil, lerr
		}

		summary := instructor_dto.StudentSummary{User: student, LessonCount: len(lessons)}
		for _, l := range lessons {
			switch l.Status {
			case entity.LessonInProgress:
				summary.InProgressCount++
			case entity.LessonCompleted:
				summary.CompletedCount++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *InstructorService) GetStudent(ctx context.Context, instructorID, email string) (*instructor_dto.StudentDetail, *app_error.AppError) {
	student, err := s.Users.FindStudent(ctx, instructorID, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "student not found", "email")
	}

	lessons, err := s.Lessons.LessonsByStudent(ctx, student.Email)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []entity.Lesson{}
	}

	return &instructor_dto.StudentDetail{Student: student, Lessons: lessons}, nil
}

func (s *InstructorService) EditStudent(ctx context.Context, instructorID, email string, req instructor_dto.EditStudentRequest) (*entity.User, *app_error.AppError) {
	student, err := s.Users.FindStudent(ctx, instructorID, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "student not found", "email")
	}

	updates := bson.M{}
	if req.Name != "" {
		student.Name = utils.SanitizeString(req.Name)
		updates["name"] = student.Name
	}
	if req.Email != "" {
		newEmail := utils.NormalizeEmail(req.Email)
		if newEmail != student.Email {
			taken, terr := s.Users.FindUserByEmail(ctx, newEmail)
			if terr != nil {
				return nil, terr
			}
			if taken != nil {
				return nil, app_error.NewAppError(http.StatusConflict, "email already registered", "email")
			}

			oldEmail := student.Email
			student.Email = newEmail
			updates["email"] = newEmail
			if rerr := s.Lessons.ReassignStudentEmail(ctx, oldEmail, newEmail); rerr != nil {
				return nil, rerr
			}
		}
	}

	if len(updates) == 0 {
		return student, nil
	}

	if uerr := s.Users.UpdateUser(ctx, student.ID, updates); uerr != nil {
		return nil, uerr
	}
	return student, nil
}

func (s *InstructorService) DeleteStudent(ctx context.Context, instructorID, email string) *app_error.AppError {
	student, err := s.Users.FindStudent(ctx, instructorID, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if student == nil {
		return app_error.NewAppError(http.StatusNotFound, "student not found", "email")
	}

	if err := s.Lessons.DeleteLessonsByStudent(ctx, student.Email); err != nil {
		return err
	}
	return s.Users.DeleteUser(ctx, student.ID)
}
