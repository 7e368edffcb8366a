package student_service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viettl/skipli/internal/dtos/student_dto"
	"github.com/viettl/skipli/internal/entity"
	lesson_repo "github.com/viettl/skipli/internal/repo/lesson"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/state"
)

func newTestStudentService(t *testing.T) (*StudentService, *user_repo.MockUserRepo, *lesson_repo.MockLessonRepo) {
	t.Helper()

	users := user_repo.NewMockUserRepo()
	lessons := lesson_repo.NewMockLessonRepo()

	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:           "alice@example.com",
		Email:        "alice@example.com",
		Name:         "Alice",
		Role:         entity.RoleStudent,
		InstructorID: "teacher@example.com",
	}))

	svc := &StudentService{
		AppState: &state.AppState{},
		Users:    users,
		Lessons:  lessons,
	}
	return svc, users, lessons
}

func TestMyLessons_EmptyWithoutAssignments(t *testing.T) {
	svc, _, _ := newTestStudentService(t)

	lessons, err := svc.MyLessons(context.Background(), "alice@example.com")
	require.Nil(t, err)
	assert.NotNil(t, lessons)
	assert.Empty(t, lessons)
}

func TestMarkLessonDone(t *testing.T) {
	svc, _, lessons := newTestStudentService(t)

	require.Nil(t, lessons.SaveLesson(context.Background(), &entity.Lesson{
		ID:           "l1",
		Title:        "Scales",
		Status:       entity.LessonAssigned,
		StudentEmail: "alice@example.com",
		AssignedAt:   time.Now().UTC(),
	}))

	done, err := svc.MarkLessonDone(context.Background(), "alice@example.com", student_dto.MarkLessonDoneRequest{LessonID: "l1"})
	require.Nil(t, err)
	assert.Equal(t, entity.LessonCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	// a second completion keeps the original timestamp
	again, err := svc.MarkLessonDone(context.Background(), "alice@example.com", student_dto.MarkLessonDoneRequest{LessonID: "l1"})
	require.Nil(t, err)
	assert.Equal(t, entity.LessonCompleted, again.Status)
}

func TestMarkLessonDone_OtherStudentsLesson(t *testing.T) {
	svc, _, lessons := newTestStudentService(t)

	require.Nil(t, lessons.SaveLesson(context.Background(), &entity.Lesson{
		ID:           "l2",
		Status:       entity.LessonAssigned,
		StudentEmail: "bob@example.com",
		AssignedAt:   time.Now().UTC(),
	}))

	_, err := svc.MarkLessonDone(context.Background(), "alice@example.com", student_dto.MarkLessonDoneRequest{LessonID: "l2"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Code)
}

func TestMarkLessonDone_UnknownLesson(t *testing.T) {
	svc, _, _ := newTestStudentService(t)

	_, err := svc.MarkLessonDone(context.Background(), "alice@example.com", student_dto.MarkLessonDoneRequest{LessonID: "missing"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestEditProfile(t *testing.T) {
	svc, users, _ := newTestStudentService(t)

	updated, err := svc.EditProfile(context.Background(), "alice@example.com", student_dto.EditProfileRequest{Name: "Alice B"})
	require.Nil(t, err)
	assert.Equal(t, "Alice B", updated.Name)

	stored, ferr := users.FindUserByID(context.Background(), "alice@example.com")
	require.Nil(t, ferr)
	assert.Equal(t, "Alice B", stored.Name)
}

func TestEditProfile_EmailConflict(t *testing.T) {
	svc, users, _ := newTestStudentService(t)

	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:    "bob@example.com",
		Email: "bob@example.com",
		Role:  entity.RoleStudent,
	}))

	_, err := svc.EditProfile(context.Background(), "alice@example.com", student_dto.EditProfileRequest{Email: "bob@example.com"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Code)
}
