package instructor_service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viettl/skipli/config"
	"github.com/viettl/skipli/internal/dtos/instructor_dto"
	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/queue"
	lesson_repo "github.com/viettl/skipli/internal/repo/lesson"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/state"
)

const instructorID = "teacher@example.com"

func newTestInstructorService(t *testing.T) (*InstructorService, *user_repo.MockUserRepo, *lesson_repo.MockLessonRepo, *queue.MockProducer) {
	t.Helper()

	config.Conf = &config.AppConfig{}
	config.Conf.App.URL = "http://localhost:3000"

	users := user_repo.NewMockUserRepo()
	lessons := lesson_repo.NewMockLessonRepo()
	producer := queue.NewMockProducer()

	now := time.Now().UTC()
	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:             instructorID,
		Email:          instructorID,
		Role:           entity.RoleInstructor,
		IsAccountSetup: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}))

	svc := &InstructorService{
		AppState: &state.AppState{},
		Users:    users,
		Lessons:  lessons,
		Producer: producer,
	}
	return svc, users, lessons, producer
}

func addStudent(t *testing.T, svc *InstructorService, name, email string) *entity.User {
	t.Helper()
	student, err := svc.AddStudent(context.Background(), instructorID, instructor_dto.AddStudentRequest{
		Name:  name,
		Email: email,
	})
	require.Nil(t, err)
	return student
}

func TestAddStudent_QueuesInvitation(t *testing.T) {
	svc, _, _, producer := newTestInstructorService(t)

	student := addStudent(t, svc, "Alice", "Alice@Example.com")
	assert.Equal(t, "alice@example.com", student.ID)
	assert.Equal(t, "alice@example.com", student.Email)
	assert.Equal(t, instructorID, student.InstructorID)
	assert.Equal(t, instructorID, student.InstructorEmail)
	assert.False(t, student.IsAccountSetup)

	jobs := producer.JobsOfType(queue.JobSendInvitation)
	require.Len(t, jobs, 1)
	assert.Contains(t, string(jobs[0].Payload), "setup-account?id=alice%40example.com")
}

func TestAddStudent_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestInstructorService(t)

	addStudent(t, svc, "Alice", "alice@example.com")

	_, err := svc.AddStudent(context.Background(), instructorID, instructor_dto.AddStudentRequest{
		Name:  "Other Alice",
		Email: "alice@example.com",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Code)
}

func TestAssignLesson(t *testing.T) {
	svc, _, _, _ := newTestInstructorService(t)
	addStudent(t, svc, "Alice", "alice@example.com")

	lesson, err := svc.AssignLesson(context.Background(), instructorID, instructor_dto.AssignLessonRequest{
		StudentEmail: "alice@example.com",
		Title:        "Scales",
		Description:  "Practice C major",
	})
	require.Nil(t, err)
	assert.NotEmpty(t, lesson.ID)
	assert.Equal(t, entity.LessonAssigned, lesson.Status)
	assert.Equal(t, "alice@example.com", lesson.StudentEmail)
	assert.Equal(t, instructorID, lesson.InstructorID)
}

func TestAssignLesson_UnknownStudent(t *testing.T) {
	svc, _, _, _ := newTestInstructorService(t)

	_, err := svc.AssignLesson(context.Background(), instructorID, instructor_dto.AssignLessonRequest{
		StudentEmail: "nobody@example.com",
		Title:        "Scales",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestAssignLesson_OtherInstructorsStudent(t *testing.T) {
	svc, users, _, _ := newTestInstructorService(t)

	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:           "bob@example.com",
		Email:        "bob@example.com",
		Role:         entity.RoleStudent,
		InstructorID: "someone-else@example.com",
	}))

	_, err := svc.AssignLesson(context.Background(), instructorID, instructor_dto.AssignLessonRequest{
		StudentEmail: "bob@example.com",
		Title:        "Scales",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestStudents_CountsPerStatus(t *testing.T) {
	svc, _, lessons, _ := newTestInstructorService(t)
	addStudent(t, svc, "Alice", "alice@example.com")

	mk := func(status string) {
		require.Nil(t, lessons.SaveLesson(context.Background(), &entity.Lesson{
			ID:           status + "-lesson",
			Status:       status,
			StudentEmail: "alice@example.com",
			InstructorID: instructorID,
			AssignedAt:   time.Now().UTC(),
		}))
	}
	mk(entity.LessonAssigned)
	mk(entity.LessonInProgress)
	mk(entity.LessonCompleted)

	summaries, err := svc.Students(context.Background(), instructorID)
	require.Nil(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].LessonCount)
	assert.Equal(t, 1, summaries[0].InProgressCount)
	assert.Equal(t, 1, summaries[0].CompletedCount)
}

func TestGetStudent(t *testing.T) {
	svc, _, _, _ := newTestInstructorService(t)
	addStudent(t, svc, "Alice", "alice@example.com")

	detail, err := svc.GetStudent(context.Background(), instructorID, "alice@example.com")
	require.Nil(t, err)
	assert.Equal(t, "alice@example.com", detail.Student.Email)
	assert.NotNil(t, detail.Lessons)
	assert.Empty(t, detail.Lessons)

	_, err = svc.GetStudent(context.Background(), instructorID, "missing@example.com")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestEditStudent_EmailChangeMovesLessons(t *testing.T) {
	svc, _, lessons, _ := newTestInstructorService(t)
	addStudent(t, svc, "Alice", "alice@example.com")

	require.Nil(t, lessons.SaveLesson(context.Background(), &entity.Lesson{
		ID:           "l1",
		Status:       entity.LessonAssigned,
		StudentEmail: "alice@example.com",
		InstructorID: instructorID,
		AssignedAt:   time.Now().UTC(),
	}))

	updated, err := svc.EditStudent(context.Background(), instructorID, "alice@example.com", instructor_dto.EditStudentRequest{
		Email: "alice.new@example.com",
	})
	require.Nil(t, err)
	assert.Equal(t, "alice.new@example.com", updated.Email)

	moved, lerr := lessons.LessonsByStudent(context.Background(), "alice.new@example.com")
	require.Nil(t, lerr)
	assert.Len(t, moved, 1)
}

func TestDeleteStudent_CascadesLessons(t *testing.T) {
	svc, users, lessons, _ := newTestInstructorService(t)
	addStudent(t, svc, "Alice", "alice@example.com")

	require.Nil(t, lessons.SaveLesson(context.Background(), &entity.Lesson{
		ID:           "l1",
		Status:       entity.LessonAssigned,
		StudentEmail: "alice@example.com",
		InstructorID: instructorID,
		AssignedAt:   time.Now().UTC(),
	}))

	require.Nil(t, svc.DeleteStudent(context.Background(), instructorID, "alice@example.com"))

	gone, ferr := users.FindUserByEmail(context.Background(), "alice@example.com")
	require.Nil(t, ferr)
	assert.Nil(t, gone)

	remaining, lerr := lessons.LessonsByStudent(context.Background(), "alice@example.com")
	require.Nil(t, lerr)
	assert.Empty(t, remaining)
}
