package lesson_repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

// MockLessonRepo is an in-memory stand-in for service tests.
type MockLessonRepo struct {
	mu      sync.Mutex
	lessons map[string]entity.Lesson

	SaveErr *app_error.AppError
}

func NewMockLessonRepo() *MockLessonRepo {
	return &MockLessonRepo{lessons: make(map[string]entity.Lesson)}
}

func (m *MockLessonRepo) SaveLesson(_ context.Context, lesson *entity.Lesson) *app_error.AppError {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lessons[lesson.ID] = *lesson
	return nil
}

func (m *MockLessonRepo) FindLessonByID(_ context.Context, id string) (*entity.Lesson, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.lessons[id]
	if !ok {
		return nil, nil
	}
	copied := l
	return &copied, nil
}

func (m *MockLessonRepo) LessonsByStudent(_ context.Context, studentEmail string) ([]entity.Lesson, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []entity.Lesson
	for _, l := range m.lessons {
		if l.StudentEmail == studentEmail {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out, nil
}

func (m *MockLessonRepo) UpdateLesson(_ context.Context, id string, updates bson.M) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.lessons[id]
	if !ok {
		return nil
	}

	for k, v := range updates {
		switch k {
		case "status":
			l.Status, _ = v.(string)
		case "title":
			l.Title, _ = v.(string)
		case "description":
			l.Description, _ = v.(string)
		case "completedAt":
			if t, ok := v.(time.Time); ok {
				l.CompletedAt = &t
			}
		}
	}
	m.lessons[id] = l
	return nil
}

func (m *MockLessonRepo) ReassignStudentEmail(_ context.Context, oldEmail, newEmail string) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, l := range m.lessons {
		if l.StudentEmail == oldEmail {
			l.StudentEmail = newEmail
			m.lessons[id] = l
		}
	}
	return nil
}

func (m *MockLessonRepo) DeleteLessonsByStudent(_ context.Context, studentEmail string) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, l := range m.lessons {
		if l.StudentEmail == studentEmail {
			delete(m.lessons, id)
		}
	}
	return nil
}
