package user_repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
)

// MockUserRepo is an in-memory stand-in for service tests.
type MockUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User

	SaveErr *app_error.AppError
	FindErr *app_error.AppError
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{users: make(map[string]entity.User)}
}

func (m *MockUserRepo) FindUserByEmail(_ context.Context, email string) (*entity.User, *app_error.AppError) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepo) FindUserByID(_ context.Context, id string) (*entity.User, *app_error.AppError) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (m *MockUserRepo) SaveUser(_ context.Context, user *entity.User) *app_error.AppError {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserRepo) UpdateUser(_ context.Context, id string, updates bson.M) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil
	}

	for k, v := range updates {
		switch k {
		case "name":
			u.Name, _ = v.(string)
		case "email":
			u.Email, _ = v.(string)
		case "passwordHash":
			u.PasswordHash, _ = v.(string)
		case "isAccountSetup":
			u.IsAccountSetup, _ = v.(bool)
		case "instructorEmail":
			u.InstructorEmail, _ = v.(string)
		}
	}
	u.UpdatedAt = time.Now().UTC()
	m.users[id] = u
	return nil
}

func (m *MockUserRepo) DeleteUser(_ context.Context, id string) *app_error.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepo) ListStudents(_ context.Context, instructorID string) ([]entity.User, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []entity.User
	for _, u := range m.users {
		if u.Role == entity.RoleStudent && u.InstructorID == instructorID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockUserRepo) FindStudent(_ context.Context, instructorID, email string) (*entity.User, *app_error.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Role == entity.RoleStudent && u.InstructorID == instructorID && u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}
