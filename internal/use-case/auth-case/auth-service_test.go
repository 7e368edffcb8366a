package auth_service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viettl/skipli/config"
	"github.com/viettl/skipli/internal/dtos/auth_dto"
	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/queue"
	auth_repo "github.com/viettl/skipli/internal/repo/auth"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/internal/utils"
	"github.com/viettl/skipli/state"
)

func newTestAuthService(t *testing.T) (*AuthService, *user_repo.MockUserRepo, *queue.MockProducer) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	config.Conf = &config.AppConfig{}
	config.Conf.App.URL = "http://localhost:3000"

	users := user_repo.NewMockUserRepo()
	producer := queue.NewMockProducer()

	svc := &AuthService{
		AppState: &state.AppState{Redis: rdb, JwtSecret: []byte("0123456789abcdef0123456789abcdef")},
		Users:    users,
		Codes:    auth_repo.NewCodeRepo(rdb),
		Producer: producer,
	}
	return svc, users, producer
}

func TestLogin_QueuesAccessCodeMail(t *testing.T) {
	svc, _, producer := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth_dto.LoginRequest{Email: "Teacher@Example.com"})
	require.Nil(t, err)
	assert.Empty(t, resp.AccessCode)

	jobs := producer.JobsOfType(queue.JobSendAccessCode)
	require.Len(t, jobs, 1)
	assert.Contains(t, string(jobs[0].Payload), "teacher@example.com")

	code, cerr := svc.Codes.GetCode(context.Background(), "teacher@example.com")
	require.Nil(t, cerr)
	require.NotNil(t, code)
	assert.Len(t, code.Code, 6)
}

func TestLogin_BypassReturnsCodeWithoutMail(t *testing.T) {
	svc, _, producer := newTestAuthService(t)
	config.Conf.AUTH.BypassEmailCode = true
	config.Conf.AUTH.DefaultEmailCode = "123456"

	resp, err := svc.Login(context.Background(), auth_dto.LoginRequest{Email: "teacher@example.com"})
	require.Nil(t, err)
	assert.Equal(t, "123456", resp.AccessCode)
	assert.Empty(t, producer.Jobs)
}

func TestVerify_CreatesInstructorOnFirstLogin(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	config.Conf.AUTH.BypassEmailCode = true
	config.Conf.AUTH.DefaultEmailCode = "654321"

	_, err := svc.Login(context.Background(), auth_dto.LoginRequest{Email: "teacher@example.com"})
	require.Nil(t, err)

	resp, err := svc.Verify(context.Background(), auth_dto.VerifyRequest{
		Email:      "teacher@example.com",
		AccessCode: "654321",
	})
	require.Nil(t, err)
	assert.Equal(t, entity.RoleInstructor, resp.UserType)
	assert.Equal(t, "teacher@example.com", resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	claims, perr := utils.ParseAndVerifySign(resp.Token, svc.AppState.JwtSecret)
	require.NoError(t, perr)
	assert.Equal(t, "teacher@example.com", claims.Sub)
	assert.Equal(t, entity.RoleInstructor, claims.Role)

	created, ferr := users.FindUserByEmail(context.Background(), "teacher@example.com")
	require.Nil(t, ferr)
	require.NotNil(t, created)

	// the code is single use
	_, err = svc.Verify(context.Background(), auth_dto.VerifyRequest{
		Email:      "teacher@example.com",
		AccessCode: "654321",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}

func TestVerify_RejectsWrongCode(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	config.Conf.AUTH.BypassEmailCode = true
	config.Conf.AUTH.DefaultEmailCode = "111111"

	_, err := svc.Login(context.Background(), auth_dto.LoginRequest{Email: "teacher@example.com"})
	require.Nil(t, err)

	_, err = svc.Verify(context.Background(), auth_dto.VerifyRequest{
		Email:      "teacher@example.com",
		AccessCode: "222222",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}

func TestVerify_NoPendingCode(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Verify(context.Background(), auth_dto.VerifyRequest{
		Email:      "nobody@example.com",
		AccessCode: "123456",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}

func TestSetupAccountAndPasswordLogin(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	now := time.Now().UTC()
	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:        "student@example.com",
		Email:     "student@example.com",
		Name:      "Student",
		Role:      entity.RoleStudent,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	require.Nil(t, svc.SetupAccount(context.Background(), auth_dto.SetupAccountRequest{
		ID:       "student@example.com",
		Password: "hunter22",
	}))

	// second setup attempt is rejected
	err := svc.SetupAccount(context.Background(), auth_dto.SetupAccountRequest{
		ID:       "student@example.com",
		Password: "other-pass",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)

	resp, lerr := svc.LoginWithPassword(context.Background(), auth_dto.LoginPasswordRequest{
		Email:    "student@example.com",
		Password: "hunter22",
	})
	require.Nil(t, lerr)
	assert.Equal(t, entity.RoleStudent, resp.UserType)
	assert.NotEmpty(t, resp.Token)

	_, lerr = svc.LoginWithPassword(context.Background(), auth_dto.LoginPasswordRequest{
		Email:    "student@example.com",
		Password: "wrong",
	})
	require.NotNil(t, lerr)
	assert.Equal(t, http.StatusUnauthorized, lerr.Code)
}

func TestLoginWithPassword_AccountNotSetUp(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	require.Nil(t, users.SaveUser(context.Background(), &entity.User{
		ID:    "student@example.com",
		Email: "student@example.com",
		Role:  entity.RoleStudent,
	}))

	_, err := svc.LoginWithPassword(context.Background(), auth_dto.LoginPasswordRequest{
		Email:    "student@example.com",
		Password: "whatever",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}
