package auth_service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/viettl/skipli/config"
	"github.com/viettl/skipli/internal/dtos/auth_dto"
	"github.com/viettl/skipli/internal/entity"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/queue"
	auth_repo "github.com/viettl/skipli/internal/repo/auth"
	user_repo "github.com/viettl/skipli/internal/repo/user"
	"github.com/viettl/skipli/internal/utils"
	"github.com/viettl/skipli/state"
)

type AuthService struct {
	AppState *state.AppState
	Users    user_repo.UserRepoContract
	Codes    auth_repo.CodeRepoContract
	Producer queue.ProducerContract
}

func NewAuthService(appState *state.AppState) AuthServiceContract {
	return &AuthService{
		AppState: appState,
		Users:    user_repo.NewUserRepo(appState),
		Codes:    auth_repo.NewCodeRepo(appState.Redis),
		Producer: queue.NewRedisProducer(appState.Redis),
	}
}

func (a *AuthService) Login(ctx context.Context, req auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_error.AppError) {
	email := utils.NormalizeEmail(req.Email)

	code := utils.GenerateAccessCode()
	bypass := config.Conf != nil && config.Conf.AUTH.BypassEmailCode
	if bypass {
		code = config.Conf.AUTH.DefaultEmailCode
	}

	now := time.Now().UTC()
	access := entity.AccessCode{
		Code:      code,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: auth_repo.CodeExpiry(now),
	}

	if err := a.Codes.StoreCode(ctx, access); err != nil {
		return nil, err
	}

	if bypass {
		// local setups without SMTP get the code straight in the response
		return &auth_dto.LoginResponse{AccessCode: code}, nil
	}

	payload := queue.MustMarshal(queue.SendAccessCodePayload{Email: email, Code: code})
	if err := a.Producer.Enqueue(ctx, queue.JobSendAccessCode, payload, 1); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to enqueue access code mail")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to queue access code email", "queue")
	}

	return &auth_dto.LoginResponse{}, nil
}

func (a *AuthService) Verify(ctx context.Context, req auth_dto.VerifyRequest) (*auth_dto.AuthResponse, *app_error.AppError) {
	email := utils.NormalizeEmail(req.Email)

	code, err := a.Codes.GetCode(ctx, email)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, app_error.NewAppError(http.StatusBadRequest, "access code not found or expired", "accessCode")
	}
	if code.Code != req.AccessCode {
		return nil, app_error.NewAppError(http.StatusBadRequest, "access code mismatch", "accessCode")
	}
	if code.Expired(time.Now().UTC()) {
		return nil, app_error.NewAppError(http.StatusBadRequest, "access code expired", "accessCode")
	}

	// one-time use
	if err := a.Codes.DeleteCode(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to delete consumed access code")
	}

	user, err := a.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// first login creates an instructor account keyed by email
		now := time.Now().UTC()
		user = &entity.User{
			ID:             email,
			Email:          email,
			Role:           entity.RoleInstructor,
			IsAccountSetup: true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := a.Users.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	} else if user.Role == entity.RoleStudent && user.InstructorEmail == "" && user.InstructorID != "" {
		// older student records only carried the instructor id
		if instructor, ierr := a.Users.FindUserByID(ctx, user.InstructorID); ierr == nil && instructor != nil {
			user.InstructorEmail = instructor.Email
			if uerr := a.Users.UpdateUser(ctx, user.ID, bson.M{"instructorEmail": instructor.Email}); uerr != nil {
				log.Warn().Str("student", user.ID).Msg("failed to backfill instructor email")
			}
		}
	}

	return a.issueToken(user)
}

func (a *AuthService) LoginWithPassword(ctx context.Context, req auth_dto.LoginPasswordRequest) (*auth_dto.AuthResponse, *app_error.AppError) {
	email := utils.NormalizeEmail(req.Email)

	user, err := a.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "account not found", "email")
	}
	if !user.IsAccountSetup || user.PasswordHash == "" {
		return nil, app_error.NewAppError(http.StatusBadRequest, "account has no password set", "password")
	}

	ok, verr := utils.VerifyHash(user.PasswordHash, req.Password)
	if verr != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to verify password", "password")
	}
	if !ok {
		return nil, app_error.NewAppError(http.StatusUnauthorized, "invalid credentials", "password")
	}

	return a.issueToken(user)
}

func (a *AuthService) SetupAccount(ctx context.Context, req auth_dto.SetupAccountRequest) *app_error.AppError {
	user, err := a.Users.FindUserByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return app_error.NewAppError(http.StatusNotFound, "account not found", "id")
	}
	if user.IsAccountSetup {
		return app_error.NewAppError(http.StatusBadRequest, "account already set up", "id")
	}

	hashed, herr := utils.GenerateHash(req.Password)
	if herr != nil {
		return app_error.NewAppError(http.StatusInternalServerError, "failed to hash password", "password")
	}

	return a.Users.UpdateUser(ctx, user.ID, bson.M{
		"passwordHash":   hashed,
		"isAccountSetup": true,
	})
}

func (a *AuthService) issueToken(user *entity.User) (*auth_dto.AuthResponse, *app_error.AppError) {
	token, err := utils.GenerateSign(user.ID, user.Email, user.Role, a.AppState.JwtSecret)
	if err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to sign token", "token")
	}

	return &auth_dto.AuthResponse{
		UserType: user.Role,
		User:     user,
		Token:    token,
	}, nil
}
