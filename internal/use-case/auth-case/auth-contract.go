package auth_service

import (
	"context"

	"github.com/viettl/skipli/internal/dtos/auth_dto"
	app_error "github.com/viettl/skipli/internal/errors"
)

type AuthServiceContract interface {
	// Login issues a one-time access code for the email and queues its
	// delivery.
	Login(ctx context.Context, req auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_error.AppError)
	// Verify exchanges a pending access code for a signed token, creating
	// an instructor account on first login.
	Verify(ctx context.Context, req auth_dto.VerifyRequest) (*auth_dto.AuthResponse, *app_error.AppError)
	// LoginWithPassword authenticates a student who finished account setup.
	LoginWithPassword(ctx context.Context, req auth_dto.LoginPasswordRequest) (*auth_dto.AuthResponse, *app_error.AppError)
	// SetupAccount sets the password on an invited student account, once.
	SetupAccount(ctx context.Context, req auth_dto.SetupAccountRequest) *app_error.AppError
}
