package auth_dto

import "github.com/viettl/skipli/internal/entity"

type LoginResponse struct {
	// AccessCode is only echoed back when email verification is bypassed
	// (local development).
	AccessCode string `json:"accessCode,omitempty"`
}

type AuthResponse struct {
	UserType string       `json:"userType"`
	User     *entity.User `json:"user"`
	Token    string       `json:"token"`
}
