package auth_dto

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AccessCode string `json:"accessCode" validate:"required,len=6,numeric"`
}

type LoginPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SetupAccountRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
