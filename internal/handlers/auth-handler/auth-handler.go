package auth_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/viettl/skipli/internal/dtos/auth_dto"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/handlers"
	auth_service "github.com/viettl/skipli/internal/use-case/auth-case"
	"github.com/viettl/skipli/state"
)

type AuthHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  auth_service.AuthServiceContract
}

func NewAuthHandler(appState *state.AppState) *AuthHandler {
	return &AuthHandler{
		State:    appState,
		Validate: validator.New(),
		Service:  auth_service.NewAuthService(appState),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req auth_dto.LoginRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("access code issued", *resp, handlers.RequestID(r)))
	return nil
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req auth_dto.VerifyRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Verify(r.Context(), req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("login verified", *resp, handlers.RequestID(r)))
	return nil
}

func (h *AuthHandler) LoginWithPassword(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req auth_dto.LoginPasswordRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.LoginWithPassword(r.Context(), req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("login successful", *resp, handlers.RequestID(r)))
	return nil
}

func (h *AuthHandler) SetupAccount(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req auth_dto.SetupAccountRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	if err := h.Service.SetupAccount(r.Context(), req); err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("account set up", struct{}{}, handlers.RequestID(r)))
	return nil
}
