package student_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/viettl/skipli/internal/dtos/student_dto"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/handlers"
	"github.com/viettl/skipli/internal/middleware"
	student_service "github.com/viettl/skipli/internal/use-case/student-case"
	"github.com/viettl/skipli/state"
)

type StudentHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  student_service.StudentServiceContract
}

func NewStudentHandler(appState *state.AppState) *StudentHandler {
	return &StudentHandler{
		State:    appState,
		Validate: validator.New(),
		Service:  student_service.NewStudentService(appState),
	}
}

func (h *StudentHandler) MyLessons(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}

	lessons, err := h.Service.MyLessons(r.Context(), claims.Email)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("lessons fetched", lessons, handlers.RequestID(r)))
	return nil
}

func (h *StudentHandler) MarkLessonDone(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req student_dto.MarkLessonDoneRequest
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}

	if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if verr := h.Validate.Struct(req); verr != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", verr), "validation")
	}

	lesson, err := h.Service.MarkLessonDone(r.Context(), claims.Email, req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("lesson completed", lesson, handlers.RequestID(r)))
	return nil
}

func (h *StudentHandler) EditProfile(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req student_dto.EditProfileRequest
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}

	if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if verr := h.Validate.Struct(req); verr != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", verr), "validation")
	}

	user, err := h.Service.EditProfile(r.Context(), claims.Sub, req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("profile updated", user, handlers.RequestID(r)))
	return nil
}
