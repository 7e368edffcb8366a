package instructor_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/viettl/skipli/internal/dtos/instructor_dto"
	app_error "github.com/viettl/skipli/internal/errors"
	"github.com/viettl/skipli/internal/handlers"
	"github.com/viettl/skipli/internal/middleware"
	instructor_service "github.com/viettl/skipli/internal/use-case/instructor-case"
	"github.com/viettl/skipli/state"
)

type InstructorHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  instructor_service.InstructorServiceContract
}

func NewInstructorHandler(appState *state.AppState) *InstructorHandler {
	return &InstructorHandler{
		State:    appState,
		Validate: validator.New(),
		Service:  instructor_service.NewInstructorService(appState),
	}
}

func callerID(r *http.Request) (string, *app_error.AppError) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "", app_error.NewAppError(http.StatusUnauthorized, "Missing user claims", "auth")
	}
	return claims.Sub, nil
}

func (h *InstructorHandler) AddStudent(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req instructor_dto.AddStudentRequest
	defer r.Body.Close()

	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if verr := h.Validate.Struct(req); verr != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", verr), "validation")
	}

	student, serr := h.Service.AddStudent(r.Context(), instructorID, req)
	if serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.CreateResponse("student added", student, handlers.RequestID(r)))
	return nil
}

func (h *InstructorHandler) AssignLesson(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req instructor_dto.AssignLessonRequest
	defer r.Body.Close()

	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if verr := h.Validate.Struct(req); verr != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", verr), "validation")
	}

	lesson, serr := h.Service.AssignLesson(r.Context(), instructorID, req)
	if serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.CreateResponse("lesson assigned", lesson, handlers.RequestID(r)))
	return nil
}

func (h *InstructorHandler) Students(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	students, serr := h.Service.Students(r.Context(), instructorID)
	if serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("students fetched", students, handlers.RequestID(r)))
	return nil
}

func (h *InstructorHandler) GetStudent(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	detail, serr := h.Service.GetStudent(r.Context(), instructorID, chi.URLParam(r, "email"))
	if serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("student fetched", detail, handlers.RequestID(r)))
	return nil
}

func (h *InstructorHandler) EditStudent(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req instructor_dto.EditStudentRequest
	defer r.Body.Close()

	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if verr := h.Validate.Struct(req); verr != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", verr), "validation")
	}

	student, serr := h.Service.EditStudent(r.Context(), instructorID, chi.URLParam(r, "email"), req)
	if serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("student updated", student, handlers.RequestID(r)))
	return nil
}

func (h *InstructorHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	instructorID, err := callerID(r)
	if err != nil {
		return err
	}

	if serr := h.Service.DeleteStudent(r.Context(), instructorID, chi.URLParam(r, "email")); serr != nil {
		return serr
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("student deleted", struct{}{}, handlers.RequestID(r)))
	return nil
}
