package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/handlers"
	instructor_handler "github.com/viettl/skipli/internal/handlers/instructor-handler"
	"github.com/viettl/skipli/internal/middleware"
	"github.com/viettl/skipli/state"
)

func InstructorRouter(r chi.Router, appState *state.AppState) {
	instructorHandler := instructor_handler.NewInstructorHandler(appState)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.JWTAuth(appState.JwtSecret))
		protected.Use(middleware.RequireRole(entity.RoleInstructor))

		protected.Post("/api/v1/instructor/students", handlers.WrapHandler(instructorHandler.AddStudent))
		protected.Get("/api/v1/instructor/students", handlers.WrapHandler(instructorHandler.Students))
		protected.Get("/api/v1/instructor/students/{email}", handlers.WrapHandler(instructorHandler.GetStudent))
		protected.Put("/api/v1/instructor/students/{email}", handlers.WrapHandler(instructorHandler.EditStudent))
		protected.Delete("/api/v1/instructor/students/{email}", handlers.WrapHandler(instructorHandler.DeleteStudent))
		protected.Post("/api/v1/instructor/lessons", handlers.WrapHandler(instructorHandler.AssignLesson))
	})
}
