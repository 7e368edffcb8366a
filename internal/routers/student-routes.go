package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/viettl/skipli/internal/entity"
	"github.com/viettl/skipli/internal/handlers"
	student_handler "github.com/viettl/skipli/internal/handlers/student-handler"
	"github.com/viettl/skipli/internal/middleware"
	"github.com/viettl/skipli/state"
)

func StudentRouter(r chi.Router, appState *state.AppState) {
	studentHandler := student_handler.NewStudentHandler(appState)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.JWTAuth(appState.JwtSecret))
		protected.Use(middleware.RequireRole(entity.RoleStudent))

		protected.Get("/api/v1/student/lessons", handlers.WrapHandler(studentHandler.MyLessons))
		protected.Patch("/api/v1/student/lessons/done", handlers.WrapHandler(studentHandler.MarkLessonDone))
		protected.Put("/api/v1/student/profile", handlers.WrapHandler(studentHandler.EditProfile))
	})
}
