package student_dto

type MarkLessonDoneRequest struct {
	LessonID string `json:"lessonId" validate:"required"`
}

type EditProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}
