package instructor_dto

type AddStudentRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type AssignLessonRequest struct {
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
}

type EditStudentRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}
