package instructor_dto

import "github.com/viettl/skipli/internal/entity"

// StudentSummary is a student record with its lesson counters, used by the
// instructor dashboard list.
type StudentSummary struct {
	entity.User
	LessonCount     int `json:"lessonCount"`
	InProgressCount int `json:"inProgressCount"`
	CompletedCount  int `json:"completedCount"`
}

type StudentDetail struct {
	Student *entity.User    `json:"student"`
	Lessons []entity.Lesson `json:"lessons"`
}
