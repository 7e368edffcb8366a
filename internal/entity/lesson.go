package entity

import "time"

const (
	LessonAssigned   = "assigned"
	LessonInProgress = "in_progress"
	LessonCompleted  = "completed"
)

type Lesson struct {
	ID           string     `bson:"_id" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	Status       string     `bson:"status" json:"status"`
	StudentEmail string     `bson:"studentEmail" json:"studentEmail"`
	InstructorID string     `bson:"instructorId" json:"instructorId"`
	AssignedAt   time.Time  `bson:"assignedAt" json:"assignedAt"`
	CompletedAt  *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
