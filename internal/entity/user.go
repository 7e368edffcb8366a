package entity

import "time"

const (
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

type User struct {
	ID              string    `bson:"_id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	Name            string    `bson:"name" json:"name"`
	Role            string    `bson:"role" json:"role"`
	PasswordHash    string    `bson:"passwordHash,omitempty" json:"-"`
	InstructorID    string    `bson:"instructorId,omitempty" json:"instructorId,omitempty"`
	InstructorEmail string    `bson:"instructorEmail,omitempty" json:"instructorEmail,omitempty"`
	IsAccountSetup  bool      `bson:"isAccountSetup" json:"isAccountSetup"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
