package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a parent (or other person) whose story the user records.
type Profile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Relationship  Relationship
	PhotoURL      *string
	PhotoKey      *string
	QuestionCount int
	AnsweredCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
