package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer is the text written for one question of a profile.
// QuestionText is a snapshot taken when the answer was last saved, so the
// summary still reads correctly if the catalog wording changes later.
type Answer struct {
	ProfileID          uuid.UUID
	QuestionID         string
	QuestionText       string
	QuestionTextLocale string
	IsCustomQuestion   bool
	Answer             string
	AnsweredAt         time.Time
	UpdatedAt          time.Time
}
