package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CustomQuestionIDPrefix marks IDs of user-authored questions. Catalog IDs
// have the form "q<N>", so the two namespaces never overlap.
const CustomQuestionIDPrefix = "custom_"

// CuratedQuestion is an entry of the localized question catalog.
type CuratedQuestion struct {
	ID       string
	Text     string
	Category Category
	IsFree   bool
}

// SelectedQuestion records that a profile picked a catalog question.
type SelectedQuestion struct {
	QuestionID string
	Order      int
	AddedAt    time.Time
}

// CustomQuestion is a question written by the user for one profile.
type CustomQuestion struct {
	ID        string
	Text      string
	Order     int
	CreatedAt time.Time
}

// ComposedQuestion is one item of a profile's ordered question list.
// It is derived from selections, custom questions and the catalog and is
// never stored.
type ComposedQuestion struct {
	ID       string
	Text     string
	Category Category
	IsFree   bool
	IsCustom bool
	Order    int
}

// NewCustomQuestionID returns a fresh time-ordered custom question ID.
func NewCustomQuestionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate custom question id: %w", err)
	}
	return CustomQuestionIDPrefix + id.String(), nil
}

// IsCustomQuestionID reports whether id belongs to a custom question.
func IsCustomQuestionID(id string) bool {
	return strings.HasPrefix(id, CustomQuestionIDPrefix)
}

// CatalogQuestionID returns the catalog ID for the 1-based position n.
func CatalogQuestionID(n int) string {
	return fmt.Sprintf("q%d", n)
}
