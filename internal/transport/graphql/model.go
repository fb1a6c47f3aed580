package graphql

import (
	"time"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

// Models bind schema fields to struct fields through the graphql tag. Fields
// without a tag are resolved explicitly in resolver.go.

type User struct {
	ID              uuid.UUID `graphql:"id"`
	Email           string    `graphql:"email"`
	DisplayName     string    `graphql:"displayName"`
	IsPremium       bool      `graphql:"isPremium"`
	PreferredLocale string    `graphql:"preferredLocale"`
	CreatedAt       time.Time `graphql:"createdAt"`
}

type Profile struct {
	ID           uuid.UUID `graphql:"id"`
	Name         string    `graphql:"name"`
	Relationship string    `graphql:"relationship"`
	PhotoURL     *string   `graphql:"photoUrl"`
	CreatedAt    time.Time `graphql:"createdAt"`
	UpdatedAt    time.Time `graphql:"updatedAt"`
}

type Question struct {
	ProfileID uuid.UUID
	ID        string `graphql:"id"`
	Text      string `graphql:"text"`
	Category  string `graphql:"category"`
	IsFree    bool   `graphql:"isFree"`
	IsCustom  bool   `graphql:"isCustom"`
	Position  int    `graphql:"position"`
}

type Answer struct {
	QuestionID       string    `graphql:"questionId"`
	QuestionText     string    `graphql:"questionText"`
	IsCustomQuestion bool      `graphql:"isCustomQuestion"`
	Text             string    `graphql:"text"`
	AnsweredAt       time.Time `graphql:"answeredAt"`
	UpdatedAt        time.Time `graphql:"updatedAt"`
}

type Progress struct {
	Answered   int `graphql:"answered"`
	Total      int `graphql:"total"`
	Percentage int `graphql:"percentage"`
}

type Catalog struct {
	Locale string `graphql:"locale"`
	view   *question.CatalogView
}

type Category struct {
	ID            string `graphql:"id"`
	Name          string `graphql:"name"`
	QuestionCount int    `graphql:"questionCount"`
	FreeCount     int    `graphql:"freeCount"`
}

type CatalogQuestion struct {
	ID       string `graphql:"id"`
	Text     string `graphql:"text"`
	Category string `graphql:"category"`
	IsFree   bool   `graphql:"isFree"`
	Locked   bool   `graphql:"locked"`
}

func toUser(u *domain.User) *User {
	return &User{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		IsPremium:       u.IsPremium,
		PreferredLocale: u.PreferredLocale,
		CreatedAt:       u.CreatedAt,
	}
}

func toProfile(p *domain.Profile) *Profile {
	return &Profile{
		ID:           p.ID,
		Name:         p.Name,
		Relationship: string(p.Relationship),
		PhotoURL:     p.PhotoURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toQuestions(profileID uuid.UUID, list []domain.ComposedQuestion) []*Question {
	out := make([]*Question, 0, len(list))
	for i, q := range list {
		out = append(out, &Question{
			ProfileID: profileID,
			ID:        q.ID,
			Text:      q.Text,
			Category:  string(q.Category),
			IsFree:    q.IsFree,
			IsCustom:  q.IsCustom,
			Position:  i + 1,
		})
	}
	return out
}

func toAnswer(a domain.Answer) *Answer {
	return &Answer{
		QuestionID:       a.QuestionID,
		QuestionText:     a.QuestionText,
		IsCustomQuestion: a.IsCustomQuestion,
		Text:             a.Answer,
		AnsweredAt:       a.AnsweredAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toCategory(c catalog.CategoryInfo) *Category {
	return &Category{
		ID:            string(c.ID),
		Name:          c.Name,
		QuestionCount: c.QuestionCount,
		FreeCount:     c.FreeCount,
	}
}
