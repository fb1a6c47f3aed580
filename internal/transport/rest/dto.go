package rest

import (
	"time"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

type userResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"displayName"`
	PreferredLocale string    `json:"preferredLocale"`
	IsPremium       bool      `json:"isPremium"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		PreferredLocale: u.PreferredLocale,
		IsPremium:       u.IsPremium,
		CreatedAt:       u.CreatedAt,
	}
}

type tierResponse struct {
	IsPremium bool `json:"isPremium"`
}

func toTierResponse(t domain.TierState) tierResponse {
	return tierResponse{IsPremium: t.IsPremium}
}

type profileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Relationship  string    `json:"relationship"`
	PhotoURL      *string   `json:"photoUrl"`
	QuestionCount int       `json:"questionCount"`
	AnsweredCount int       `json:"answeredCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Relationship:  p.Relationship.String(),
		PhotoURL:      p.PhotoURL,
		QuestionCount: p.QuestionCount,
		AnsweredCount: p.AnsweredCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type questionResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	IsFree   bool   `json:"isFree"`
	IsCustom bool   `json:"isCustom"`
	Order    int    `json:"order,omitempty"`
}

func toQuestionResponse(q domain.ComposedQuestion) questionResponse {
	return questionResponse{
		ID:       q.ID,
		Text:     q.Text,
		Category: string(q.Category),
		IsFree:   q.IsFree,
		IsCustom: q.IsCustom,
		Order:    q.Order,
	}
}

type quotaResponse struct {
	Limit               int  `json:"limit"`
	TotalAdded          int  `json:"totalAdded"`
	AllowCustom         bool `json:"allowCustom"`
	CanAddMore          bool `json:"canAddMore"`
	HasReachedFreeLimit bool `json:"hasReachedFreeLimit"`
}

func toQuotaResponse(q question.Quota) quotaResponse {
	return quotaResponse{
		Limit:               q.Limit,
		TotalAdded:          q.TotalAdded,
		AllowCustom:         q.AllowCustom,
		CanAddMore:          q.CanAddMore,
		HasReachedFreeLimit: q.HasReachedFreeLimit,
	}
}

type progressResponse struct {
	AnsweredCount int `json:"answeredCount"`
	Total         int `json:"total"`
	Percentage    int `json:"percentage"`
}

func toProgressResponse(p question.Progress) progressResponse {
	return progressResponse{AnsweredCount: p.AnsweredCount, Total: p.Total, Percentage: p.Percentage}
}

type answerResponse struct {
	QuestionID         string    `json:"questionId"`
	QuestionText       string    `json:"questionText"`
	QuestionTextLocale string    `json:"questionTextLocale"`
	IsCustomQuestion   bool      `json:"isCustomQuestion"`
	Answer             string    `json:"answer"`
	AnsweredAt         time.Time `json:"answeredAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toAnswerResponse(a *domain.Answer) *answerResponse {
	if a == nil {
		return nil
	}
	return &answerResponse{
		QuestionID:         a.QuestionID,
		QuestionText:       a.QuestionText,
		QuestionTextLocale: a.QuestionTextLocale,
		IsCustomQuestion:   a.IsCustomQuestion,
		Answer:             a.Answer,
		AnsweredAt:         a.AnsweredAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

type categoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
	FreeCount     int    `json:"freeCount"`
}

type catalogItemResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	IsFree   bool   `json:"isFree"`
	Selected bool   `json:"selected"`
	Locked   bool   `json:"locked"`
}

type catalogResponse struct {
	Locale     string                `json:"locale"`
	Categories []categoryResponse    `json:"categories"`
	Questions  []catalogItemResponse `json:"questions"`
	Quota      *quotaResponse        `json:"quota,omitempty"`
}

func toCatalogResponse(v *question.CatalogView) catalogResponse {
	resp := catalogResponse{
		Locale:     v.Locale,
		Categories: make([]categoryResponse, 0, len(v.Categories)),
		Questions:  make([]catalogItemResponse, 0, len(v.Items)),
	}
	for _, c := range v.Categories {
		resp.Categories = append(resp.Categories, categoryResponse{
			ID:            string(c.ID),
			Name:          c.Name,
			QuestionCount: c.QuestionCount,
			FreeCount:     c.FreeCount,
		})
	}
	for _, it := range v.Items {
		resp.Questions = append(resp.Questions, catalogItemResponse{
			ID:       it.ID,
			Text:     it.Text,
			Category: string(it.Category),
			IsFree:   it.IsFree,
			Selected: it.Selected,
			Locked:   it.Locked,
		})
	}
	if v.Quota != nil {
		q := toQuotaResponse(*v.Quota)
		resp.Quota = &q
	}
	return resp
}
