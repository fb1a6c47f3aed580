package question

import (
	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// Rejection explains why an add did not happen.
type Rejection string

const (
	RejectionAlreadySelected  Rejection = "already_selected"
	RejectionLimitReached     Rejection = "limit_reached"
	RejectionInvalidText      Rejection = "invalid_text"
	RejectionPremiumRequired  Rejection = "premium_required"
	RejectionCustomNotAllowed Rejection = "custom_not_allowed"
)

// AddResult is the outcome of AddCurated and AddCustom. A rejected add leaves
// the profile untouched and is not an error.
type AddResult struct {
	Added      bool
	QuestionID string
	Reason     Rejection
}

func rejected(r Rejection) AddResult {
	return AddResult{Reason: r}
}

// Quota describes how many more questions a profile may take.
type Quota struct {
	Limit               int
	AllowCustom         bool
	TotalAdded          int
	CanAddMore          bool
	HasReachedFreeLimit bool
}

// ComposedList is a profile's current list together with the data it was
// derived from.
type ComposedList struct {
	Profile   *domain.Profile
	User      *domain.User
	Catalog   *catalog.Catalog
	Questions []domain.ComposedQuestion
	Answered  map[string]struct{}
}

// ListItem is one entry of the question list view.
type ListItem struct {
	domain.ComposedQuestion
	Answered bool
}

// ListResult is the question list view of a profile.
type ListResult struct {
	Profile  *domain.Profile
	Items    []ListItem
	Progress Progress
	Quota    Quota
}

// Detail is the single-question view.
type Detail struct {
	Question domain.ComposedQuestion
	Added    bool
	// Number is the 1-based position in the list, 0 when not added.
	Number int
	Total  int
	PrevID string
	NextID string
	Answer *domain.Answer
}

// CatalogItem is a catalog question annotated for one profile.
type CatalogItem struct {
	domain.CuratedQuestion
	Selected bool
	Locked   bool
}

// CatalogView is the browsable catalog, optionally annotated for a profile.
type CatalogView struct {
	Locale     string
	Categories []catalog.CategoryInfo
	Items      []CatalogItem
	Quota      *Quota
}
