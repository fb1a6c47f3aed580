package question

import (
	"sort"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// Lookup resolves catalog question IDs. *catalog.Catalog satisfies it.
type Lookup interface {
	Get(id string) (domain.CuratedQuestion, bool)
}

// Compose merges a profile's selected catalog questions and custom questions
// into one list sorted by insertion order.
//
// Selections whose ID is missing from the catalog are dropped. Custom
// questions are reported under the legacy category and are never free.
// Equal orders keep selections ahead of custom questions, each in input order.
func Compose(lookup Lookup, selected []domain.SelectedQuestion, custom []domain.CustomQuestion) []domain.ComposedQuestion {
	out := make([]domain.ComposedQuestion, 0, len(selected)+len(custom))

	for _, s := range selected {
		q, ok := lookup.Get(s.QuestionID)
		if !ok {
			continue
		}
		out = append(out, domain.ComposedQuestion{
			ID:       q.ID,
			Text:     q.Text,
			Category: q.Category,
			IsFree:   q.IsFree,
			Order:    s.Order,
		})
	}

	for _, c := range custom {
		out = append(out, domain.ComposedQuestion{
			ID:       c.ID,
			Text:     c.Text,
			Category: domain.CategoryLegacy,
			IsCustom: true,
			Order:    c.Order,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// NextOrder returns the order for a newly added question: one past the
// highest order in use across both sources, starting at 1.
func NextOrder(selected []domain.SelectedQuestion, custom []domain.CustomQuestion) int {
	highest := 0
	for _, s := range selected {
		highest = max(highest, s.Order)
	}
	for _, c := range custom {
		highest = max(highest, c.Order)
	}
	return highest + 1
}

// IndexOf returns the position of id in list, or -1.
func IndexOf(list []domain.ComposedQuestion, id string) int {
	for i, q := range list {
		if q.ID == id {
			return i
		}
	}
	return -1
}
