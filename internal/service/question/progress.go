package question

import (
	"math"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// Progress summarizes how much of a profile's list has been answered.
type Progress struct {
	AnsweredCount int
	Total         int
	Percentage    int
}

// DeriveProgress counts the answered questions of list. Answers to questions
// no longer in the list are ignored.
func DeriveProgress(list []domain.ComposedQuestion, answered map[string]struct{}) Progress {
	p := Progress{Total: len(list)}
	for _, q := range list {
		if _, ok := answered[q.ID]; ok {
			p.AnsweredCount++
		}
	}
	if p.Total == 0 {
		return p
	}
	p.Percentage = int(math.Round(100 * float64(p.AnsweredCount) / float64(p.Total)))
	return p
}

// AnsweredSet converts answered question IDs to a set.
func AnsweredSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
