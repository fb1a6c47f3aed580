package question

import "github.com/werdnakof/ask-parents-25-questions/internal/domain"

// CanAccessQuestion reports whether a user on tier may open question id.
//
// Anything already in the user's own list is accessible, so items kept after
// a downgrade stay readable. Premium users may open every catalog question;
// free users only the free ones.
func CanAccessQuestion(id string, tier domain.TierState, lookup Lookup, list []domain.ComposedQuestion) bool {
	if IndexOf(list, id) >= 0 {
		return true
	}
	q, ok := lookup.Get(id)
	if !ok {
		return false
	}
	return tier.IsPremium || q.IsFree
}
