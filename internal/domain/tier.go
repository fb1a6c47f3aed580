package domain

// TierState is the user's subscription tier.
type TierState struct {
	IsPremium bool
}

// Limits bounds how many questions a profile may hold.
type Limits struct {
	MaxQuestions int
	AllowCustom  bool
	// AllowFullCatalog is false when only free catalog questions may be added.
	AllowFullCatalog bool
}

// TierPolicy maps a tier to its limits.
type TierPolicy struct {
	FreeMaxQuestions    int
	PremiumMaxQuestions int
	// FreeCustomDisabled reserves custom questions for premium users.
	FreeCustomDisabled bool
	// FreeCatalogOnly limits free users to catalog questions flagged free.
	FreeCatalogOnly bool
}

// DefaultTierPolicy returns the stock limits: 25 questions on the free tier
// and 100 on premium. Both tiers may add any catalog question and write
// custom ones.
func DefaultTierPolicy() TierPolicy {
	return TierPolicy{FreeMaxQuestions: 25, PremiumMaxQuestions: 100}
}

// LimitFor returns the limits for the given tier.
func (p TierPolicy) LimitFor(isPremium bool) Limits {
	if isPremium {
		return Limits{MaxQuestions: p.PremiumMaxQuestions, AllowCustom: true, AllowFullCatalog: true}
	}
	return Limits{
		MaxQuestions:     p.FreeMaxQuestions,
		AllowCustom:      !p.FreeCustomDisabled,
		AllowFullCatalog: !p.FreeCatalogOnly,
	}
}
