package domain

// Category groups curated questions by life theme.
type Category string

const (
	CategoryChildhood  Category = "childhood"
	CategoryFamily     Category = "family"
	CategoryEducation  Category = "education"
	CategoryLove       Category = "love"
	CategoryParenthood Category = "parenthood"
	CategoryValues     Category = "values"
	CategoryDreams     Category = "dreams"
	CategoryLegacy     Category = "legacy"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryChildhood, CategoryFamily, CategoryEducation, CategoryLove,
		CategoryParenthood, CategoryValues, CategoryDreams, CategoryLegacy:
		return true
	}
	return false
}

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryChildhood, CategoryFamily, CategoryEducation, CategoryLove,
		CategoryParenthood, CategoryValues, CategoryDreams, CategoryLegacy,
	}
}

// Relationship describes how a profile relates to the user.
type Relationship string

const (
	RelationshipMother Relationship = "mother"
	RelationshipFather Relationship = "father"
	RelationshipOther  Relationship = "other"
)

func (r Relationship) String() string { return string(r) }

func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipMother, RelationshipFather, RelationshipOther:
		return true
	}
	return false
}
