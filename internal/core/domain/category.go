package domain

// CategoryType distinguishes what a category groups.
type CategoryType int

const (
	CategoryProduct CategoryType = 1
	CategoryParty   CategoryType = 2
	CategoryExpense CategoryType = 3
)

// Category groups products, parties or expenses for reporting.
type Category struct {
	CategorySlug string       `json:"categorySlug"`
	BusinessSlug string       `json:"businessSlug"`
	Title        string       `json:"title"`
	Type         CategoryType `json:"type"`
	Status       Status       `json:"statusId"`
	AuditFields
}
