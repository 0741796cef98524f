package models

// Category is the categories table row.
type Category struct {
	CategorySlug string `db:"category_slug"`
	BusinessSlug string `db:"business_slug"`
	Title        string `db:"title"`
	CategoryType int    `db:"category_type"`
	StatusID     int    `db:"status_id"`
	AuditFields
}
