package models

// User is the users table row.
type User struct {
	UserSlug     string `db:"user_slug"`
	BusinessSlug string `db:"business_slug"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	StatusID     int    `db:"status_id"`
	AuditFields
}
