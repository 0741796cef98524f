package domain

// User is an authenticated operator of a business.
type User struct {
	UserSlug     string `json:"userSlug"`
	BusinessSlug string `json:"businessSlug"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Status       Status `json:"statusId"`
	AuditFields
}
