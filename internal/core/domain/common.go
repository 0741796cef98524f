package domain

import "time"

// AuditFields holds common creation/modification metadata embedded in every entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Status is the soft-delete flag shared by all entities.
type Status int

const (
	StatusActive  Status = 0
	StatusDeleted Status = 2
)

// SessionContext identifies the business and user on whose behalf an
// operation runs. It is passed explicitly into every service call rather
// than held as module-level state.
type SessionContext struct {
	BusinessSlug string
	UserSlug     string
}
