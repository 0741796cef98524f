package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserBySlug retrieves a specific user by slug.
	FindUserBySlug(ctx context.Context, userSlug string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates user details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
