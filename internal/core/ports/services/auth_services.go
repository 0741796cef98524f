package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// AuthSvcFacade defines authentication and user management operations
type AuthSvcFacade interface {
	// Register creates a new user with a hashed password and returns a signed token.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// GetUser retrieves a user by slug.
	GetUser(ctx context.Context, userSlug string) (*domain.User, error)

	// VerifyToken validates a token and returns the session it encodes.
	VerifyToken(ctx context.Context, token string) (*domain.SessionContext, error)
}
