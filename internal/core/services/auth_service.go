package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
	"github.com/hisaabi/hisaabi_backend/internal/utils"
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// ErrInvalidCredentials is returned when login fails. The message is the
// same for unknown email and wrong password so the endpoint does not reveal
// which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService handles registration, login and token verification.
type authService struct {
	userRepo    portsrepo.UserRepositoryFacade
	jwtSecret   string
	tokenExpiry time.Duration
	issuer      string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, jwtSecret string, tokenExpiry time.Duration, issuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		issuer:      issuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user with a hashed password and a fresh business,
// then returns a signed token for the new session.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if existing, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check existing user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserSlug:     slugs.New(slugs.User),
		BusinessSlug: slugs.New(slugs.Business),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Status:       domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserSlug
	user.LastUpdatedBy = user.UserSlug

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_slug", user.UserSlug))
	return s.issueToken(&user)
}

// Login verifies credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	logger.Info("User logged in", slog.String("user_slug", user.UserSlug))
	return s.issueToken(user)
}

// GetUser retrieves a user by slug.
func (s *authService) GetUser(ctx context.Context, userSlug string) (*domain.User, error) {
	user, err := s.userRepo.FindUserBySlug(ctx, userSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userSlug, err)
	}
	return user, nil
}

// VerifyToken validates a token and returns the session it encodes.
func (s *authService) VerifyToken(ctx context.Context, token string) (*domain.SessionContext, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, err.Error())
	}
	return &domain.SessionContext{
		BusinessSlug: claims.BusinessSlug,
		UserSlug:     claims.Subject,
	}, nil
}

func (s *authService) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserSlug, user.BusinessSlug, s.jwtSecret, s.tokenExpiry, s.issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", apperrors.ErrInternal)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
