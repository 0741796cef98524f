package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/core/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/utils"
)

const testJWTSecret = "test-secret-which-is-long-enough"

func newAuthServiceWithMocks() (*MockUserRepository, portssvc.AuthSvcFacade) {
	userRepo := new(MockUserRepository)
	svc := services.NewAuthService(userRepo, testJWTSecret, time.Hour, "test")
	return userRepo, svc
}

func TestRegister(t *testing.T) {
	userRepo, svc := newAuthServiceWithMocks()

	userRepo.On("FindUserByEmail", mock.Anything, "new@example.com").
		Return(nil, apperrors.ErrNotFound)

	var saved domain.User
	userRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil)

	resp, err := svc.Register(context.Background(), dto.RegisterUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)

	assert.NotEmpty(t, saved.UserSlug)
	assert.NotEmpty(t, saved.BusinessSlug, "registration creates a fresh business")
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("password123", saved.PasswordHash))

	// The issued token resolves back to the new session.
	sess, err := svc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, saved.UserSlug, sess.UserSlug)
	assert.Equal(t, saved.BusinessSlug, sess.BusinessSlug)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo, svc := newAuthServiceWithMocks()

	userRepo.On("FindUserByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{UserSlug: "US-1", Email: "taken@example.com"}, nil)

	_, err := svc.Register(context.Background(), dto.RegisterUserRequest{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	userRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	userRepo, svc := newAuthServiceWithMocks()
	userRepo.On("FindUserByEmail", mock.Anything, "user@example.com").
		Return(&domain.User{
			UserSlug:     "US-1",
			BusinessSlug: "BU-1",
			Email:        "user@example.com",
			PasswordHash: hash,
		}, nil)

	t.Run("correct password", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "user@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "US-1", resp.User.UserSlug)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "user@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, svc := newAuthServiceWithMocks()
	userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestVerifyToken_Invalid(t *testing.T) {
	_, svc := newAuthServiceWithMocks()

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
