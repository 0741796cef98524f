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
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// partyService provides customer/vendor/investor management operations.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty persists a new party.
func (s *partyService) CreateParty(ctx context.Context, sess domain.SessionContext, req dto.CreatePartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	role := domain.PartyRole(req.Role)
	if _, ok := domain.JournalAccountTypeForRole(role); !ok && role != domain.RoleStockAdjuster {
		return nil, fmt.Errorf("%w: unknown party role %d", apperrors.ErrValidation, req.Role)
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartySlug:      slugs.New(slugs.Party),
		BusinessSlug:   sess.BusinessSlug,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		Email:          req.Email,
		Description:    req.Description,
		Role:           role,
		OpeningBalance: req.OpeningBalance,
		Balance:        req.OpeningBalance,
		Status:         domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sess.UserSlug,
			LastUpdatedAt: now,
			LastUpdatedBy: sess.UserSlug,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	logger.Info("Party created", slog.String("party_slug", party.PartySlug), slog.Int("role", req.Role))
	return &party, nil
}

// GetParty retrieves a specific party by slug.
func (s *partyService) GetParty(ctx context.Context, sess domain.SessionContext, partySlug string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, partySlug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find party", slog.String("error", err.Error()), slog.String("party_slug", partySlug))
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partySlug, err)
	}
	return party, nil
}

// ListParties retrieves parties for the business, optionally filtered by role.
func (s *partyService) ListParties(ctx context.Context, sess domain.SessionContext, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	roles := make([]domain.PartyRole, len(params.Roles))
	for i, r := range params.Roles {
		roles[i] = domain.PartyRole(r)
	}

	parties, err := s.partyRepo.ListParties(ctx, sess.BusinessSlug, roles, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	resp := dto.ToListPartiesResponse(parties)
	return &resp, nil
}

// UpdateParty updates party details.
func (s *partyService) UpdateParty(ctx context.Context, sess domain.SessionContext, partySlug string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, partySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", partySlug, err)
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Description != nil {
		party.Description = *req.Description
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = sess.UserSlug

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()), slog.String("party_slug", partySlug))
		return nil, fmt.Errorf("failed to update party %s: %w", partySlug, err)
	}
	return party, nil
}

// DeleteParty soft-deletes a party.
func (s *partyService) DeleteParty(ctx context.Context, sess domain.SessionContext, partySlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, partySlug); err != nil {
		return fmt.Errorf("failed to find party %s: %w", partySlug, err)
	}
	if err := s.partyRepo.MarkPartyDeleted(ctx, sess.BusinessSlug, partySlug, sess.UserSlug); err != nil {
		logger.Error("Failed to delete party", slog.String("error", err.Error()), slog.String("party_slug", partySlug))
		return fmt.Errorf("failed to delete party %s: %w", partySlug, err)
	}
	logger.Info("Party deleted", slog.String("party_slug", partySlug))
	return nil
}
