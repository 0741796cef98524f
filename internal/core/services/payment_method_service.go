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

// paymentMethodService manages cash/bank accounts used to settle transactions.
type paymentMethodService struct {
	pmRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(pmRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{pmRepo: pmRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

// CreatePaymentMethod persists a new payment method.
func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, sess domain.SessionContext, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	pm := domain.PaymentMethod{
		PaymentMethodSlug: slugs.New(slugs.PaymentMethod),
		BusinessSlug:      sess.BusinessSlug,
		Title:             req.Title,
		Description:       req.Description,
		Balance:           req.OpeningBalance,
		Status:            domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sess.UserSlug,
			LastUpdatedAt: now,
			LastUpdatedBy: sess.UserSlug,
		},
	}

	if err := s.pmRepo.SavePaymentMethod(ctx, pm); err != nil {
		logger.Error("Failed to save payment method", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	logger.Info("Payment method created", slog.String("payment_method_slug", pm.PaymentMethodSlug))
	return &pm, nil
}

// GetPaymentMethod retrieves a specific payment method by slug.
func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string) (*domain.PaymentMethod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pm, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, paymentMethodSlug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payment method", slog.String("error", err.Error()), slog.String("payment_method_slug", paymentMethodSlug))
		}
		return nil, fmt.Errorf("failed to find payment method %s: %w", paymentMethodSlug, err)
	}
	return pm, nil
}

// ListPaymentMethods retrieves all active payment methods for the business.
func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, sess domain.SessionContext) (*dto.ListPaymentMethodsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pms, err := s.pmRepo.ListPaymentMethods(ctx, sess.BusinessSlug)
	if err != nil {
		logger.Error("Failed to list payment methods", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	resp := dto.ToListPaymentMethodsResponse(pms)
	return &resp, nil
}

// UpdatePaymentMethod updates payment method details.
func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pm, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, paymentMethodSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment method %s: %w", paymentMethodSlug, err)
	}

	if req.Title != nil {
		pm.Title = *req.Title
	}
	if req.Description != nil {
		pm.Description = *req.Description
	}
	pm.LastUpdatedAt = time.Now().UTC()
	pm.LastUpdatedBy = sess.UserSlug

	if err := s.pmRepo.UpdatePaymentMethod(ctx, *pm); err != nil {
		logger.Error("Failed to update payment method", slog.String("error", err.Error()), slog.String("payment_method_slug", paymentMethodSlug))
		return nil, fmt.Errorf("failed to update payment method %s: %w", paymentMethodSlug, err)
	}
	return pm, nil
}

// DeletePaymentMethod soft-deletes a payment method.
func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, paymentMethodSlug); err != nil {
		return fmt.Errorf("failed to find payment method %s: %w", paymentMethodSlug, err)
	}
	if err := s.pmRepo.MarkPaymentMethodDeleted(ctx, sess.BusinessSlug, paymentMethodSlug, sess.UserSlug); err != nil {
		logger.Error("Failed to delete payment method", slog.String("error", err.Error()), slog.String("payment_method_slug", paymentMethodSlug))
		return fmt.Errorf("failed to delete payment method %s: %w", paymentMethodSlug, err)
	}
	logger.Info("Payment method deleted", slog.String("payment_method_slug", paymentMethodSlug))
	return nil
}
