package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// PaymentMethodSvcFacade defines operations for payment method data
type PaymentMethodSvcFacade interface {
	// GetPaymentMethod retrieves a specific payment method by slug.
	GetPaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all active payment methods for the business.
	ListPaymentMethods(ctx context.Context, sess domain.SessionContext) (*dto.ListPaymentMethodsResponse, error)

	// CreatePaymentMethod persists a new payment method.
	CreatePaymentMethod(ctx context.Context, sess domain.SessionContext, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)

	// UpdatePaymentMethod updates payment method details.
	UpdatePaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error)

	// DeletePaymentMethod soft-deletes a payment method.
	DeletePaymentMethod(ctx context.Context, sess domain.SessionContext, paymentMethodSlug string) error
}
