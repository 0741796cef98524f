package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentMethodReader defines read operations for payment method data
type PaymentMethodReader interface {
	// FindPaymentMethodBySlug retrieves a specific payment method by its slug.
	FindPaymentMethodBySlug(ctx context.Context, businessSlug, paymentMethodSlug string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all active payment methods for a business.
	ListPaymentMethods(ctx context.Context, businessSlug string) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment method data
type PaymentMethodWriter interface {
	// SavePaymentMethod persists a new payment method.
	SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error

	// UpdatePaymentMethod updates payment method details.
	UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error

	// AdjustPaymentMethodBalance applies a delta to the payment method's balance.
	AdjustPaymentMethodBalance(ctx context.Context, businessSlug, paymentMethodSlug string, delta decimal.Decimal) error

	// MarkPaymentMethodDeleted soft-deletes a payment method.
	MarkPaymentMethodDeleted(ctx context.Context, businessSlug, paymentMethodSlug, updatedBy string) error
}

// PaymentMethodRepositoryFacade combines all payment-method-related repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
