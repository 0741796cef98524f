package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// CreatePaymentMethodRequest defines the data needed to create a payment method.
type CreatePaymentMethodRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdatePaymentMethodRequest defines the data allowed for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	PaymentMethodSlug string          `json:"paymentMethodSlug"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to PaymentMethodResponse DTO.
func ToPaymentMethodResponse(pm *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodSlug: pm.PaymentMethodSlug,
		Title:             pm.Title,
		Description:       pm.Description,
		Balance:           pm.Balance,
		CreatedAt:         pm.CreatedAt,
		CreatedBy:         pm.CreatedBy,
	}
}

// ListPaymentMethodsResponse wraps the list of payment methods.
type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

// ToListPaymentMethodsResponse converts domain payment methods to the list DTO.
func ToListPaymentMethodsResponse(pms []domain.PaymentMethod) ListPaymentMethodsResponse {
	res := make([]PaymentMethodResponse, len(pms))
	for i := range pms {
		res[i] = ToPaymentMethodResponse(&pms[i])
	}
	return ListPaymentMethodsResponse{PaymentMethods: res}
}
