package domain

import "github.com/shopspring/decimal"

// PaymentMethod is a cash/bank account of the business. Balance tracks the
// cash held in the method and is adjusted by every cash-moving transaction.
type PaymentMethod struct {
	PaymentMethodSlug string          `json:"paymentMethodSlug"`
	BusinessSlug      string          `json:"businessSlug"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Balance           decimal.Decimal `json:"balance"`
	Status            Status          `json:"statusId"`
	AuditFields
}
