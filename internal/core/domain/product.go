package domain

import "github.com/shopspring/decimal"

// Product is a sellable/purchasable item with the three price points the
// line-item calculator can start from.
type Product struct {
	ProductSlug    string          `json:"productSlug"`
	BusinessSlug   string          `json:"businessSlug"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CategorySlug   *string         `json:"categorySlug,omitempty"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	Quantity       decimal.Decimal `json:"quantity"`
	Status         Status          `json:"statusId"`
	AuditFields
}
