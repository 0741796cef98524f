package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// DiscountOrTaxRequest carries an adjustment amount and how to interpret it.
// Mode 0 is a flat amount, mode 1 is a percentage of the base.
type DiscountOrTaxRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   int             `json:"mode" binding:"oneof=0 1"`
}

// ToDomain converts the request to a domain.DiscountOrTax, rejecting negative amounts.
func (r DiscountOrTaxRequest) ToDomain() (domain.DiscountOrTax, error) {
	if r.Amount.IsNegative() {
		return domain.DiscountOrTax{}, fmt.Errorf("%w: adjustment amount must not be negative", apperrors.ErrInvalidAmount)
	}
	return domain.DiscountOrTax{Amount: r.Amount, Mode: domain.DiscountMode(r.Mode)}, nil
}

// LineItemRequest defines a single product line within a transaction.
type LineItemRequest struct {
	ProductSlug string               `json:"productSlug" binding:"required"`
	Quantity    decimal.Decimal      `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal      `json:"unitPrice"`
	Discount    DiscountOrTaxRequest `json:"discount"`
	Tax         DiscountOrTaxRequest `json:"tax"`
	Description string               `json:"description"`
}

// ToDomain converts the request to a domain.LineItem. Quantity and unit
// price may be zero or negative (returns and adjustments carry their sign
// explicitly); only discount and tax amounts are gated.
func (r LineItemRequest) ToDomain() (domain.LineItem, error) {
	discount, err := r.Discount.ToDomain()
	if err != nil {
		return domain.LineItem{}, err
	}
	tax, err := r.Tax.ToDomain()
	if err != nil {
		return domain.LineItem{}, err
	}
	return domain.LineItem{
		ProductSlug: r.ProductSlug,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Discount:    discount,
		Tax:         tax,
		Description: r.Description,
	}, nil
}

// CreateTransactionRequest defines the data needed to record a transaction.
// Which optional fields are required depends on the transaction type.
type CreateTransactionRequest struct {
	Type              int                  `json:"type" binding:"required"`
	PartySlug         *string              `json:"partySlug"`
	PaymentMethodFrom *string              `json:"paymentMethodFrom"`
	PaymentMethodTo   *string              `json:"paymentMethodTo"`
	WarehouseFrom     *string              `json:"warehouseFrom"`
	WarehouseTo       *string              `json:"warehouseTo"`
	Discount          DiscountOrTaxRequest `json:"discount"`
	Tax               DiscountOrTaxRequest `json:"tax"`
	AdditionalCharges decimal.Decimal      `json:"additionalCharges"`
	TotalPaid         decimal.Decimal      `json:"totalPaid"`
	Timestamp         *time.Time           `json:"timestamp"`
	Description       string               `json:"description"`
	LineItems         []LineItemRequest    `json:"lineItems"`
}

// ToDomain converts the request to a domain.Transaction. TotalBill is left for
// the service to compute from the line items.
func (r CreateTransactionRequest) ToDomain() (domain.Transaction, error) {
	if r.AdditionalCharges.IsNegative() || r.TotalPaid.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("%w: charges and paid amount must not be negative", apperrors.ErrInvalidAmount)
	}
	discount, err := r.Discount.ToDomain()
	if err != nil {
		return domain.Transaction{}, err
	}
	tax, err := r.Tax.ToDomain()
	if err != nil {
		return domain.Transaction{}, err
	}
	items := make([]domain.LineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		item, err := li.ToDomain()
		if err != nil {
			return domain.Transaction{}, err
		}
		items[i] = item
	}
	txn := domain.Transaction{
		Type:              domain.TransactionType(r.Type),
		PartySlug:         r.PartySlug,
		PaymentMethodFrom: r.PaymentMethodFrom,
		PaymentMethodTo:   r.PaymentMethodTo,
		WarehouseFrom:     r.WarehouseFrom,
		WarehouseTo:       r.WarehouseTo,
		Discount:          discount,
		Tax:               tax,
		AdditionalCharges: r.AdditionalCharges,
		TotalPaid:         r.TotalPaid,
		Description:       r.Description,
		LineItems:         items,
	}
	if r.Timestamp != nil {
		txn.Timestamp = *r.Timestamp
	}
	return txn, nil
}

// LineItemResponse defines the data returned for a transaction line item.
type LineItemResponse struct {
	DetailSlug   string          `json:"detailSlug"`
	ProductSlug  string          `json:"productSlug"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountMode int             `json:"discountMode"`
	Tax          decimal.Decimal `json:"tax"`
	TaxMode      int             `json:"taxMode"`
	Total        decimal.Decimal `json:"total"`
	Description  string          `json:"description"`
}

// TransactionResponse defines the data returned for a transaction, including
// the derived monetary figures.
type TransactionResponse struct {
	TransactionSlug   string             `json:"transactionSlug"`
	ParentSlug        *string            `json:"parentSlug,omitempty"`
	Type              int                `json:"type"`
	TypeName          string             `json:"typeName"`
	PartySlug         *string            `json:"partySlug,omitempty"`
	PaymentMethodFrom *string            `json:"paymentMethodFrom,omitempty"`
	PaymentMethodTo   *string            `json:"paymentMethodTo,omitempty"`
	WarehouseFrom     *string            `json:"warehouseFrom,omitempty"`
	WarehouseTo       *string            `json:"warehouseTo,omitempty"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	GrandTotal        decimal.Decimal    `json:"grandTotal"`
	TotalBill         decimal.Decimal    `json:"totalBill"`
	TotalPaid         decimal.Decimal    `json:"totalPaid"`
	Payable           decimal.Decimal    `json:"payable"`
	Timestamp         time.Time          `json:"timestamp"`
	Description       string             `json:"description"`
	State             int                `json:"state"`
	LineItems         []LineItemResponse `json:"lineItems,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO.
func ToLineItemResponse(li *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		DetailSlug:   li.DetailSlug,
		ProductSlug:  li.ProductSlug,
		Quantity:     li.Quantity,
		UnitPrice:    li.UnitPrice,
		Discount:     li.Discount.Amount,
		DiscountMode: int(li.Discount.Mode),
		Tax:          li.Tax.Amount,
		TaxMode:      int(li.Tax.Mode),
		Total:        li.Total(),
		Description:  li.Description,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]LineItemResponse, len(txn.LineItems))
	for i := range txn.LineItems {
		items[i] = ToLineItemResponse(&txn.LineItems[i])
	}
	return TransactionResponse{
		TransactionSlug:   txn.TransactionSlug,
		ParentSlug:        txn.ParentSlug,
		Type:              int(txn.Type),
		TypeName:          txn.Type.String(),
		PartySlug:         txn.PartySlug,
		PaymentMethodFrom: txn.PaymentMethodFrom,
		PaymentMethodTo:   txn.PaymentMethodTo,
		WarehouseFrom:     txn.WarehouseFrom,
		WarehouseTo:       txn.WarehouseTo,
		Subtotal:          txn.Subtotal(),
		GrandTotal:        txn.GrandTotal(),
		TotalBill:         txn.TotalBill,
		TotalPaid:         txn.TotalPaid,
		Payable:           txn.Payable(),
		Timestamp:         txn.Timestamp,
		Description:       txn.Description,
		State:             int(txn.State),
		LineItems:         items,
		CreatedAt:         txn.CreatedAt,
		CreatedBy:         txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Types     []int   `form:"types"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// BalanceHistoryEntryResponse is one row of a party ledger.
type BalanceHistoryEntryResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	Effect         decimal.Decimal     `json:"effect"`
	RunningBalance decimal.Decimal     `json:"runningBalance"`
}

// BalanceHistoryResponse is a party's ledger with running balances.
type BalanceHistoryResponse struct {
	PartySlug      string                        `json:"partySlug"`
	OpeningBalance decimal.Decimal               `json:"openingBalance"`
	ClosingBalance decimal.Decimal               `json:"closingBalance"`
	Entries        []BalanceHistoryEntryResponse `json:"entries"`
	NextToken      *string                       `json:"nextToken,omitempty"`
}
