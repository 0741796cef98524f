package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineItem_Total(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want string
	}{
		{
			name: "quantity times price, ten percent discount, flat tax",
			item: domain.LineItem{
				Quantity:  d("3"),
				UnitPrice: d("100"),
				Discount:  domain.DiscountOrTax{Amount: d("10"), Mode: domain.Percent},
				Tax:       domain.DiscountOrTax{Amount: d("5"), Mode: domain.Flat},
			},
			want: "275",
		},
		{
			name: "no adjustments",
			item: domain.LineItem{
				Quantity:  d("2"),
				UnitPrice: d("49.99"),
			},
			want: "99.98",
		},
		{
			name: "zero quantity yields zero even with flat adjustments",
			item: domain.LineItem{
				Quantity:  decimal.Zero,
				UnitPrice: d("100"),
				Discount:  domain.DiscountOrTax{Amount: d("20"), Mode: domain.Flat},
				Tax:       domain.DiscountOrTax{Amount: d("7"), Mode: domain.Flat},
			},
			want: "0",
		},
		{
			name: "flat zero and percent zero are equivalent",
			item: domain.LineItem{
				Quantity:  d("4"),
				UnitPrice: d("25"),
				Discount:  domain.DiscountOrTax{Amount: decimal.Zero, Mode: domain.Percent},
				Tax:       domain.DiscountOrTax{Amount: decimal.Zero, Mode: domain.Flat},
			},
			want: "100",
		},
		{
			name: "negative quantity for returns",
			item: domain.LineItem{
				Quantity:  d("-2"),
				UnitPrice: d("50"),
			},
			want: "-100",
		},
		{
			name: "fractional result rounds to two decimals",
			item: domain.LineItem{
				Quantity:  d("3"),
				UnitPrice: d("33.333"),
			},
			want: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, d(tt.want).Equal(tt.item.Total()),
				"got %s, want %s", tt.item.Total(), tt.want)
		})
	}
}

func TestTransaction_GrandTotal(t *testing.T) {
	txn := domain.Transaction{
		LineItems: []domain.LineItem{
			{Quantity: d("2"), UnitPrice: d("100")},
			{Quantity: d("1"), UnitPrice: d("350")},
		},
		AdditionalCharges: d("50"),
	}

	assert.True(t, d("600").Equal(txn.GrandTotal()), "got %s", txn.GrandTotal())

	txn.TotalPaid = d("600")
	assert.True(t, txn.Payable().IsZero(), "fully paid bill should have zero payable")
}

func TestTransaction_GrandTotal_DiscountAndTaxOnSubtotal(t *testing.T) {
	// Both transaction-level adjustments resolve against the subtotal, so the
	// result must not depend on the order they were entered.
	base := domain.Transaction{
		LineItems: []domain.LineItem{
			{Quantity: d("10"), UnitPrice: d("100")},
		},
	}

	withDiscountFirst := base
	withDiscountFirst.Discount = domain.DiscountOrTax{Amount: d("10"), Mode: domain.Percent}
	withDiscountFirst.Tax = domain.DiscountOrTax{Amount: d("5"), Mode: domain.Percent}

	withTaxFirst := base
	withTaxFirst.Tax = domain.DiscountOrTax{Amount: d("5"), Mode: domain.Percent}
	withTaxFirst.Discount = domain.DiscountOrTax{Amount: d("10"), Mode: domain.Percent}

	// 1000 - 100 + 50
	assert.True(t, d("950").Equal(withDiscountFirst.GrandTotal()))
	assert.True(t, withDiscountFirst.GrandTotal().Equal(withTaxFirst.GrandTotal()))
}

func TestTransaction_GrandTotal_EmptyLineItems(t *testing.T) {
	txn := domain.Transaction{AdditionalCharges: d("25")}
	assert.True(t, d("25").Equal(txn.GrandTotal()))
}

func TestTransaction_Payable_Overpayment(t *testing.T) {
	txn := domain.Transaction{
		LineItems: []domain.LineItem{{Quantity: d("1"), UnitPrice: d("100")}},
		TotalPaid: d("150"),
	}
	assert.True(t, d("-50").Equal(txn.Payable()), "overpayment should be negative payable")
}

func TestTransaction_BalanceEffect(t *testing.T) {
	tests := []struct {
		name      string
		txnType   domain.TransactionType
		totalBill string
		totalPaid string
		want      string
	}{
		{
			name:      "credit sale increases receivable (negative payable balance)",
			txnType:   domain.Sale,
			totalBill: "1000",
			totalPaid: "400",
			want:      "-600",
		},
		{
			name:      "credit purchase increases payable",
			txnType:   domain.Purchase,
			totalBill: "1000",
			totalPaid: "400",
			want:      "600",
		},
		{
			name:      "paying a vendor reduces payable",
			txnType:   domain.PayToVendor,
			totalBill: "0",
			totalPaid: "500",
			want:      "-500",
		},
		{
			name:      "collecting from a customer settles receivable",
			txnType:   domain.GetFromCustomer,
			totalBill: "0",
			totalPaid: "500",
			want:      "500",
		},
		{
			name:      "refunding a customer moves the balance opposite to collecting",
			txnType:   domain.PayToCustomer,
			totalBill: "0",
			totalPaid: "500",
			want:      "-500",
		},
		{
			name:      "fully paid sale has no balance effect",
			txnType:   domain.Sale,
			totalBill: "750",
			totalPaid: "750",
			want:      "0",
		},
		{
			name:      "expense does not touch party balance",
			txnType:   domain.Expense,
			totalBill: "0",
			totalPaid: "300",
			want:      "0",
		},
		{
			name:      "stock transfer does not touch party balance",
			txnType:   domain.StockTransfer,
			totalBill: "100",
			totalPaid: "0",
			want:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{
				Type:      tt.txnType,
				TotalBill: d(tt.totalBill),
				TotalPaid: d(tt.totalPaid),
			}
			assert.True(t, d(tt.want).Equal(txn.BalanceEffect()),
				"got %s, want %s", txn.BalanceEffect(), tt.want)
		})
	}
}

func TestTransactionType_Traits(t *testing.T) {
	assert.True(t, domain.Sale.Traits().RequiresParty)
	assert.True(t, domain.Sale.Traits().RequiresProducts)
	assert.True(t, domain.Sale.Traits().AffectsStock)

	assert.False(t, domain.PayToVendor.Traits().RequiresProducts)
	assert.True(t, domain.PayToVendor.Traits().RequiresPayment)

	assert.True(t, domain.StockTransfer.Traits().RequiresWarehouse)
	assert.False(t, domain.StockTransfer.Traits().RequiresParty)

	// Parent vouchers carry totals but never move cash themselves.
	assert.False(t, domain.JournalVoucher.Traits().MovesCash)
	assert.False(t, domain.JournalVoucher.Traits().RequiresPayment)

	assert.False(t, domain.TransactionType(999).IsValid())
	assert.Equal(t, "Unknown", domain.TransactionType(999).String())
}
