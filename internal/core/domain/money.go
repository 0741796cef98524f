package domain

import (
	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/utils/accounting"
)

// DiscountMode selects how a DiscountOrTax amount is interpreted.
type DiscountMode int

const (
	// Flat means the amount is an absolute monetary value.
	Flat DiscountMode = 0
	// Percent means the amount is a percentage of some base.
	Percent DiscountMode = 1
)

func (m DiscountMode) String() string {
	if m == Percent {
		return "PERCENT"
	}
	return "FLAT"
}

// DiscountOrTax is a tagged monetary adjustment applied at line-item or
// transaction level. With Mode == Percent the effective value is
// base * Amount / 100; with Flat the Amount is used directly.
type DiscountOrTax struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   DiscountMode    `json:"mode"`
}

// EffectiveAmount resolves the adjustment against the given base.
// The result is NOT rounded; rounding happens only at calculation boundaries.
func (d DiscountOrTax) EffectiveAmount(base decimal.Decimal) decimal.Decimal {
	if d.Mode == Percent {
		return accounting.FlatFromPercent(d.Amount, base)
	}
	return d.Amount
}

// IsZero reports whether the adjustment resolves to zero for any base.
func (d DiscountOrTax) IsZero() bool {
	return d.Amount.IsZero()
}
