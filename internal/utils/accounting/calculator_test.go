package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hisaabi/hisaabi_backend/internal/utils/accounting"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"-1.005", "-1.01"},
		{"100", "100"},
		{"2.999", "3.00"},
	}
	for _, tt := range tests {
		got := accounting.Round2(decimal.RequireFromString(tt.in))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
			"Round2(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestFlatFromPercent(t *testing.T) {
	got := accounting.FlatFromPercent(decimal.RequireFromString("10"), decimal.RequireFromString("300"))
	assert.True(t, decimal.RequireFromString("30").Equal(got))

	got = accounting.FlatFromPercent(decimal.RequireFromString("12.5"), decimal.RequireFromString("80"))
	assert.True(t, decimal.RequireFromString("10").Equal(got))

	// Sub-cent results stay unrounded; callers round at the boundary.
	got = accounting.FlatFromPercent(decimal.RequireFromString("0.05"), decimal.RequireFromString("10"))
	assert.True(t, decimal.RequireFromString("0.005").Equal(got))
}
