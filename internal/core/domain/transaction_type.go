package domain

// TransactionType identifies the business meaning of a transaction.
// The numeric values are persisted; do not change existing values,
// only add new types with new unique values.
type TransactionType int

const (
	Sale               TransactionType = 1
	SaleOrder          TransactionType = 2
	Purchase           TransactionType = 3
	PayToVendor        TransactionType = 4
	GetFromVendor      TransactionType = 5
	PayToCustomer      TransactionType = 6
	GetFromCustomer    TransactionType = 7
	Expense            TransactionType = 8
	ExtraIncome        TransactionType = 9
	PaymentTransfer    TransactionType = 10
	InvestmentDeposit  TransactionType = 11
	InvestmentWithdraw TransactionType = 12
	StockTransfer      TransactionType = 13
	StockIncrease      TransactionType = 14
	StockReduce        TransactionType = 15
	Manufacture        TransactionType = 16
	CustomerReturn     TransactionType = 17
	VendorReturn       TransactionType = 18
	JournalVoucher     TransactionType = 19
	Quotation          TransactionType = 20
	PurchaseOrder      TransactionType = 26
	StockAdjustment    TransactionType = 27
)

// TypeTraits describes how a transaction type behaves: how it affects a
// party balance and which references it requires before save. All
// components (validation gates, balance projector, repositories) share this
// single table instead of branching on magic numbers.
type TypeTraits struct {
	// BalanceEffectSign is multiplied with (TotalBill - TotalPaid) to get
	// the party balance effect. Positive balance = payable (business owes
	// the party). Zero means the type does not touch party balances.
	BalanceEffectSign int
	RequiresParty     bool
	RequiresProducts  bool
	RequiresPayment   bool
	RequiresWarehouse bool
	// MovesCash controls whether TotalPaid is applied to payment-method
	// balances. Parent journal vouchers carry totals but never move cash
	// themselves; their child transactions do.
	MovesCash    bool
	AffectsStock bool
	DisplayName  string
}

var typeTraits = map[TransactionType]TypeTraits{
	Sale:               {BalanceEffectSign: -1, RequiresParty: true, RequiresProducts: true, RequiresPayment: true, MovesCash: true, AffectsStock: true, DisplayName: "Sale"},
	SaleOrder:          {RequiresParty: true, RequiresProducts: true, DisplayName: "Sale Order"},
	Purchase:           {BalanceEffectSign: 1, RequiresParty: true, RequiresProducts: true, RequiresPayment: true, MovesCash: true, AffectsStock: true, DisplayName: "Purchase"},
	PayToVendor:        {BalanceEffectSign: 1, RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Pay Payment to Vendor"},
	GetFromVendor:      {BalanceEffectSign: -1, RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Get Payment from Vendor"},
	PayToCustomer:      {BalanceEffectSign: 1, RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Pay Payment to Customer"},
	GetFromCustomer:    {BalanceEffectSign: -1, RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Get Payment from Customer"},
	Expense:            {RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Expense"},
	ExtraIncome:        {RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Extra Income"},
	PaymentTransfer:    {RequiresPayment: true, MovesCash: true, DisplayName: "Payment Transfer"},
	InvestmentDeposit:  {RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Investment Deposit"},
	InvestmentWithdraw: {RequiresParty: true, RequiresPayment: true, MovesCash: true, DisplayName: "Investment Withdraw"},
	StockTransfer:      {RequiresProducts: true, RequiresWarehouse: true, AffectsStock: true, DisplayName: "Stock Transfer"},
	StockIncrease:      {RequiresProducts: true, RequiresWarehouse: true, AffectsStock: true, DisplayName: "Stock Increase"},
	StockReduce:        {RequiresProducts: true, RequiresWarehouse: true, AffectsStock: true, DisplayName: "Stock Reduce"},
	Manufacture:        {RequiresProducts: true, AffectsStock: true, DisplayName: "Manufacture"},
	CustomerReturn:     {BalanceEffectSign: 1, RequiresParty: true, RequiresProducts: true, RequiresPayment: true, MovesCash: true, AffectsStock: true, DisplayName: "Customer Return"},
	VendorReturn:       {BalanceEffectSign: -1, RequiresParty: true, RequiresProducts: true, RequiresPayment: true, MovesCash: true, AffectsStock: true, DisplayName: "Vendor Return"},
	JournalVoucher:     {DisplayName: "Journal Voucher"},
	Quotation:          {RequiresParty: true, RequiresProducts: true, DisplayName: "Quotation"},
	PurchaseOrder:      {RequiresParty: true, RequiresProducts: true, DisplayName: "Purchase Order"},
	StockAdjustment:    {RequiresProducts: true, RequiresWarehouse: true, AffectsStock: true, DisplayName: "Stock Adjustment"},
}

// Traits returns the behavior table entry for the type. Unknown types get
// the zero TypeTraits: no balance effect, no requirements.
func (t TransactionType) Traits() TypeTraits {
	return typeTraits[t]
}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	_, ok := typeTraits[t]
	return ok
}

func (t TransactionType) String() string {
	if tr, ok := typeTraits[t]; ok {
		return tr.DisplayName
	}
	return "Unknown"
}

// DealsWithVendor reports whether the type involves a vendor party.
func (t TransactionType) DealsWithVendor() bool {
	switch t {
	case Purchase, PurchaseOrder, VendorReturn, PayToVendor, GetFromVendor:
		return true
	}
	return false
}

// DealsWithCustomer reports whether the type involves a customer party.
func (t TransactionType) DealsWithCustomer() bool {
	switch t {
	case Sale, SaleOrder, CustomerReturn, Quotation, PayToCustomer, GetFromCustomer:
		return true
	}
	return false
}

// IsReturn reports whether the type returns products.
func (t TransactionType) IsReturn() bool {
	return t == CustomerReturn || t == VendorReturn
}
