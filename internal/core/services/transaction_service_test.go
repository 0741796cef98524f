package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/core/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/utils/pagination"
)

var testSession = domain.SessionContext{BusinessSlug: "BU-1", UserSlug: "US-1"}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func newTransactionServiceWithMocks() (*MockTransactionRepository, *MockPartyRepository, *MockPaymentMethodRepository, *MockProductRepository, portssvc.TransactionSvcFacade) {
	txnRepo := new(MockTransactionRepository)
	partyRepo := new(MockPartyRepository)
	pmRepo := new(MockPaymentMethodRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewTransactionService(txnRepo, partyRepo, pmRepo, productRepo)
	return txnRepo, partyRepo, pmRepo, productRepo, svc
}

func TestCreateTransaction_ValidationGates(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateTransactionRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     dto.CreateTransactionRequest{Type: 999},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "sale without party",
			req:     dto.CreateTransactionRequest{Type: int(domain.Sale)},
			wantErr: apperrors.ErrMissingParty,
		},
		{
			name: "sale without line items",
			req: dto.CreateTransactionRequest{
				Type:      int(domain.Sale),
				PartySlug: strPtr("PA-1"),
			},
			wantErr: apperrors.ErrEmptyLineItems,
		},
		{
			name: "sale without payment method",
			req: dto.CreateTransactionRequest{
				Type:      int(domain.Sale),
				PartySlug: strPtr("PA-1"),
				LineItems: []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: decimal.NewFromInt(1)}},
			},
			wantErr: apperrors.ErrMissingPaymentMethod,
		},
		{
			name: "stock transfer without warehouses",
			req: dto.CreateTransactionRequest{
				Type:      int(domain.StockTransfer),
				LineItems: []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: decimal.NewFromInt(1)}},
			},
			wantErr: apperrors.ErrMissingWarehouse,
		},
		{
			name: "stock transfer needs both warehouses",
			req: dto.CreateTransactionRequest{
				Type:          int(domain.StockTransfer),
				WarehouseFrom: strPtr("WH-1"),
				LineItems:     []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: decimal.NewFromInt(1)}},
			},
			wantErr: apperrors.ErrMissingWarehouse,
		},
		{
			name: "stock transfer between the same warehouse",
			req: dto.CreateTransactionRequest{
				Type:          int(domain.StockTransfer),
				WarehouseFrom: strPtr("WH-1"),
				WarehouseTo:   strPtr("WH-1"),
				LineItems:     []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: decimal.NewFromInt(1)}},
			},
			wantErr: apperrors.ErrDuplicateWarehouse,
		},
		{
			name: "payment transfer between the same account",
			req: dto.CreateTransactionRequest{
				Type:              int(domain.PaymentTransfer),
				PaymentMethodFrom: strPtr("PM-1"),
				PaymentMethodTo:   strPtr("PM-1"),
				TotalPaid:         decimal.NewFromInt(100),
			},
			wantErr: apperrors.ErrSameAccountTransfer,
		},
		{
			name: "negative paid amount",
			req: dto.CreateTransactionRequest{
				Type:      int(domain.Sale),
				TotalPaid: decimal.NewFromInt(-10),
			},
			wantErr: apperrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txnRepo, _, _, _, svc := newTransactionServiceWithMocks()

			_, err := svc.CreateTransaction(context.Background(), testSession, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTransaction_CreditSale(t *testing.T) {
	txnRepo, partyRepo, pmRepo, productRepo, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", Role: domain.RoleCustomer}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-1").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-1"}, nil)

	var saved domain.Transaction
	txnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Transaction) }).
		Return(nil)

	// Sales pull stock out, one adjustment per line.
	productRepo.On("AdjustProductQuantity", mock.Anything, "BU-1", "PR-1", mock.Anything).Return(nil)
	productRepo.On("AdjustProductQuantity", mock.Anything, "BU-1", "PR-2", mock.Anything).Return(nil)

	req := dto.CreateTransactionRequest{
		Type:            int(domain.Sale),
		PartySlug:       strPtr("PA-1"),
		PaymentMethodTo: strPtr("PM-1"),
		TotalPaid:       decimal.NewFromInt(400),
		LineItems: []dto.LineItemRequest{
			{ProductSlug: "PR-1", Quantity: d("3"), UnitPrice: d("200")},
			{ProductSlug: "PR-2", Quantity: d("4"), UnitPrice: d("100")},
		},
	}

	created, err := svc.CreateTransaction(context.Background(), testSession, req)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.TransactionSlug)
	assert.Equal(t, "BU-1", created.BusinessSlug)
	assert.Equal(t, domain.StateCompleted, created.State)
	assert.Equal(t, "US-1", created.CreatedBy)
	assert.False(t, created.Timestamp.IsZero())

	// The stored bill is the derived grand total, 600 + 400 = 1000.
	assert.True(t, d("1000").Equal(saved.TotalBill), "got %s", saved.TotalBill)
	for _, li := range saved.LineItems {
		assert.NotEmpty(t, li.DetailSlug)
		assert.Equal(t, saved.TransactionSlug, li.TransactionSlug)
	}

	// Credit sale of 1000 with 400 paid leaves a 600 receivable.
	partyChange := txnRepo.Calls[0].Arguments.Get(2).(decimal.Decimal)
	assert.True(t, d("-600").Equal(partyChange), "got %s", partyChange)

	cash := txnRepo.Calls[0].Arguments.Get(3).(map[string]decimal.Decimal)
	require.Len(t, cash, 1)
	assert.True(t, d("400").Equal(cash["PM-1"]))

	// Both lines reduce stock by their quantities.
	deltas := map[string]decimal.Decimal{}
	for _, call := range productRepo.Calls {
		deltas[call.Arguments.String(2)] = call.Arguments.Get(3).(decimal.Decimal)
	}
	assert.True(t, d("-3").Equal(deltas["PR-1"]))
	assert.True(t, d("-4").Equal(deltas["PR-2"]))
}

func TestCreateTransaction_NegativeQuantityLine(t *testing.T) {
	txnRepo, partyRepo, pmRepo, productRepo, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", Role: domain.RoleCustomer}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-1").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-1"}, nil)

	var saved domain.Transaction
	txnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Transaction) }).
		Return(nil)
	productRepo.On("AdjustProductQuantity", mock.Anything, "BU-1", mock.Anything, mock.Anything).Return(nil)

	// A sale with an exchanged item brought back on a negative-quantity line.
	req := dto.CreateTransactionRequest{
		Type:            int(domain.Sale),
		PartySlug:       strPtr("PA-1"),
		PaymentMethodTo: strPtr("PM-1"),
		TotalPaid:       decimal.NewFromInt(100),
		LineItems: []dto.LineItemRequest{
			{ProductSlug: "PR-1", Quantity: d("2"), UnitPrice: d("100")},
			{ProductSlug: "PR-2", Quantity: d("-1"), UnitPrice: d("100")},
		},
	}

	_, err := svc.CreateTransaction(context.Background(), testSession, req)
	require.NoError(t, err)
	assert.True(t, d("100").Equal(saved.TotalBill), "got %s", saved.TotalBill)

	// The returned line adds its quantity back to stock.
	deltas := map[string]decimal.Decimal{}
	for _, call := range productRepo.Calls {
		deltas[call.Arguments.String(2)] = call.Arguments.Get(3).(decimal.Decimal)
	}
	assert.True(t, d("-2").Equal(deltas["PR-1"]))
	assert.True(t, d("1").Equal(deltas["PR-2"]))
}

func TestCreateTransaction_FullyPaidExpense(t *testing.T) {
	txnRepo, partyRepo, pmRepo, productRepo, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-9").
		Return(&domain.Party{PartySlug: "PA-9", Role: domain.RoleExpense}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-1").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-1"}, nil)
	txnRepo.On("SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := dto.CreateTransactionRequest{
		Type:              int(domain.Expense),
		PartySlug:         strPtr("PA-9"),
		PaymentMethodFrom: strPtr("PM-1"),
		TotalPaid:         decimal.NewFromInt(300),
	}

	_, err := svc.CreateTransaction(context.Background(), testSession, req)
	require.NoError(t, err)

	// Expenses never touch the party balance, only the cash account.
	partyChange := txnRepo.Calls[0].Arguments.Get(2).(decimal.Decimal)
	assert.True(t, partyChange.IsZero())

	cash := txnRepo.Calls[0].Arguments.Get(3).(map[string]decimal.Decimal)
	assert.True(t, d("-300").Equal(cash["PM-1"]))

	productRepo.AssertNotCalled(t, "AdjustProductQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_SaleOrderStartsPending(t *testing.T) {
	txnRepo, partyRepo, _, productRepo, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1"}, nil)
	txnRepo.On("SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := dto.CreateTransactionRequest{
		Type:      int(domain.SaleOrder),
		PartySlug: strPtr("PA-1"),
		LineItems: []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: d("2"), UnitPrice: d("50")}},
	}

	created, err := svc.CreateTransaction(context.Background(), testSession, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePending, created.State)

	// Orders reserve nothing until fulfilled.
	productRepo.AssertNotCalled(t, "AdjustProductQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_UnknownPartyRejected(t *testing.T) {
	txnRepo, partyRepo, _, _, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-404").
		Return(nil, apperrors.ErrNotFound)

	req := dto.CreateTransactionRequest{
		Type:            int(domain.Sale),
		PartySlug:       strPtr("PA-404"),
		PaymentMethodTo: strPtr("PM-1"),
		LineItems:       []dto.LineItemRequest{{ProductSlug: "PR-1", Quantity: d("1"), UnitPrice: d("10")}},
	}

	_, err := svc.CreateTransaction(context.Background(), testSession, req)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListTransactions_RejectsUnknownTypeFilter(t *testing.T) {
	_, _, _, _, svc := newTransactionServiceWithMocks()

	_, err := svc.ListTransactions(context.Background(), testSession, dto.ListTransactionsParams{
		Types: []int{int(domain.Sale), 999},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteTransaction_ReversesEffects(t *testing.T) {
	txnRepo, _, _, _, svc := newTransactionServiceWithMocks()

	txnRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", "TR-1").
		Return(&domain.Transaction{
			TransactionSlug: "TR-1",
			Type:            domain.Sale,
			PartySlug:       strPtr("PA-1"),
			PaymentMethodTo: strPtr("PM-1"),
			TotalBill:       d("1000"),
			TotalPaid:       d("400"),
		}, nil)
	txnRepo.On("FindChildTransactions", mock.Anything, "BU-1", "TR-1").
		Return([]domain.Transaction{}, nil)
	txnRepo.On("MarkTransactionDeleted", mock.Anything, "BU-1", "TR-1", mock.Anything, mock.Anything, "US-1").
		Return(nil)

	err := svc.DeleteTransaction(context.Background(), testSession, "TR-1")
	require.NoError(t, err)

	var partyChanges, cash map[string]decimal.Decimal
	for _, call := range txnRepo.Calls {
		if call.Method == "MarkTransactionDeleted" {
			partyChanges = call.Arguments.Get(3).(map[string]decimal.Decimal)
			cash = call.Arguments.Get(4).(map[string]decimal.Decimal)
		}
	}

	// The sale put -600 on the party and +400 in the till; deleting undoes both.
	require.NotNil(t, partyChanges)
	assert.True(t, d("600").Equal(partyChanges["PA-1"]), "got %s", partyChanges["PA-1"])
	assert.True(t, d("-400").Equal(cash["PM-1"]), "got %s", cash["PM-1"])
}

func TestDeleteTransaction_VoucherIncludesChildren(t *testing.T) {
	txnRepo, _, _, _, svc := newTransactionServiceWithMocks()

	txnRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", "TR-P").
		Return(&domain.Transaction{
			TransactionSlug: "TR-P",
			Type:            domain.JournalVoucher,
			TotalBill:       d("500"),
			TotalPaid:       d("500"),
		}, nil)
	txnRepo.On("FindChildTransactions", mock.Anything, "BU-1", "TR-P").
		Return([]domain.Transaction{
			{
				TransactionSlug: "TR-C1",
				Type:            domain.PayToVendor,
				PartySlug:       strPtr("PA-1"),
				TotalPaid:       d("500"),
			},
			{
				TransactionSlug:   "TR-C2",
				Type:              domain.PaymentTransfer,
				PaymentMethodFrom: strPtr("PM-1"),
				PaymentMethodTo:   strPtr("PM-2"),
				TotalPaid:         d("500"),
			},
		}, nil)
	txnRepo.On("MarkTransactionDeleted", mock.Anything, "BU-1", "TR-P", mock.Anything, mock.Anything, "US-1").
		Return(nil)

	err := svc.DeleteTransaction(context.Background(), testSession, "TR-P")
	require.NoError(t, err)

	var partyChanges, cash map[string]decimal.Decimal
	for _, call := range txnRepo.Calls {
		if call.Method == "MarkTransactionDeleted" {
			partyChanges = call.Arguments.Get(3).(map[string]decimal.Decimal)
			cash = call.Arguments.Get(4).(map[string]decimal.Decimal)
		}
	}

	// Paying the vendor 500 dropped the payable by 500; reversal restores it.
	assert.True(t, d("500").Equal(partyChanges["PA-1"]), "got %s", partyChanges["PA-1"])
	// The transfer leg moved 500 from PM-1 to PM-2; reversal moves it back.
	assert.True(t, d("500").Equal(cash["PM-1"]), "got %s", cash["PM-1"])
	assert.True(t, d("-500").Equal(cash["PM-2"]), "got %s", cash["PM-2"])
}

func TestDeleteTransaction_ChildRefused(t *testing.T) {
	txnRepo, _, _, _, svc := newTransactionServiceWithMocks()

	txnRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", "TR-C1").
		Return(&domain.Transaction{
			TransactionSlug: "TR-C1",
			ParentSlug:      strPtr("TR-P"),
			Type:            domain.PayToVendor,
		}, nil)

	err := svc.DeleteTransaction(context.Background(), testSession, "TR-C1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "MarkTransactionDeleted",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPartyBalanceHistory_FirstPage(t *testing.T) {
	txnRepo, partyRepo, _, _, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", OpeningBalance: d("100"), Role: domain.RoleVendor}, nil)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	innerNext := pagination.EncodeToken(ts, "TR-2")
	txnRepo.On("ListTransactionsByParty", mock.Anything, "BU-1", "PA-1", 20, (*string)(nil)).
		Return([]domain.Transaction{
			{TransactionSlug: "TR-1", Type: domain.Purchase, TotalBill: d("1000"), TotalPaid: d("400"), Timestamp: ts.Add(-time.Hour)},
			{TransactionSlug: "TR-2", Type: domain.PayToVendor, TotalPaid: d("500"), Timestamp: ts},
		}, innerNext, nil)

	resp, err := svc.GetPartyBalanceHistory(context.Background(), testSession, "PA-1", dto.ListTransactionsParams{})
	require.NoError(t, err)

	assert.True(t, d("100").Equal(resp.OpeningBalance))
	require.Len(t, resp.Entries, 2)
	assert.True(t, d("700").Equal(resp.Entries[0].RunningBalance))
	assert.True(t, d("200").Equal(resp.Entries[1].RunningBalance))
	assert.True(t, d("200").Equal(resp.ClosingBalance))

	// The outgoing cursor carries the closing balance as a third field so the
	// next page resumes without replaying this one.
	require.NotNil(t, resp.NextToken)
	fields, err := pagination.DecodeMultiFieldToken(*resp.NextToken)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "TR-2", fields[1])
	assert.Equal(t, "200", fields[2])
}

func TestGetPartyBalanceHistory_ResumesFromCursor(t *testing.T) {
	txnRepo, partyRepo, _, _, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", OpeningBalance: d("100")}, nil)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tsStr := ts.Format(time.RFC3339Nano)
	token := pagination.EncodeMultiFieldToken(tsStr, "TR-2", "200")
	expectedInner := pagination.EncodeMultiFieldToken(tsStr, "TR-2")

	txnRepo.On("ListTransactionsByParty", mock.Anything, "BU-1", "PA-1", 20, &expectedInner).
		Return([]domain.Transaction{
			{TransactionSlug: "TR-3", Type: domain.VendorReturn, TotalBill: d("200"), Timestamp: ts.Add(time.Hour)},
		}, nil, nil)

	resp, err := svc.GetPartyBalanceHistory(context.Background(), testSession, "PA-1", dto.ListTransactionsParams{NextToken: &token})
	require.NoError(t, err)

	// The carried balance replaces the party's stored opening balance.
	assert.True(t, d("200").Equal(resp.OpeningBalance))
	require.Len(t, resp.Entries, 1)
	assert.True(t, resp.Entries[0].RunningBalance.IsZero())
	assert.True(t, resp.ClosingBalance.IsZero())
	assert.Nil(t, resp.NextToken)
}

func TestGetPartyBalanceHistory_BadCursor(t *testing.T) {
	_, partyRepo, _, _, svc := newTransactionServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1"}, nil)

	// A plain two-field listing cursor is not a ledger cursor.
	token := pagination.EncodeMultiFieldToken("2025-03-01T10:00:00Z", "TR-2")
	_, err := svc.GetPartyBalanceHistory(context.Background(), testSession, "PA-1", dto.ListTransactionsParams{NextToken: &token})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
