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
)

func intPtr(i int) *int { return &i }

func newJournalVoucherServiceWithMocks() (*MockTransactionRepository, *MockPartyRepository, *MockPaymentMethodRepository, portssvc.JournalVoucherSvc) {
	txnRepo := new(MockTransactionRepository)
	partyRepo := new(MockPartyRepository)
	pmRepo := new(MockPaymentMethodRepository)
	svc := services.NewJournalVoucherService(txnRepo, partyRepo, pmRepo)
	return txnRepo, partyRepo, pmRepo, svc
}

func TestCreateJournalVoucher_FanOut(t *testing.T) {
	txnRepo, partyRepo, pmRepo, svc := newJournalVoucherServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", Role: domain.RoleVendor}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-2").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-2"}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-1").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-1"}, nil)

	var savedParent domain.Transaction
	var savedChildren []domain.Transaction
	var partyChanges, cash map[string]decimal.Decimal
	txnRepo.On("SaveTransactionTree", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedParent = args.Get(1).(domain.Transaction)
			savedChildren = args.Get(2).([]domain.Transaction)
			partyChanges = args.Get(3).(map[string]decimal.Decimal)
			cash = args.Get(4).(map[string]decimal.Decimal)
		}).
		Return(nil)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	req := dto.CreateJournalVoucherRequest{
		Timestamp:         &ts,
		Description:       "settle vendor from savings",
		PaymentMethodSlug: strPtr("PM-1"),
		Accounts: []dto.JournalAccountRequest{
			{PartySlug: strPtr("PA-1"), PartyRole: intPtr(int(domain.RoleVendor)), Amount: d("500"), IsDebit: true},
			{PaymentMethodSlug: strPtr("PM-2"), Amount: d("500"), IsDebit: false},
		},
	}

	resp, err := svc.CreateJournalVoucher(context.Background(), testSession, req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Parent carries the voucher totals but moves no cash of its own.
	assert.Equal(t, domain.JournalVoucher, savedParent.Type)
	assert.True(t, d("500").Equal(savedParent.TotalBill))
	assert.True(t, d("500").Equal(savedParent.TotalPaid))
	assert.Equal(t, "PM-1", *savedParent.PaymentMethodTo)
	assert.Equal(t, ts, savedParent.Timestamp)

	require.Len(t, savedChildren, 2)

	// Debiting a vendor becomes a payment to that vendor out of the pivot.
	vendorLeg := savedChildren[0]
	assert.Equal(t, domain.PayToVendor, vendorLeg.Type)
	assert.Equal(t, "PA-1", *vendorLeg.PartySlug)
	assert.Equal(t, "PM-1", *vendorLeg.PaymentMethodFrom)
	assert.True(t, d("500").Equal(vendorLeg.TotalPaid))
	assert.Equal(t, savedParent.TransactionSlug, *vendorLeg.ParentSlug)

	// Crediting a payment method drains it into the pivot.
	transferLeg := savedChildren[1]
	assert.Equal(t, domain.PaymentTransfer, transferLeg.Type)
	assert.Equal(t, "PM-2", *transferLeg.PaymentMethodFrom)
	assert.Equal(t, "PM-1", *transferLeg.PaymentMethodTo)
	assert.True(t, d("500").Equal(transferLeg.TotalPaid))

	// Legs are stamped a millisecond apart so timestamp order is entry order.
	assert.Equal(t, ts.Add(1*time.Millisecond), vendorLeg.Timestamp)
	assert.Equal(t, ts.Add(2*time.Millisecond), transferLeg.Timestamp)

	// Paying the vendor 500 reduces the payable by 500.
	require.Len(t, partyChanges, 1)
	assert.True(t, d("-500").Equal(partyChanges["PA-1"]), "got %s", partyChanges["PA-1"])

	// The vendor leg pays 500 out of the pivot and the transfer leg brings
	// 500 in, so the pivot nets to zero and only the credited method remains.
	require.Len(t, cash, 1)
	assert.True(t, d("-500").Equal(cash["PM-2"]))

	assert.Equal(t, savedParent.TransactionSlug, resp.Parent.TransactionSlug)
	assert.Len(t, resp.Children, 2)
}

func TestJournalVoucher_DeleteReversesCreateExactly(t *testing.T) {
	txnRepo, partyRepo, pmRepo, voucherSvc := newJournalVoucherServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-C").
		Return(&domain.Party{PartySlug: "PA-C", Role: domain.RoleCustomer}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-BANK").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-BANK"}, nil)
	pmRepo.On("FindPaymentMethodBySlug", mock.Anything, "BU-1", "PM-PIVOT").
		Return(&domain.PaymentMethod{PaymentMethodSlug: "PM-PIVOT"}, nil)

	var parent domain.Transaction
	var children []domain.Transaction
	var createCash map[string]decimal.Decimal
	txnRepo.On("SaveTransactionTree", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			parent = args.Get(1).(domain.Transaction)
			children = args.Get(2).([]domain.Transaction)
			createCash = args.Get(4).(map[string]decimal.Decimal)
		}).
		Return(nil)

	_, err := voucherSvc.CreateJournalVoucher(context.Background(), testSession, dto.CreateJournalVoucherRequest{
		PaymentMethodSlug: strPtr("PM-PIVOT"),
		Accounts: []dto.JournalAccountRequest{
			{PartySlug: strPtr("PA-C"), PartyRole: intPtr(int(domain.RoleCustomer)), Amount: d("500"), IsDebit: true},
			{PaymentMethodSlug: strPtr("PM-BANK"), Amount: d("500"), IsDebit: false},
		},
	})
	require.NoError(t, err)

	// The customer leg pays 500 out of the pivot, the bank leg transfers 500
	// into it; the pivot nets to zero and only the bank delta is applied.
	require.Len(t, createCash, 1)
	assert.True(t, d("-500").Equal(createCash["PM-BANK"]), "got %s", createCash["PM-BANK"])

	// Deleting the voucher must reverse exactly what the save applied.
	deleteRepo := new(MockTransactionRepository)
	txnSvc := services.NewTransactionService(deleteRepo, new(MockPartyRepository), new(MockPaymentMethodRepository), new(MockProductRepository))

	deleteRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", parent.TransactionSlug).
		Return(&parent, nil)
	deleteRepo.On("FindChildTransactions", mock.Anything, "BU-1", parent.TransactionSlug).
		Return(children, nil)

	var deleteParty, deleteCash map[string]decimal.Decimal
	deleteRepo.On("MarkTransactionDeleted", mock.Anything, "BU-1", parent.TransactionSlug, mock.Anything, mock.Anything, "US-1").
		Run(func(args mock.Arguments) {
			deleteParty = args.Get(3).(map[string]decimal.Decimal)
			deleteCash = args.Get(4).(map[string]decimal.Decimal)
		}).
		Return(nil)

	require.NoError(t, txnSvc.DeleteTransaction(context.Background(), testSession, parent.TransactionSlug))

	require.Len(t, deleteCash, 1)
	assert.True(t, d("500").Equal(deleteCash["PM-BANK"]), "got %s", deleteCash["PM-BANK"])
	_, pivotTouched := deleteCash["PM-PIVOT"]
	assert.False(t, pivotTouched, "a create+delete round trip must leave the pivot untouched")

	assert.True(t, d("500").Equal(deleteParty["PA-C"]), "got %s", deleteParty["PA-C"])
}

func TestCreateJournalVoucher_ExpenseCreditNegates(t *testing.T) {
	txnRepo, partyRepo, _, svc := newJournalVoucherServiceWithMocks()

	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-7").
		Return(&domain.Party{PartySlug: "PA-7", Role: domain.RoleExpense}, nil)
	partyRepo.On("FindPartyBySlug", mock.Anything, "BU-1", "PA-1").
		Return(&domain.Party{PartySlug: "PA-1", Role: domain.RoleVendor}, nil)

	var savedChildren []domain.Transaction
	txnRepo.On("SaveTransactionTree", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { savedChildren = args.Get(2).([]domain.Transaction) }).
		Return(nil)

	req := dto.CreateJournalVoucherRequest{
		Accounts: []dto.JournalAccountRequest{
			{PartySlug: strPtr("PA-1"), PartyRole: intPtr(int(domain.RoleVendor)), Amount: d("200"), IsDebit: true},
			{PartySlug: strPtr("PA-7"), PartyRole: intPtr(int(domain.RoleExpense)), Amount: d("200"), IsDebit: false},
		},
	}

	_, err := svc.CreateJournalVoucher(context.Background(), testSession, req)
	require.NoError(t, err)
	require.Len(t, savedChildren, 2)

	// A credited expense reverses a previously recorded expense, so the leg
	// carries a negative amount.
	expenseLeg := savedChildren[1]
	assert.Equal(t, domain.Expense, expenseLeg.Type)
	assert.True(t, d("-200").Equal(expenseLeg.TotalPaid), "got %s", expenseLeg.TotalPaid)
}

func TestCreateJournalVoucher_UnbalancedRejected(t *testing.T) {
	txnRepo, _, _, svc := newJournalVoucherServiceWithMocks()

	req := dto.CreateJournalVoucherRequest{
		Accounts: []dto.JournalAccountRequest{
			{PartySlug: strPtr("PA-1"), PartyRole: intPtr(int(domain.RoleVendor)), Amount: d("500"), IsDebit: true},
			{PaymentMethodSlug: strPtr("PM-2"), Amount: d("300"), IsDebit: false},
		},
	}

	_, err := svc.CreateJournalVoucher(context.Background(), testSession, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedJournal)

	var unbalanced *apperrors.UnbalancedJournalError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, "500", unbalanced.TotalDebit)
	assert.Equal(t, "300", unbalanced.TotalCredit)

	txnRepo.AssertNotCalled(t, "SaveTransactionTree",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJournalVoucher_InvalidRoleRejected(t *testing.T) {
	_, _, _, svc := newJournalVoucherServiceWithMocks()

	req := dto.CreateJournalVoucherRequest{
		Accounts: []dto.JournalAccountRequest{
			{PartySlug: strPtr("PA-1"), PartyRole: intPtr(int(domain.RoleStockAdjuster)), Amount: d("100"), IsDebit: true},
			{PaymentMethodSlug: strPtr("PM-2"), Amount: d("100"), IsDebit: false},
		},
	}

	_, err := svc.CreateJournalVoucher(context.Background(), testSession, req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetJournalVoucher(t *testing.T) {
	txnRepo, _, _, svc := newJournalVoucherServiceWithMocks()

	txnRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", "TR-P").
		Return(&domain.Transaction{
			TransactionSlug: "TR-P",
			Type:            domain.JournalVoucher,
			PaymentMethodTo: strPtr("PM-1"),
			TotalBill:       d("500"),
			TotalPaid:       d("500"),
		}, nil)
	txnRepo.On("FindChildTransactions", mock.Anything, "BU-1", "TR-P").
		Return([]domain.Transaction{
			{TransactionSlug: "TR-C1", Type: domain.PayToVendor, PartySlug: strPtr("PA-1"), TotalPaid: d("500")},
			{TransactionSlug: "TR-C2", Type: domain.PaymentTransfer, PaymentMethodFrom: strPtr("PM-2"), PaymentMethodTo: strPtr("PM-1"), TotalPaid: d("500")},
		}, nil)

	resp, err := svc.GetJournalVoucher(context.Background(), testSession, "TR-P")
	require.NoError(t, err)
	assert.Equal(t, "TR-P", resp.Parent.TransactionSlug)
	require.Len(t, resp.Children, 2)
	assert.Equal(t, "TR-C1", resp.Children[0].TransactionSlug)

	// The voucher comes back with its draft rows reassembled for editing.
	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, "PA-1", *resp.Accounts[0].PartySlug)
	assert.True(t, resp.Accounts[0].IsDebit)
	assert.Equal(t, "PM-2", *resp.Accounts[1].PaymentMethodSlug)
	assert.False(t, resp.Accounts[1].IsDebit)
	assert.True(t, d("500").Equal(resp.TotalDebit))
	assert.True(t, d("500").Equal(resp.TotalCredit))
}

func TestGetJournalVoucher_NotAVoucher(t *testing.T) {
	txnRepo, _, _, svc := newJournalVoucherServiceWithMocks()

	txnRepo.On("FindTransactionBySlug", mock.Anything, "BU-1", "TR-1").
		Return(&domain.Transaction{TransactionSlug: "TR-1", Type: domain.Sale}, nil)

	_, err := svc.GetJournalVoucher(context.Background(), testSession, "TR-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "FindChildTransactions", mock.Anything, mock.Anything, mock.Anything)
}
