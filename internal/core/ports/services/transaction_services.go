package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransaction retrieves a specific transaction with its line items.
	GetTransaction(ctx context.Context, sess domain.SessionContext, transactionSlug string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions for the business.
	ListTransactions(ctx context.Context, sess domain.SessionContext, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetPartyBalanceHistory projects a party's ledger with per-row running balances.
	GetPartyBalanceHistory(ctx context.Context, sess domain.SessionContext, partySlug string, params dto.ListTransactionsParams) (*dto.BalanceHistoryResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates, computes totals for, and persists a transaction,
	// applying its party and cash balance effects.
	CreateTransaction(ctx context.Context, sess domain.SessionContext, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes a transaction and its children, reversing their
	// balance effects.
	DeleteTransaction(ctx context.Context, sess domain.SessionContext, transactionSlug string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// JournalVoucherSvc defines operations for compound journal vouchers
type JournalVoucherSvc interface {
	// CreateJournalVoucher validates a balanced draft and persists the parent
	// voucher with one child transaction per account, atomically.
	CreateJournalVoucher(ctx context.Context, sess domain.SessionContext, req dto.CreateJournalVoucherRequest) (*dto.JournalVoucherResponse, error)

	// GetJournalVoucher retrieves a voucher and its children.
	GetJournalVoucher(ctx context.Context, sess domain.SessionContext, transactionSlug string) (*dto.JournalVoucherResponse, error)
}
