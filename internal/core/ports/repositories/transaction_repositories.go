package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionBySlug retrieves a specific transaction with its line items.
	FindTransactionBySlug(ctx context.Context, businessSlug, transactionSlug string) (*domain.Transaction, error)

	// FindChildTransactions retrieves all child transactions of a parent, ordered by timestamp.
	FindChildTransactions(ctx context.Context, businessSlug, parentSlug string) ([]domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions for a business using
	// token-based pagination, newest first. It returns the transactions, a token for the
	// next page, and an error.
	ListTransactions(ctx context.Context, businessSlug string, limit int, nextToken *string, types []domain.TransactionType) ([]domain.Transaction, *string, error)

	// ListTransactionsByParty retrieves transactions involving a specific party,
	// oldest first, for balance history projection.
	ListTransactionsByParty(ctx context.Context, businessSlug, partySlug string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction and its line items, applying the party
	// balance change and payment method balance changes within a single database
	// transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, partyBalanceChange decimal.Decimal, cashChanges map[string]decimal.Decimal) error

	// SaveTransactionTree persists a parent transaction and all of its children
	// atomically, applying every party and payment method balance change in one
	// database transaction. Either the whole tree commits or none of it does.
	SaveTransactionTree(ctx context.Context, parent domain.Transaction, children []domain.Transaction, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal) error

	// MarkTransactionDeleted soft-deletes a transaction and its children, reversing
	// the balance changes they applied, all within one database transaction.
	MarkTransactionDeleted(ctx context.Context, businessSlug, transactionSlug string, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal, updatedBy string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
