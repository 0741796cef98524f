package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
	"github.com/hisaabi/hisaabi_backend/internal/utils/pagination"
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// transactionService provides core transaction recording and query operations.
type transactionService struct {
	txnRepo     portsrepo.TransactionRepositoryWithTx
	partyRepo   portsrepo.PartyRepositoryFacade
	pmRepo      portsrepo.PaymentMethodRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, pmRepo portsrepo.PaymentMethodRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		partyRepo:   partyRepo,
		pmRepo:      pmRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateReferences checks the type-driven save gates. Every transaction
// type declares what it needs through its traits; the gates are the same for
// every type, only the trait flags differ.
func validateReferences(txn domain.Transaction) error {
	if !txn.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %d", apperrors.ErrValidation, int(txn.Type))
	}
	traits := txn.Type.Traits()

	if traits.RequiresParty && (txn.PartySlug == nil || *txn.PartySlug == "") {
		return apperrors.ErrMissingParty
	}
	if traits.RequiresProducts && len(txn.LineItems) == 0 {
		return apperrors.ErrEmptyLineItems
	}
	if traits.RequiresPayment && txn.PaymentMethodFrom == nil && txn.PaymentMethodTo == nil {
		return apperrors.ErrMissingPaymentMethod
	}
	if traits.RequiresWarehouse && txn.WarehouseFrom == nil && txn.WarehouseTo == nil {
		return apperrors.ErrMissingWarehouse
	}

	switch txn.Type {
	case domain.StockTransfer:
		if txn.WarehouseFrom == nil || txn.WarehouseTo == nil {
			return apperrors.ErrMissingWarehouse
		}
		if *txn.WarehouseFrom == *txn.WarehouseTo {
			return apperrors.ErrDuplicateWarehouse
		}
	case domain.PaymentTransfer:
		if txn.PaymentMethodFrom == nil || txn.PaymentMethodTo == nil {
			return apperrors.ErrMissingPaymentMethod
		}
		if *txn.PaymentMethodFrom == *txn.PaymentMethodTo {
			return apperrors.ErrSameAccountTransfer
		}
	}
	return nil
}

// cashChanges computes the payment-method balance deltas for a transaction.
// Cash always flows from PaymentMethodFrom to PaymentMethodTo; single-sided
// types set only one of the two.
func cashChanges(txn domain.Transaction) map[string]decimal.Decimal {
	if !txn.Type.Traits().MovesCash || txn.TotalPaid.IsZero() {
		return nil
	}
	changes := make(map[string]decimal.Decimal, 2)
	if txn.PaymentMethodFrom != nil {
		changes[*txn.PaymentMethodFrom] = changes[*txn.PaymentMethodFrom].Sub(txn.TotalPaid)
	}
	if txn.PaymentMethodTo != nil {
		changes[*txn.PaymentMethodTo] = changes[*txn.PaymentMethodTo].Add(txn.TotalPaid)
	}
	return changes
}

// stockSign gives the direction a type moves product quantities. Transfers
// shift stock between warehouses without changing the overall quantity, so
// they report zero here.
func stockSign(t domain.TransactionType) int {
	switch t {
	case domain.Purchase, domain.CustomerReturn, domain.StockIncrease:
		return 1
	case domain.Sale, domain.VendorReturn, domain.StockReduce:
		return -1
	}
	return 0
}

// initialState picks the workflow state for a freshly recorded transaction.
// Orders and quotations start pending; everything else completes on save.
func initialState(t domain.TransactionType) domain.TransactionState {
	switch t {
	case domain.SaleOrder, domain.PurchaseOrder, domain.Quotation:
		return domain.StatePending
	}
	return domain.StateCompleted
}

// CreateTransaction validates, computes totals for, and persists a transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, sess domain.SessionContext, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := validateReferences(txn); err != nil {
		return nil, err
	}

	// Referenced entities must exist in this business before anything is saved.
	if txn.PartySlug != nil {
		if _, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, *txn.PartySlug); err != nil {
			return nil, fmt.Errorf("failed to resolve party %s: %w", *txn.PartySlug, err)
		}
	}
	for _, pmSlug := range []*string{txn.PaymentMethodFrom, txn.PaymentMethodTo} {
		if pmSlug == nil {
			continue
		}
		if _, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, *pmSlug); err != nil {
			return nil, fmt.Errorf("failed to resolve payment method %s: %w", *pmSlug, err)
		}
	}

	now := time.Now().UTC()
	txn.TransactionSlug = slugs.New(slugs.Transaction)
	txn.BusinessSlug = sess.BusinessSlug
	txn.State = initialState(txn.Type)
	txn.Status = domain.StatusActive
	if txn.Timestamp.IsZero() {
		txn.Timestamp = now
	}
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     sess.UserSlug,
		LastUpdatedAt: now,
		LastUpdatedBy: sess.UserSlug,
	}
	for i := range txn.LineItems {
		txn.LineItems[i].DetailSlug = slugs.New(slugs.LineItem)
		txn.LineItems[i].TransactionSlug = txn.TransactionSlug
		txn.LineItems[i].AuditFields = txn.AuditFields
	}

	// The stored bill is always the derived grand total, never a client figure.
	txn.TotalBill = txn.GrandTotal()

	partyChange := txn.BalanceEffect()
	if err := s.txnRepo.SaveTransaction(ctx, txn, partyChange, cashChanges(txn)); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("type", txn.Type.String()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if sign := stockSign(txn.Type); sign != 0 && txn.Type.Traits().AffectsStock {
		for _, li := range txn.LineItems {
			delta := li.Quantity
			if sign < 0 {
				delta = delta.Neg()
			}
			if err := s.productRepo.AdjustProductQuantity(ctx, sess.BusinessSlug, li.ProductSlug, delta); err != nil {
				logger.Error("Failed to adjust product stock", slog.String("error", err.Error()), slog.String("product_slug", li.ProductSlug))
			}
		}
	}

	logger.Info("Transaction created", slog.String("transaction_slug", txn.TransactionSlug), slog.String("type", txn.Type.String()))
	return &txn, nil
}

// GetTransaction retrieves a specific transaction with its line items.
func (s *transactionService) GetTransaction(ctx context.Context, sess domain.SessionContext, transactionSlug string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionBySlug(ctx, sess.BusinessSlug, transactionSlug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_slug", transactionSlug))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionSlug, err)
	}
	return txn, nil
}

// ListTransactions retrieves a paginated list of transactions for the business.
func (s *transactionService) ListTransactions(ctx context.Context, sess domain.SessionContext, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	types := make([]domain.TransactionType, 0, len(params.Types))
	for _, t := range params.Types {
		tt := domain.TransactionType(t)
		if !tt.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %d", apperrors.ErrValidation, t)
		}
		types = append(types, tt)
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, sess.BusinessSlug, limit, params.NextToken, types)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// GetPartyBalanceHistory projects a party's ledger with per-row running
// balances. The page cursor carries the running balance forward so a later
// page resumes from where the previous one stopped instead of replaying the
// whole history.
func (s *transactionService) GetPartyBalanceHistory(ctx context.Context, sess domain.SessionContext, partySlug string, params dto.ListTransactionsParams) (*dto.BalanceHistoryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, partySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve party %s: %w", partySlug, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	opening := party.OpeningBalance
	var repoToken *string
	if params.NextToken != nil {
		fields, err := pagination.DecodeMultiFieldToken(*params.NextToken)
		if err != nil || len(fields) != 3 {
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		carried, err := decimal.NewFromString(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		opening = carried
		inner := pagination.EncodeMultiFieldToken(fields[0], fields[1])
		repoToken = &inner
	}

	txns, innerNext, err := s.txnRepo.ListTransactionsByParty(ctx, sess.BusinessSlug, partySlug, limit, repoToken)
	if err != nil {
		logger.Error("Failed to list party transactions", slog.String("error", err.Error()), slog.String("party_slug", partySlug))
		return nil, fmt.Errorf("failed to list transactions for party %s: %w", partySlug, err)
	}

	projector := domain.BalanceProjector{OpeningBalance: opening, Transactions: txns}
	projected := projector.Project()
	entries := make([]dto.BalanceHistoryEntryResponse, 0, len(projected))
	closing := opening
	for i := range projected {
		entries = append(entries, dto.BalanceHistoryEntryResponse{
			Transaction:    dto.ToTransactionResponse(&projected[i].Transaction),
			Effect:         projected[i].Effect,
			RunningBalance: projected[i].RunningBalance,
		})
	}
	if len(projected) > 0 {
		closing = projected[len(projected)-1].RunningBalance
	}

	var nextToken *string
	if innerNext != nil {
		fields, err := pagination.DecodeMultiFieldToken(*innerNext)
		if err != nil || len(fields) != 2 {
			return nil, fmt.Errorf("failed to build pagination token: %w", apperrors.ErrInternal)
		}
		outer := pagination.EncodeMultiFieldToken(fields[0], fields[1], closing.String())
		nextToken = &outer
	}

	return &dto.BalanceHistoryResponse{
		PartySlug:      partySlug,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Entries:        entries,
		NextToken:      nextToken,
	}, nil
}

// DeleteTransaction soft-deletes a transaction and its children, reversing
// the balance effects they applied.
func (s *transactionService) DeleteTransaction(ctx context.Context, sess domain.SessionContext, transactionSlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionBySlug(ctx, sess.BusinessSlug, transactionSlug)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionSlug, err)
	}
	if txn.ParentSlug != nil {
		return fmt.Errorf("%w: child transactions are removed through their parent voucher", apperrors.ErrValidation)
	}

	children, err := s.txnRepo.FindChildTransactions(ctx, sess.BusinessSlug, transactionSlug)
	if err != nil {
		return fmt.Errorf("failed to find child transactions of %s: %w", transactionSlug, err)
	}

	partyChanges := make(map[string]decimal.Decimal)
	cash := make(map[string]decimal.Decimal)
	for _, t := range append([]domain.Transaction{*txn}, children...) {
		if t.PartySlug != nil {
			if effect := t.BalanceEffect(); !effect.IsZero() {
				partyChanges[*t.PartySlug] = partyChanges[*t.PartySlug].Sub(effect)
			}
		}
		for pm, delta := range cashChanges(t) {
			cash[pm] = cash[pm].Sub(delta)
		}
	}
	// Voucher legs in and out of the same account cancel; drop net-zero
	// entries so the reversal matches exactly what the save applied.
	for k := range partyChanges {
		if partyChanges[k].IsZero() {
			delete(partyChanges, k)
		}
	}
	for k := range cash {
		if cash[k].IsZero() {
			delete(cash, k)
		}
	}

	if err := s.txnRepo.MarkTransactionDeleted(ctx, sess.BusinessSlug, transactionSlug, partyChanges, cash, sess.UserSlug); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_slug", transactionSlug))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionSlug, err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_slug", transactionSlug), slog.Int("children", len(children)))
	return nil
}
