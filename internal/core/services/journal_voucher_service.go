package services

import (
	"context"
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
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// journalVoucherService records compound journal vouchers: one parent
// transaction plus one child transaction per debit/credit leg, saved
// atomically.
type journalVoucherService struct {
	txnRepo   portsrepo.TransactionRepositoryWithTx
	partyRepo portsrepo.PartyRepositoryFacade
	pmRepo    portsrepo.PaymentMethodRepositoryFacade
}

// NewJournalVoucherService creates a new JournalVoucherService.
func NewJournalVoucherService(txnRepo portsrepo.TransactionRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, pmRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.JournalVoucherSvc {
	return &journalVoucherService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
		pmRepo:    pmRepo,
	}
}

var _ portssvc.JournalVoucherSvc = (*journalVoucherService)(nil)

// legPaysOut reports whether a party leg's type takes cash out of the
// voucher's payment method rather than bringing it in.
func legPaysOut(t domain.TransactionType) bool {
	switch t {
	case domain.PayToVendor, domain.PayToCustomer, domain.Expense, domain.InvestmentWithdraw:
		return true
	}
	return false
}

// CreateJournalVoucher validates a balanced draft and persists the parent
// voucher with one child transaction per account.
func (s *journalVoucherService) CreateJournalVoucher(ctx context.Context, sess domain.SessionContext, req dto.CreateJournalVoucherRequest) (*dto.JournalVoucherResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts := make([]domain.JournalAccount, len(req.Accounts))
	for i, row := range req.Accounts {
		acc, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		accounts[i] = acc
	}

	draft := domain.JournalDraftFromAccounts(accounts)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// Resolve every referenced account before saving anything.
	for _, acc := range draft.Accounts {
		if acc.PartySlug != nil {
			if _, err := s.partyRepo.FindPartyBySlug(ctx, sess.BusinessSlug, *acc.PartySlug); err != nil {
				return nil, fmt.Errorf("failed to resolve party %s: %w", *acc.PartySlug, err)
			}
		}
		if acc.PaymentMethodSlug != nil {
			if _, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, *acc.PaymentMethodSlug); err != nil {
				return nil, fmt.Errorf("failed to resolve payment method %s: %w", *acc.PaymentMethodSlug, err)
			}
		}
	}
	if req.PaymentMethodSlug != nil {
		if _, err := s.pmRepo.FindPaymentMethodBySlug(ctx, sess.BusinessSlug, *req.PaymentMethodSlug); err != nil {
			return nil, fmt.Errorf("failed to resolve payment method %s: %w", *req.PaymentMethodSlug, err)
		}
	}

	now := time.Now().UTC()
	timestamp := now
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     sess.UserSlug,
		LastUpdatedAt: now,
		LastUpdatedBy: sess.UserSlug,
	}

	parentSlug := slugs.New(slugs.Transaction)
	parent := domain.Transaction{
		TransactionSlug: parentSlug,
		BusinessSlug:    sess.BusinessSlug,
		Type:            domain.JournalVoucher,
		PaymentMethodTo: req.PaymentMethodSlug,
		TotalBill:       draft.TotalDebit,
		TotalPaid:       draft.TotalDebit,
		Timestamp:       timestamp,
		Description:     req.Description,
		State:           domain.StateCompleted,
		Status:          domain.StatusActive,
		AuditFields:     audit,
	}

	children := make([]domain.Transaction, 0, len(draft.Accounts))
	partyChanges := make(map[string]decimal.Decimal)
	cash := make(map[string]decimal.Decimal)

	// Each leg becomes a child transaction, stamped one millisecond apart so
	// ordering by timestamp reproduces the entry order.
	for i, acc := range draft.Accounts {
		child := domain.Transaction{
			TransactionSlug: slugs.New(slugs.Transaction),
			BusinessSlug:    sess.BusinessSlug,
			ParentSlug:      &parentSlug,
			Timestamp:       timestamp.Add(time.Duration(i+1) * time.Millisecond),
			Description:     req.Description,
			State:           domain.StateCompleted,
			Status:          domain.StatusActive,
			AuditFields:     audit,
		}

		if acc.AccountType == domain.JournalAccountPaymentMethod {
			child.Type = domain.PaymentTransfer
			child.TotalPaid = acc.Amount
			if acc.IsDebit {
				child.PaymentMethodTo = acc.PaymentMethodSlug
				child.PaymentMethodFrom = req.PaymentMethodSlug
			} else {
				child.PaymentMethodFrom = acc.PaymentMethodSlug
				child.PaymentMethodTo = req.PaymentMethodSlug
			}
		} else {
			child.Type = domain.ChildTransactionType(acc.PartyRole, acc.IsDebit)
			child.PartySlug = acc.PartySlug
			amount := acc.Amount
			if (child.Type == domain.Expense || child.Type == domain.ExtraIncome) && !acc.IsDebit {
				amount = amount.Neg()
			}
			child.TotalPaid = amount
			// Party legs settle against the voucher's payment method, on
			// whichever side their type moves cash.
			if legPaysOut(child.Type) {
				child.PaymentMethodFrom = req.PaymentMethodSlug
			} else {
				child.PaymentMethodTo = req.PaymentMethodSlug
			}
			if effect := child.BalanceEffect(); !effect.IsZero() {
				partyChanges[*acc.PartySlug] = partyChanges[*acc.PartySlug].Add(effect)
			}
		}

		for pm, delta := range cashChanges(child) {
			cash[pm] = cash[pm].Add(delta)
		}
		children = append(children, child)
	}

	// Legs that pay the voucher's own payment method in and out can net to
	// zero; drop those entries rather than locking rows for a no-op.
	for pm := range cash {
		if cash[pm].IsZero() {
			delete(cash, pm)
		}
	}

	if err := s.txnRepo.SaveTransactionTree(ctx, parent, children, partyChanges, cash); err != nil {
		logger.Error("Failed to save journal voucher", slog.String("error", err.Error()), slog.String("transaction_slug", parentSlug))
		return nil, fmt.Errorf("failed to save journal voucher: %w", err)
	}

	logger.Info("Journal voucher created",
		slog.String("transaction_slug", parentSlug),
		slog.Int("legs", len(children)),
		slog.String("total_debit", draft.TotalDebit.String()),
	)

	childResponses := make([]dto.TransactionResponse, len(children))
	for i := range children {
		childResponses[i] = dto.ToTransactionResponse(&children[i])
	}
	return &dto.JournalVoucherResponse{
		Parent:      dto.ToTransactionResponse(&parent),
		Children:    childResponses,
		Accounts:    dto.ToJournalAccountResponses(draft.Accounts),
		TotalDebit:  draft.TotalDebit,
		TotalCredit: draft.TotalCredit,
	}, nil
}

// GetJournalVoucher retrieves a voucher and its children.
func (s *journalVoucherService) GetJournalVoucher(ctx context.Context, sess domain.SessionContext, transactionSlug string) (*dto.JournalVoucherResponse, error) {
	parent, err := s.txnRepo.FindTransactionBySlug(ctx, sess.BusinessSlug, transactionSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionSlug, err)
	}
	if parent.Type != domain.JournalVoucher {
		return nil, fmt.Errorf("%w: transaction %s is not a journal voucher", apperrors.ErrValidation, transactionSlug)
	}

	children, err := s.txnRepo.FindChildTransactions(ctx, sess.BusinessSlug, transactionSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find child transactions of %s: %w", transactionSlug, err)
	}

	// Rebuild the draft rows so the client can reopen the voucher for editing.
	draft := domain.DraftFromChildren(parent.PaymentMethodTo, children)

	return &dto.JournalVoucherResponse{
		Parent:      dto.ToTransactionResponse(parent),
		Children:    dto.ToTransactionResponses(children),
		Accounts:    dto.ToJournalAccountResponses(draft.Accounts),
		TotalDebit:  draft.TotalDebit,
		TotalCredit: draft.TotalCredit,
	}, nil
}
