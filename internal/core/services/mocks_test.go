package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryWithTx = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, partyBalanceChange decimal.Decimal, cashChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, partyBalanceChange, cashChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactionTree(ctx context.Context, parent domain.Transaction, children []domain.Transaction, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, parent, children, partyBalanceChanges, cashChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, businessSlug, transactionSlug string, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, businessSlug, transactionSlug, partyBalanceChanges, cashChanges, updatedBy)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionBySlug(ctx context.Context, businessSlug, transactionSlug string) (*domain.Transaction, error) {
	args := m.Called(ctx, businessSlug, transactionSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindChildTransactions(ctx context.Context, businessSlug, parentSlug string) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessSlug, parentSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, businessSlug string, limit int, nextToken *string, types []domain.TransactionType) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, businessSlug, limit, nextToken, types)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsByParty(ctx context.Context, businessSlug, partySlug string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, businessSlug, partySlug, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyBySlug(ctx context.Context, businessSlug, partySlug string) (*domain.Party, error) {
	args := m.Called(ctx, businessSlug, partySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, businessSlug string, roles []domain.PartyRole, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, businessSlug, roles, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) AdjustPartyBalance(ctx context.Context, businessSlug, partySlug string, delta decimal.Decimal) error {
	args := m.Called(ctx, businessSlug, partySlug, delta)
	return args.Error(0)
}

func (m *MockPartyRepository) MarkPartyDeleted(ctx context.Context, businessSlug, partySlug, updatedBy string) error {
	args := m.Called(ctx, businessSlug, partySlug, updatedBy)
	return args.Error(0)
}

// --- Mock PaymentMethodRepository ---
type MockPaymentMethodRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*MockPaymentMethodRepository)(nil)

func (m *MockPaymentMethodRepository) FindPaymentMethodBySlug(ctx context.Context, businessSlug, paymentMethodSlug string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, businessSlug, paymentMethodSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListPaymentMethods(ctx context.Context, businessSlug string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, businessSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) AdjustPaymentMethodBalance(ctx context.Context, businessSlug, paymentMethodSlug string, delta decimal.Decimal) error {
	args := m.Called(ctx, businessSlug, paymentMethodSlug, delta)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) MarkPaymentMethodDeleted(ctx context.Context, businessSlug, paymentMethodSlug, updatedBy string) error {
	args := m.Called(ctx, businessSlug, paymentMethodSlug, updatedBy)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserBySlug(ctx context.Context, userSlug string) (*domain.User, error) {
	args := m.Called(ctx, userSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductBySlug(ctx context.Context, businessSlug, productSlug string) (*domain.Product, error) {
	args := m.Called(ctx, businessSlug, productSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, businessSlug string, categorySlug *string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, businessSlug, categorySlug, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustProductQuantity(ctx context.Context, businessSlug, productSlug string, delta decimal.Decimal) error {
	args := m.Called(ctx, businessSlug, productSlug, delta)
	return args.Error(0)
}

func (m *MockProductRepository) MarkProductDeleted(ctx context.Context, businessSlug, productSlug, updatedBy string) error {
	args := m.Called(ctx, businessSlug, productSlug, updatedBy)
	return args.Error(0)
}
