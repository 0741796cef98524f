package pgsql

import (
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	paymentMethodRepo := newPgxPaymentMethodRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	warehouseRepo := newPgxWarehouseRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:   transactionRepo,
		PartyRepo:         partyRepo,
		PaymentMethodRepo: paymentMethodRepo,
		ProductRepo:       productRepo,
		WarehouseRepo:     warehouseRepo,
		CategoryRepo:      categoryRepo,
		UserRepo:          userRepo,
	}
}
