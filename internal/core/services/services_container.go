package services

import (
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.CategoryRepo)
	container.Warehouse = NewWarehouseService(repos.WarehouseRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.PartyRepo, repos.PaymentMethodRepo, repos.ProductRepo)
	container.JournalVoucher = NewJournalVoucherService(repos.TransactionRepo, repos.PartyRepo, repos.PaymentMethodRepo)
	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
