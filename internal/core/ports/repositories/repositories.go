package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo   TransactionRepositoryWithTx
	PartyRepo         PartyRepositoryFacade
	PaymentMethodRepo PaymentMethodRepositoryFacade
	ProductRepo       ProductRepositoryFacade
	WarehouseRepo     WarehouseRepositoryFacade
	CategoryRepo      CategoryRepositoryFacade
	UserRepo          UserRepositoryFacade
}
