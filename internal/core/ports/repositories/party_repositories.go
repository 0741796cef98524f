package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyBySlug retrieves a specific party by its slug.
	FindPartyBySlug(ctx context.Context, businessSlug, partySlug string) (*domain.Party, error)

	// ListParties retrieves parties for a business, optionally filtered by role.
	ListParties(ctx context.Context, businessSlug string, roles []domain.PartyRole, limit int, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates party details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// AdjustPartyBalance applies a delta to the party's running balance.
	AdjustPartyBalance(ctx context.Context, businessSlug, partySlug string, delta decimal.Decimal) error

	// MarkPartyDeleted soft-deletes a party.
	MarkPartyDeleted(ctx context.Context, businessSlug, partySlug, updatedBy string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
