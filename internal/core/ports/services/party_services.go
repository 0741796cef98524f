package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// GetParty retrieves a specific party by slug.
	GetParty(ctx context.Context, sess domain.SessionContext, partySlug string) (*domain.Party, error)

	// ListParties retrieves parties for the business, optionally filtered by role.
	ListParties(ctx context.Context, sess domain.SessionContext, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	// CreateParty persists a new party.
	CreateParty(ctx context.Context, sess domain.SessionContext, req dto.CreatePartyRequest) (*domain.Party, error)

	// UpdateParty updates party details.
	UpdateParty(ctx context.Context, sess domain.SessionContext, partySlug string, req dto.UpdatePartyRequest) (*domain.Party, error)

	// DeleteParty soft-deletes a party.
	DeleteParty(ctx context.Context, sess domain.SessionContext, partySlug string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
