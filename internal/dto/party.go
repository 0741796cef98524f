package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Email          string          `json:"email" binding:"omitempty,email"`
	Description    string          `json:"description"`
	Role           int             `json:"role"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Description *string `json:"description"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartySlug      string          `json:"partySlug"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	Description    string          `json:"description"`
	Role           int             `json:"role"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceStatus  string          `json:"balanceStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartySlug:      p.PartySlug,
		Name:           p.Name,
		Phone:          p.Phone,
		Address:        p.Address,
		Email:          p.Email,
		Description:    p.Description,
		Role:           int(p.Role),
		OpeningBalance: p.OpeningBalance,
		Balance:        p.Balance,
		BalanceStatus:  string(p.BalanceStatus()),
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
		LastUpdatedAt:  p.LastUpdatedAt,
		LastUpdatedBy:  p.LastUpdatedBy,
	}
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Limit  int   `form:"limit,default=20"`
	Offset int   `form:"offset,default=0"`
	Roles  []int `form:"roles"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse DTO.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return ListPartiesResponse{Parties: res}
}
