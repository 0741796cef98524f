package mapping

import (
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/models"
)

// ToModelParty converts a domain Party to a model Party.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartySlug:      d.PartySlug,
		BusinessSlug:   d.BusinessSlug,
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		Email:          d.Email,
		Description:    d.Description,
		RoleID:         int(d.Role),
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		StatusID:       int(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartySlug:      m.PartySlug,
		BusinessSlug:   m.BusinessSlug,
		Name:           m.Name,
		Phone:          m.Phone,
		Address:        m.Address,
		Email:          m.Email,
		Description:    m.Description,
		Role:           domain.PartyRole(m.RoleID),
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		Status:         domain.Status(m.StatusID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
