package mapping

import (
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/models"
)

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod.
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodSlug: d.PaymentMethodSlug,
		BusinessSlug:      d.BusinessSlug,
		Title:             d.Title,
		Description:       d.Description,
		Balance:           d.Balance,
		StatusID:          int(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod.
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodSlug: m.PaymentMethodSlug,
		BusinessSlug:      m.BusinessSlug,
		Title:             m.Title,
		Description:       m.Description,
		Balance:           m.Balance,
		Status:            domain.Status(m.StatusID),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
