package mapping

import (
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductSlug:    d.ProductSlug,
		BusinessSlug:   d.BusinessSlug,
		Name:           d.Name,
		Description:    d.Description,
		CategorySlug:   d.CategorySlug,
		RetailPrice:    d.RetailPrice,
		WholesalePrice: d.WholesalePrice,
		PurchasePrice:  d.PurchasePrice,
		Quantity:       d.Quantity,
		StatusID:       int(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductSlug:    m.ProductSlug,
		BusinessSlug:   m.BusinessSlug,
		Name:           m.Name,
		Description:    m.Description,
		CategorySlug:   m.CategorySlug,
		RetailPrice:    m.RetailPrice,
		WholesalePrice: m.WholesalePrice,
		PurchasePrice:  m.PurchasePrice,
		Quantity:       m.Quantity,
		Status:         domain.Status(m.StatusID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
