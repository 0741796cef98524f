package mapping

import (
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/models"
)

// ToModelWarehouse converts a domain Warehouse to a model Warehouse.
func ToModelWarehouse(d domain.Warehouse) models.Warehouse {
	return models.Warehouse{
		WarehouseSlug: d.WarehouseSlug,
		BusinessSlug:  d.BusinessSlug,
		Title:         d.Title,
		Address:       d.Address,
		StatusID:      int(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWarehouse converts a model Warehouse to a domain Warehouse.
func ToDomainWarehouse(m models.Warehouse) domain.Warehouse {
	return domain.Warehouse{
		WarehouseSlug: m.WarehouseSlug,
		BusinessSlug:  m.BusinessSlug,
		Title:         m.Title,
		Address:       m.Address,
		Status:        domain.Status(m.StatusID),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategorySlug: d.CategorySlug,
		BusinessSlug: d.BusinessSlug,
		Title:        d.Title,
		CategoryType: int(d.Type),
		StatusID:     int(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategorySlug: m.CategorySlug,
		BusinessSlug: m.BusinessSlug,
		Title:        m.Title,
		Type:         domain.CategoryType(m.CategoryType),
		Status:       domain.Status(m.StatusID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserSlug:     m.UserSlug,
		BusinessSlug: m.BusinessSlug,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Status:       domain.Status(m.StatusID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserSlug:     d.UserSlug,
		BusinessSlug: d.BusinessSlug,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		StatusID:     int(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
