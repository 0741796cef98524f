package mapping

import (
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Line items are mapped separately; they live in their own table.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionSlug:       d.TransactionSlug,
		BusinessSlug:          d.BusinessSlug,
		ParentSlug:            d.ParentSlug,
		TransactionType:       int(d.Type),
		PartySlug:             d.PartySlug,
		PaymentMethodFromSlug: d.PaymentMethodFrom,
		PaymentMethodToSlug:   d.PaymentMethodTo,
		WarehouseFromSlug:     d.WarehouseFrom,
		WarehouseToSlug:       d.WarehouseTo,
		FlatDiscount:          d.Discount.Amount,
		DiscountTypeID:        int(d.Discount.Mode),
		FlatTax:               d.Tax.Amount,
		TaxTypeID:             int(d.Tax.Mode),
		AdditionalCharges:     d.AdditionalCharges,
		TotalBill:             d.TotalBill,
		TotalPaid:             d.TotalPaid,
		Timestamp:             d.Timestamp,
		Description:           d.Description,
		StateID:               int(d.State),
		StatusID:              int(d.Status),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionSlug:   m.TransactionSlug,
		BusinessSlug:      m.BusinessSlug,
		ParentSlug:        m.ParentSlug,
		Type:              domain.TransactionType(m.TransactionType),
		PartySlug:         m.PartySlug,
		PaymentMethodFrom: m.PaymentMethodFromSlug,
		PaymentMethodTo:   m.PaymentMethodToSlug,
		WarehouseFrom:     m.WarehouseFromSlug,
		WarehouseTo:       m.WarehouseToSlug,
		Discount:          domain.DiscountOrTax{Amount: m.FlatDiscount, Mode: domain.DiscountMode(m.DiscountTypeID)},
		Tax:               domain.DiscountOrTax{Amount: m.FlatTax, Mode: domain.DiscountMode(m.TaxTypeID)},
		AdditionalCharges: m.AdditionalCharges,
		TotalBill:         m.TotalBill,
		TotalPaid:         m.TotalPaid,
		Timestamp:         m.Timestamp,
		Description:       m.Description,
		State:             domain.TransactionState(m.StateID),
		Status:            domain.Status(m.StatusID),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionDetail converts a domain LineItem to a model row.
func ToModelTransactionDetail(businessSlug string, d domain.LineItem) models.TransactionDetail {
	return models.TransactionDetail{
		DetailSlug:      d.DetailSlug,
		TransactionSlug: d.TransactionSlug,
		BusinessSlug:    businessSlug,
		ProductSlug:     d.ProductSlug,
		Quantity:        d.Quantity,
		Price:           d.UnitPrice,
		FlatDiscount:    d.Discount.Amount,
		DiscountTypeID:  int(d.Discount.Mode),
		FlatTax:         d.Tax.Amount,
		TaxTypeID:       int(d.Tax.Mode),
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model TransactionDetail row to a domain LineItem.
func ToDomainLineItem(m models.TransactionDetail) domain.LineItem {
	return domain.LineItem{
		DetailSlug:      m.DetailSlug,
		TransactionSlug: m.TransactionSlug,
		ProductSlug:     m.ProductSlug,
		Quantity:        m.Quantity,
		UnitPrice:       m.Price,
		Discount:        domain.DiscountOrTax{Amount: m.FlatDiscount, Mode: domain.DiscountMode(m.DiscountTypeID)},
		Tax:             domain.DiscountOrTax{Amount: m.FlatTax, Mode: domain.DiscountMode(m.TaxTypeID)},
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
