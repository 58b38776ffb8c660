package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	OwnedModel
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	TotalHours  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsPaid      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		OwnedEntity: m.ToDomainOwnedEntity(),
		ClientID:    m.ClientID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		TotalHours:  m.TotalHours,
		TotalAmount: m.TotalAmount,
		IsPaid:      m.IsPaid,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainOwnedEntity(i.OwnedEntity)
	m.ClientID = i.ClientID
	m.PeriodStart = i.PeriodStart
	m.PeriodEnd = i.PeriodEnd
	m.TotalHours = i.TotalHours
	m.TotalAmount = i.TotalAmount
	m.IsPaid = i.IsPaid
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
