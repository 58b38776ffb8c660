package models

import (
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	OwnedModel
	Name       string          `gorm:"type:varchar(200);not null"`
	Email      string          `gorm:"type:varchar(200);not null"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		OwnedEntity: m.ToDomainOwnedEntity(),
		Name:        m.Name,
		Email:       m.Email,
		HourlyRate:  m.HourlyRate,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainOwnedEntity(c.OwnedEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.HourlyRate = c.HourlyRate
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
