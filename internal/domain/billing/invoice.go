package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice captures a billing period for one client. The total hours and
// amount are computed from the completed time entries inside the period
// at creation time and then stored; the line items themselves are not
// persisted and are recomputed from the period when the invoice is read.
type Invoice struct {
	shared.OwnedEntity
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	TotalHours  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsPaid      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new unpaid invoice for the given period. Totals
// are stored rounded to two decimal places.
func NewInvoice(userID, clientID uuid.UUID, periodStart, periodEnd time.Time, totalHours, totalAmount decimal.Decimal) (*Invoice, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID is required")
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Invoice period is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Invoice period end cannot precede its start")
	}

	return &Invoice{
		OwnedEntity: shared.NewOwnedEntity(userID),
		ClientID:    clientID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalHours:  totalHours.Round(2),
		TotalAmount: totalAmount.Round(2),
	}, nil
}

// SetPaid updates the invoice's paid flag
func (i *Invoice) SetPaid(paid bool) {
	i.IsPaid = paid
	i.UpdatedAt = time.Now()
}
