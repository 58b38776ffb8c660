package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/billing"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/timesheet"
)

// CreateInvoiceRequest represents a request to generate an invoice for
// a billing period. Dates are day-granular, endDate inclusive.
type CreateInvoiceRequest struct {
	ClientID  uuid.UUID `json:"clientId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
}

// SetPaidRequest represents a request to update an invoice's paid flag
type SetPaidRequest struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

// InvoiceClient is the client summary embedded in invoice responses
type InvoiceClient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HourlyRate float64   `json:"hourlyRate"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID      `json:"id"`
	ClientID    uuid.UUID      `json:"clientId"`
	PeriodStart time.Time      `json:"periodStart"`
	PeriodEnd   time.Time      `json:"periodEnd"`
	TotalHours  float64        `json:"totalHours"`
	TotalAmount float64        `json:"totalAmount"`
	IsPaid      bool           `json:"isPaid"`
	CreatedAt   time.Time      `json:"createdAt"`
	Client      *InvoiceClient `json:"client,omitempty"`
}

// InvoiceEntryResponse is one recomputed line item of an invoice detail
type InvoiceEntryResponse struct {
	ID        uuid.UUID  `json:"id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Hours     float64    `json:"hours"`
	Amount    float64    `json:"amount"`
}

// InvoiceDetailResponse is an invoice with its period's line items
type InvoiceDetailResponse struct {
	Invoice InvoiceResponse        `json:"invoice"`
	Entries []InvoiceEntryResponse `json:"entries"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(invoice *billing.Invoice, client *partner.Client) InvoiceResponse {
	response := InvoiceResponse{
		ID:          invoice.ID,
		ClientID:    invoice.ClientID,
		PeriodStart: invoice.PeriodStart,
		PeriodEnd:   invoice.PeriodEnd,
		TotalHours:  invoice.TotalHours.InexactFloat64(),
		TotalAmount: invoice.TotalAmount.InexactFloat64(),
		IsPaid:      invoice.IsPaid,
		CreatedAt:   invoice.CreatedAt,
	}
	if client != nil {
		response.Client = &InvoiceClient{
			ID:         client.ID,
			Name:       client.Name,
			Email:      client.Email,
			HourlyRate: client.HourlyRate.InexactFloat64(),
		}
	}
	return response
}

// ToInvoiceEntryResponse converts an entry to an invoice line item at
// the given client's rate
func ToInvoiceEntryResponse(entry *timesheet.TimeEntry, client *partner.Client) InvoiceEntryResponse {
	hours := entry.Hours()
	return InvoiceEntryResponse{
		ID:        entry.ID,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Hours:     hours.Round(2).InexactFloat64(),
		Amount:    hours.Mul(client.HourlyRate).Round(2).InexactFloat64(),
	}
}
