package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/billing"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/hourbill/backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

const invoiceDateLayout = "2006-01-02"

// InvoiceService generates and reads invoices. Totals are snapshotted
// at creation; line items are recomputed from the stored period on
// every read.
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  partner.ClientRepository
	entryRepo   timesheet.TimeEntryRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, clientRepo partner.ClientRepository, entryRepo timesheet.TimeEntryRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		entryRepo:   entryRepo,
	}
}

// List retrieves all invoices for the user, newest first, with client
// summaries embedded
func (s *InvoiceService) List(ctx context.Context, userID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	clientsByID := make(map[uuid.UUID]*partner.Client, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i], clientsByID[invoices[i].ClientID]))
	}
	return responses, nil
}

// Create generates an invoice for the client's completed entries in
// the given period. The end date is inclusive of the whole day.
func (s *InvoiceService) Create(ctx context.Context, userID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	from, to, err := parseInvoicePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByIDForUser(ctx, userID, req.ClientID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.FindCompletedInRange(ctx, userID, client.ID, from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, shared.NewDomainError("EMPTY_RANGE", "No time entries in this range")
	}

	totalHours := decimal.Zero
	for i := range entries {
		totalHours = totalHours.Add(entries[i].Hours())
	}
	totalAmount := totalHours.Mul(client.HourlyRate)

	invoice, err := billing.NewInvoice(userID, client.ID, from, to, totalHours, totalAmount)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, client)
	return &response, nil
}

// Get retrieves an invoice with its line items recomputed from the
// stored period bounds
func (s *InvoiceService) Get(ctx context.Context, userID, invoiceID uuid.UUID) (*InvoiceDetailResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForUser(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByIDForUser(ctx, userID, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.FindCompletedInRange(ctx, userID, invoice.ClientID, invoice.PeriodStart, invoice.PeriodEnd)
	if err != nil {
		return nil, err
	}

	entryResponses := make([]InvoiceEntryResponse, 0, len(entries))
	for i := range entries {
		entryResponses = append(entryResponses, ToInvoiceEntryResponse(&entries[i], client))
	}

	return &InvoiceDetailResponse{
		Invoice: ToInvoiceResponse(invoice, client),
		Entries: entryResponses,
	}, nil
}

// SetPaid updates the paid flag on an invoice owned by the user
func (s *InvoiceService) SetPaid(ctx context.Context, userID, invoiceID uuid.UUID, paid bool) error {
	invoice, err := s.invoiceRepo.FindByIDForUser(ctx, userID, invoiceID)
	if err != nil {
		return err
	}

	invoice.SetPaid(paid)

	return s.invoiceRepo.Save(ctx, invoice)
}

// parseInvoicePeriod turns day-granular date strings into an inclusive
// [from, to] range: from at start of day, to at 23:59:59.999.
func parseInvoicePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	from, err := time.Parse(invoiceDateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "Invalid start date")
	}
	end, err := time.Parse(invoiceDateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "Invalid end date")
	}

	to := end.Add(24*time.Hour - time.Millisecond)
	if to.Before(from) {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "End date cannot precede start date")
	}
	return from, to, nil
}
