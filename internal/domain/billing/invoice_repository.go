package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence.
// All reads and writes are scoped to the owning user.
type InvoiceRepository interface {
	// FindByIDForUser finds an invoice by ID within the user's scope
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Invoice, error)

	// FindAllForUser finds all invoices for the user, newest first
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error
}
