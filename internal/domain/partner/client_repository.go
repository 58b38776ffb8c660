package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence.
// All reads and writes are scoped to the owning user.
type ClientRepository interface {
	// FindByIDForUser finds a client by ID within the user's scope
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Client, error)

	// FindAllForUser finds all clients owned by the user
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// DeleteForUser deletes a client within the user's scope
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
