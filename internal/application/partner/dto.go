package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
)

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=200"`
	Email      string   `json:"email" binding:"required,email,max=200"`
	HourlyRate *float64 `json:"hourlyRate" binding:"required,gte=0"`
}

// UpdateClientRequest represents a request to update a client. All
// three fields are required; an update overwrites the whole record.
type UpdateClientRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=200"`
	Email      string   `json:"email" binding:"required,email,max=200"`
	HourlyRate *float64 `json:"hourlyRate" binding:"required,gte=0"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HourlyRate float64   `json:"hourlyRate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:         client.ID,
		Name:       client.Name,
		Email:      client.Email,
		HourlyRate: client.HourlyRate.InexactFloat64(),
		CreatedAt:  client.CreatedAt,
		UpdatedAt:  client.UpdatedAt,
	}
}
