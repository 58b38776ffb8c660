package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// List retrieves all clients owned by the user
func (s *ClientService) List(ctx context.Context, userID uuid.UUID) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses, nil
}

// Create creates a new client for the user
func (s *ClientService) Create(ctx context.Context, userID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	rate := decimal.NewFromFloat(*req.HourlyRate)

	client, err := partner.NewClient(userID, req.Name, req.Email, rate)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Update overwrites an existing client's name, email and hourly rate
func (s *ClientService) Update(ctx context.Context, userID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForUser(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.Name, req.Email, decimal.NewFromFloat(*req.HourlyRate)); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client owned by the user. Deleting an unknown ID is
// a no-op; a client with dependent time entries or invoices fails on
// the store's foreign key constraint.
func (s *ClientService) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	return s.clientRepo.DeleteForUser(ctx, userID, clientID)
}
