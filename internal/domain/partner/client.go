package partner

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Client represents a billable counterparty. Work is tracked and
// invoiced against a client at its hourly rate.
type Client struct {
	shared.OwnedEntity
	Name       string          `gorm:"type:varchar(200);not null"`
	Email      string          `gorm:"type:varchar(200);not null"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client owned by the given user
func NewClient(userID uuid.UUID, name, email string, hourlyRate decimal.Decimal) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if err := validateClientEmail(email); err != nil {
		return nil, err
	}
	if err := validateHourlyRate(hourlyRate); err != nil {
		return nil, err
	}

	return &Client{
		OwnedEntity: shared.NewOwnedEntity(userID),
		Name:        name,
		Email:       email,
		HourlyRate:  hourlyRate,
	}, nil
}

// Update overwrites the client's name, email and hourly rate
func (c *Client) Update(name, email string, hourlyRate decimal.Decimal) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if err := validateClientEmail(email); err != nil {
		return err
	}
	if err := validateHourlyRate(hourlyRate); err != nil {
		return err
	}

	c.Name = name
	c.Email = email
	c.HourlyRate = hourlyRate
	c.UpdatedAt = time.Now()

	return nil
}

var clientEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateClientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validateClientEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Client email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Client email cannot exceed 200 characters")
	}
	if !clientEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate cannot be negative")
	}
	return nil
}
