package identity

import (
	"regexp"
	"time"

	"github.com/hourbill/backend/internal/domain/shared"
)

// User is the identity anchor for all owned data. Users are created
// lazily the first time an authenticated request arrives for an email
// address, and are never deleted by the application.
type User struct {
	shared.BaseEntity
	Email string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name  string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with the given email and optional display name
func NewUser(email, name string) (*User, error) {
	if err := validateUserEmail(email); err != nil {
		return nil, err
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Name:       name,
	}, nil
}

// Rename updates the display name
func (u *User) Rename(name string) {
	u.Name = name
	u.UpdatedAt = time.Now()
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateUserEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !userEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
