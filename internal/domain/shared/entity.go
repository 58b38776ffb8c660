package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity extends BaseEntity with a per-user ownership scope.
// Every Client, TimeEntry and Invoice belongs to exactly one user, and
// repositories filter by UserID on every query.
type OwnedEntity struct {
	BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewOwnedEntity creates a new entity owned by the given user
func NewOwnedEntity(userID uuid.UUID) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		UserID:     userID,
	}
}

// GetUserID returns the owning user ID
func (e *OwnedEntity) GetUserID() uuid.UUID {
	return e.UserID
}
