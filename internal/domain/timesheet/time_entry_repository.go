package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TimeEntryRepository defines the interface for time entry persistence.
// All reads and writes are scoped to the owning user.
type TimeEntryRepository interface {
	// FindByIDForUser finds an entry by ID within the user's scope
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*TimeEntry, error)

	// FindAllForUser finds all entries for the user, newest start first
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]TimeEntry, error)

	// FindOpenForUser finds entries with no end time, newest start first
	FindOpenForUser(ctx context.Context, userID uuid.UUID) ([]TimeEntry, error)

	// FindCompletedInRange finds completed entries for a client whose
	// start time is at or after from and whose end time is at or before
	// to, ordered by start time ascending.
	FindCompletedInRange(ctx context.Context, userID, clientID uuid.UUID, from, to time.Time) ([]TimeEntry, error)

	// Save creates or updates an entry
	Save(ctx context.Context, entry *TimeEntry) error
}
