package timesheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TimeEntry is one work session against a client. An entry with a nil
// EndTime is an open (running) timer; stopping it stamps the end time.
// All timer state lives in the persisted StartTime/EndTime pair, so a
// running timer survives reloads and crashes.
type TimeEntry struct {
	shared.OwnedEntity
	ClientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (TimeEntry) TableName() string {
	return "time_entries"
}

// NewTimeEntry creates a new open time entry starting at the given time
func NewTimeEntry(userID, clientID uuid.UUID, startTime time.Time) (*TimeEntry, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID is required")
	}
	if startTime.IsZero() {
		return nil, shared.NewDomainError("INVALID_START_TIME", "Start time is required")
	}

	return &TimeEntry{
		OwnedEntity: shared.NewOwnedEntity(userID),
		ClientID:    clientID,
		StartTime:   startTime,
	}, nil
}

// NewCompletedTimeEntry creates an entry with both endpoints already
// known, for sessions recorded after the fact.
func NewCompletedTimeEntry(userID, clientID uuid.UUID, startTime, endTime time.Time) (*TimeEntry, error) {
	entry, err := NewTimeEntry(userID, clientID, startTime)
	if err != nil {
		return nil, err
	}
	if endTime.IsZero() {
		return nil, shared.NewDomainError("INVALID_END_TIME", "End time is required")
	}
	entry.EndTime = &endTime
	return entry, nil
}

// Stop closes the entry by stamping the end time. The caller supplies
// the clock; no ordering against StartTime is enforced here.
func (e *TimeEntry) Stop(endTime time.Time) error {
	if endTime.IsZero() {
		return shared.NewDomainError("INVALID_END_TIME", "End time is required")
	}

	e.EndTime = &endTime
	e.UpdatedAt = time.Now()

	return nil
}

// IsOpen returns true while the timer is still running
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// IsCompleted returns true once the entry has an end time
func (e *TimeEntry) IsCompleted() bool {
	return e.EndTime != nil
}

// Hours returns the entry duration in hours as a decimal. Open entries
// report zero.
func (e *TimeEntry) Hours() decimal.Decimal {
	if e.EndTime == nil {
		return decimal.Zero
	}
	seconds := e.EndTime.Sub(e.StartTime).Seconds()
	return decimal.NewFromFloat(seconds).Div(decimal.NewFromInt(3600))
}

// EarningsAt returns the entry's earnings at the given hourly rate
func (e *TimeEntry) EarningsAt(hourlyRate decimal.Decimal) decimal.Decimal {
	return e.Hours().Mul(hourlyRate)
}
