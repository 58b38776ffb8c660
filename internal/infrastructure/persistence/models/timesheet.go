package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/timesheet"
)

// TimeEntryModel is the persistence model for the TimeEntry domain entity.
// A NULL end_time marks an open (running) timer.
type TimeEntryModel struct {
	OwnedModel
	ClientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToDomain converts the persistence model to a domain TimeEntry entity.
func (m *TimeEntryModel) ToDomain() *timesheet.TimeEntry {
	return &timesheet.TimeEntry{
		OwnedEntity: m.ToDomainOwnedEntity(),
		ClientID:    m.ClientID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
	}
}

// FromDomain populates the persistence model from a domain TimeEntry entity.
func (m *TimeEntryModel) FromDomain(e *timesheet.TimeEntry) {
	m.FromDomainOwnedEntity(e.OwnedEntity)
	m.ClientID = e.ClientID
	m.StartTime = e.StartTime
	m.EndTime = e.EndTime
}

// TimeEntryModelFromDomain creates a new persistence model from a domain TimeEntry entity.
func TimeEntryModelFromDomain(e *timesheet.TimeEntry) *TimeEntryModel {
	m := &TimeEntryModel{}
	m.FromDomain(e)
	return m
}
