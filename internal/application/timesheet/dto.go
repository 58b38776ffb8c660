package timesheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/timesheet"
)

// StartTimerRequest represents a request to start a timer. EndTime may
// be supplied to record an already-finished session in one call.
type StartTimerRequest struct {
	ClientID  uuid.UUID  `json:"clientId" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
}

// StopTimerRequest represents a request to stop a running timer
type StopTimerRequest struct {
	EndTime time.Time `json:"endTime" binding:"required"`
}

// EntryClient is the client summary embedded in time entry responses
type EntryClient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourlyRate"`
}

// TimeEntryResponse represents a time entry in API responses
type TimeEntryResponse struct {
	ID        uuid.UUID    `json:"id"`
	ClientID  uuid.UUID    `json:"clientId"`
	StartTime time.Time    `json:"startTime"`
	EndTime   *time.Time   `json:"endTime"`
	CreatedAt time.Time    `json:"createdAt"`
	Client    *EntryClient `json:"client,omitempty"`
}

// ToTimeEntryResponse converts a domain entry to a response DTO
func ToTimeEntryResponse(entry *timesheet.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:        entry.ID,
		ClientID:  entry.ClientID,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		CreatedAt: entry.CreatedAt,
	}
}

// ToTimeEntryResponseWithClient converts a domain entry and its client
// to a response DTO with the client summary embedded
func ToTimeEntryResponseWithClient(entry *timesheet.TimeEntry, client *partner.Client) TimeEntryResponse {
	response := ToTimeEntryResponse(entry)
	if client != nil {
		response.Client = &EntryClient{
			ID:         client.ID,
			Name:       client.Name,
			HourlyRate: client.HourlyRate.InexactFloat64(),
		}
	}
	return response
}
