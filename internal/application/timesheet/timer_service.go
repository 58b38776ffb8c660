package timesheet

import (
	"context"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/timesheet"
)

// TimerService handles timer start/stop and open-entry listing. A
// timer is just a persisted time entry with no end time, so there is
// no in-memory state here.
type TimerService struct {
	entryRepo  timesheet.TimeEntryRepository
	clientRepo partner.ClientRepository
}

// NewTimerService creates a new TimerService
func NewTimerService(entryRepo timesheet.TimeEntryRepository, clientRepo partner.ClientRepository) *TimerService {
	return &TimerService{
		entryRepo:  entryRepo,
		clientRepo: clientRepo,
	}
}

// Start creates a new time entry for the user. The client must be
// owned by the user. When EndTime is set the entry is recorded as
// already completed.
func (s *TimerService) Start(ctx context.Context, userID uuid.UUID, req StartTimerRequest) (*TimeEntryResponse, error) {
	client, err := s.clientRepo.FindByIDForUser(ctx, userID, req.ClientID)
	if err != nil {
		return nil, err
	}

	var entry *timesheet.TimeEntry
	if req.EndTime != nil {
		entry, err = timesheet.NewCompletedTimeEntry(userID, client.ID, req.StartTime, *req.EndTime)
	} else {
		entry, err = timesheet.NewTimeEntry(userID, client.ID, req.StartTime)
	}
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToTimeEntryResponseWithClient(entry, client)
	return &response, nil
}

// Stop stamps the end time on an entry owned by the user
func (s *TimerService) Stop(ctx context.Context, userID, entryID uuid.UUID, req StopTimerRequest) (*TimeEntryResponse, error) {
	entry, err := s.entryRepo.FindByIDForUser(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := entry.Stop(req.EndTime); err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToTimeEntryResponse(entry)
	return &response, nil
}

// ListOpen returns the user's running timers, newest first, with the
// client summary joined for display
func (s *TimerService) ListOpen(ctx context.Context, userID uuid.UUID) ([]TimeEntryResponse, error) {
	entries, err := s.entryRepo.FindOpenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	clientsByID := make(map[uuid.UUID]*partner.Client, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}

	responses := make([]TimeEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToTimeEntryResponseWithClient(&entries[i], clientsByID[entries[i].ClientID]))
	}
	return responses, nil
}
