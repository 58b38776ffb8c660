package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// EarningsService computes dashboard aggregates from the time entry
// and client snapshot. The computation is a pure function of that
// snapshot plus the current clock; nothing is cached or persisted.
type EarningsService struct {
	entryRepo  timesheet.TimeEntryRepository
	clientRepo partner.ClientRepository
	now        func() time.Time
}

// NewEarningsService creates a new EarningsService
func NewEarningsService(entryRepo timesheet.TimeEntryRepository, clientRepo partner.ClientRepository) *EarningsService {
	return &EarningsService{
		entryRepo:  entryRepo,
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// Dashboard aggregates the user's completed entries into earnings
// totals. A user with no entries gets zeroed totals and empty lists.
func (s *EarningsService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	entries, err := s.entryRepo.FindAllForUser(ctx, userID)
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

	now := s.now()
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, -1, 0)

	totalEarnings := decimal.Zero
	weeklyEarnings := decimal.Zero
	monthlyEarnings := decimal.Zero

	// byClient preserves first-seen order from the descending entry scan
	type clientTotals struct {
		name     string
		hours    decimal.Decimal
		earnings decimal.Decimal
	}
	groupOrder := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID]*clientTotals)

	recentEntries := make([]RecentEntryResponse, 0, recentEntryLimit)

	for i := range entries {
		entry := &entries[i]
		if !entry.IsCompleted() {
			continue
		}

		client := clientsByID[entry.ClientID]
		if client == nil {
			continue
		}

		hours := entry.Hours()
		earnings := hours.Mul(client.HourlyRate)

		totalEarnings = totalEarnings.Add(earnings)
		if entry.StartTime.After(weekStart) {
			weeklyEarnings = weeklyEarnings.Add(earnings)
		}
		if entry.StartTime.After(monthStart) {
			monthlyEarnings = monthlyEarnings.Add(earnings)
		}

		group, ok := groups[entry.ClientID]
		if !ok {
			group = &clientTotals{name: client.Name}
			groups[entry.ClientID] = group
			groupOrder = append(groupOrder, entry.ClientID)
		}
		group.hours = group.hours.Add(hours)
		group.earnings = group.earnings.Add(earnings)

		if len(recentEntries) < recentEntryLimit {
			recentEntries = append(recentEntries, RecentEntryResponse{
				ID:         entry.ID,
				ClientName: client.Name,
				StartTime:  entry.StartTime,
				EndTime:    entry.EndTime,
				Hours:      round2(hours),
				Earnings:   round2(earnings),
			})
		}
	}

	byClient := make([]ClientEarningsResponse, 0, len(groupOrder))
	for _, clientID := range groupOrder {
		group := groups[clientID]
		byClient = append(byClient, ClientEarningsResponse{
			ClientName: group.name,
			Hours:      round2(group.hours),
			Earnings:   round2(group.earnings),
		})
	}

	return &DashboardResponse{
		TotalEarnings:   round2(totalEarnings),
		WeeklyEarnings:  round2(weeklyEarnings),
		MonthlyEarnings: round2(monthlyEarnings),
		ByClient:        byClient,
		RecentEntries:   recentEntries,
	}, nil
}
