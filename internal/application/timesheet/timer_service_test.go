package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/hourbill/backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTimeEntryRepository is a mock implementation of TimeEntryRepository
type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*timesheet.TimeEntry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timesheet.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]timesheet.TimeEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]timesheet.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) FindOpenForUser(ctx context.Context, userID uuid.UUID) ([]timesheet.TimeEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]timesheet.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) FindCompletedInRange(ctx context.Context, userID, clientID uuid.UUID, from, to time.Time) ([]timesheet.TimeEntry, error) {
	args := m.Called(ctx, userID, clientID, from, to)
	return args.Get(0).([]timesheet.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) Save(ctx context.Context, entry *timesheet.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]partner.Client, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func newTestClient(t *testing.T, userID uuid.UUID) *partner.Client {
	t.Helper()
	client, err := partner.NewClient(userID, "Acme Corp", "billing@acme.test", decimal.NewFromInt(100))
	require.NoError(t, err)
	return client
}

func TestTimerService_Start_OpenEntry(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	client := newTestClient(t, userID)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mockClients.On("FindByIDForUser", ctx, userID, client.ID).Return(client, nil)
	mockEntries.On("Save", ctx, mock.AnythingOfType("*timesheet.TimeEntry")).Return(nil)

	result, err := service.Start(ctx, userID, StartTimerRequest{
		ClientID:  client.ID,
		StartTime: start,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, client.ID, result.ClientID)
	assert.Equal(t, start, result.StartTime)
	assert.Nil(t, result.EndTime)
	require.NotNil(t, result.Client)
	assert.Equal(t, "Acme Corp", result.Client.Name)
	mockEntries.AssertExpectations(t)
}

func TestTimerService_Start_CompletedEntry(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	client := newTestClient(t, userID)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mockClients.On("FindByIDForUser", ctx, userID, client.ID).Return(client, nil)
	mockEntries.On("Save", ctx, mock.AnythingOfType("*timesheet.TimeEntry")).Return(nil)

	result, err := service.Start(ctx, userID, StartTimerRequest{
		ClientID:  client.ID,
		StartTime: start,
		EndTime:   &end,
	})

	require.NoError(t, err)
	require.NotNil(t, result.EndTime)
	assert.Equal(t, end, *result.EndTime)
}

func TestTimerService_Start_UnknownClient(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	clientID := uuid.New()

	mockClients.On("FindByIDForUser", ctx, userID, clientID).Return(nil, shared.ErrNotFound)

	result, err := service.Start(ctx, userID, StartTimerRequest{
		ClientID:  clientID,
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockEntries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTimerService_Stop_Success(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	entry, err := timesheet.NewTimeEntry(userID, uuid.New(), start)
	require.NoError(t, err)

	mockEntries.On("FindByIDForUser", ctx, userID, entry.ID).Return(entry, nil)
	mockEntries.On("Save", ctx, entry).Return(nil)

	end := start.Add(90 * time.Minute)
	result, err := service.Stop(ctx, userID, entry.ID, StopTimerRequest{EndTime: end})

	require.NoError(t, err)
	require.NotNil(t, result.EndTime)
	assert.Equal(t, end, *result.EndTime)
	mockEntries.AssertExpectations(t)
}

func TestTimerService_Stop_NotFound(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	mockEntries.On("FindByIDForUser", ctx, userID, entryID).Return(nil, shared.ErrNotFound)

	result, err := service.Stop(ctx, userID, entryID, StopTimerRequest{EndTime: time.Now()})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestTimerService_ListOpen_JoinsClients(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()
	client := newTestClient(t, userID)
	entry, err := timesheet.NewTimeEntry(userID, client.ID, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	mockEntries.On("FindOpenForUser", ctx, userID).Return([]timesheet.TimeEntry{*entry}, nil)
	mockClients.On("FindAllForUser", ctx, userID).Return([]partner.Client{*client}, nil)

	result, err := service.ListOpen(ctx, userID)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Client)
	assert.Equal(t, "Acme Corp", result[0].Client.Name)
	assert.Equal(t, 100.0, result[0].Client.HourlyRate)
}

func TestTimerService_ListOpen_Empty(t *testing.T) {
	mockEntries := new(MockTimeEntryRepository)
	mockClients := new(MockClientRepository)
	service := NewTimerService(mockEntries, mockClients)

	ctx := context.Background()
	userID := uuid.New()

	mockEntries.On("FindOpenForUser", ctx, userID).Return([]timesheet.TimeEntry{}, nil)
	mockClients.On("FindAllForUser", ctx, userID).Return([]partner.Client{}, nil)

	result, err := service.ListOpen(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
