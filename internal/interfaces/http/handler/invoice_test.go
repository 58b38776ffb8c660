package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/hourbill/backend/internal/application/billing"
	identityapp "github.com/hourbill/backend/internal/application/identity"
	"github.com/hourbill/backend/internal/domain/billing"
	"github.com/hourbill/backend/internal/domain/partner"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/hourbill/backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceRepository implements billing.InvoiceRepository for testing
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func newInvoiceRouter(user *identityapp.ResolvedUser, invoiceRepo *MockInvoiceRepository, clientRepo *MockClientRepository, entryRepo *MockTimeEntryRepository) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", authAs(user))
	NewInvoiceHandler(billingapp.NewInvoiceService(invoiceRepo, clientRepo, entryRepo)).RegisterRoutes(api)
	return router
}

func completedEntryBetween(t *testing.T, userID, clientID uuid.UUID, start time.Time, hours int) timesheet.TimeEntry {
	t.Helper()
	entry, err := timesheet.NewCompletedTimeEntry(userID, clientID, start, start.Add(time.Duration(hours)*time.Hour))
	require.NoError(t, err)
	return *entry
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	client := mustNewClient(t, user.ID, "Acme Corp", 100)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.UTC)

	clientRepo.On("FindByIDForUser", mock.Anything, user.ID, client.ID).Return(client, nil)
	entryRepo.On("FindCompletedInRange", mock.Anything, user.ID, client.ID, from, to).
		Return([]timesheet.TimeEntry{
			completedEntryBetween(t, user.ID, client.ID, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), 6),
			completedEntryBetween(t, user.ID, client.ID, time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC), 4),
		}, nil)
	invoiceRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/api/invoices", map[string]any{
		"clientId":  client.ID.String(),
		"startDate": "2026-03-01",
		"endDate":   "2026-03-31",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	invoice := body["invoice"].(map[string]any)
	assert.Equal(t, float64(10), invoice["totalHours"])
	assert.Equal(t, float64(1000), invoice["totalAmount"])
	assert.Equal(t, false, invoice["isPaid"])
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceHandler_Create_EmptyRange(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	client := mustNewClient(t, user.ID, "Acme Corp", 100)
	clientRepo.On("FindByIDForUser", mock.Anything, user.ID, client.ID).Return(client, nil)
	entryRepo.On("FindCompletedInRange", mock.Anything, user.ID, client.ID, mock.Anything, mock.Anything).
		Return([]timesheet.TimeEntry{}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/invoices", map[string]any{
		"clientId":  client.ID.String(),
		"startDate": "2026-04-01",
		"endDate":   "2026-04-30",
	})

	requireErrorBody(t, w, http.StatusBadRequest, "No time entries in this range")
	invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Create_UnknownClient(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	clientID := uuid.New()
	clientRepo.On("FindByIDForUser", mock.Anything, user.ID, clientID).Return(nil, shared.ErrNotFound)

	w := doJSON(t, router, http.MethodPost, "/api/invoices", map[string]any{
		"clientId":  clientID.String(),
		"startDate": "2026-03-01",
		"endDate":   "2026-03-31",
	})

	requireErrorBody(t, w, http.StatusNotFound, "Resource not found")
}

func TestInvoiceHandler_Get_ReturnsDetail(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	client := mustNewClient(t, user.ID, "Acme Corp", 100)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.UTC)

	invoice, err := billing.NewInvoice(user.ID, client.ID, from, to,
		decimal.NewFromInt(2), decimal.NewFromInt(200))
	require.NoError(t, err)

	invoiceRepo.On("FindByIDForUser", mock.Anything, user.ID, invoice.ID).Return(invoice, nil)
	clientRepo.On("FindByIDForUser", mock.Anything, user.ID, client.ID).Return(client, nil)
	entryRepo.On("FindCompletedInRange", mock.Anything, user.ID, client.ID, from, to).
		Return([]timesheet.TimeEntry{
			completedEntryBetween(t, user.ID, client.ID, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), 2),
		}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/invoices/"+invoice.ID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	detail := body["invoice"].(map[string]any)
	assert.Equal(t, float64(2), detail["totalHours"])
	entries := body["entries"].([]any)
	require.Len(t, entries, 1)
	first := entries[0].(map[string]any)
	assert.Equal(t, float64(2), first["hours"])
	assert.Equal(t, float64(200), first["amount"])
}

func TestInvoiceHandler_Get_NotFound(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	invoiceID := uuid.New()
	invoiceRepo.On("FindByIDForUser", mock.Anything, user.ID, invoiceID).Return(nil, shared.ErrNotFound)

	w := doJSON(t, router, http.MethodGet, "/api/invoices/"+invoiceID.String(), nil)

	requireErrorBody(t, w, http.StatusNotFound, "Resource not found")
}

func TestInvoiceHandler_List_EmbedsClient(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	client := mustNewClient(t, user.ID, "Acme Corp", 100)
	invoice, err := billing.NewInvoice(user.ID, client.ID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.UTC),
		decimal.NewFromInt(10), decimal.NewFromInt(1000))
	require.NoError(t, err)

	invoiceRepo.On("FindAllForUser", mock.Anything, user.ID).Return([]billing.Invoice{*invoice}, nil)
	clientRepo.On("FindAllForUser", mock.Anything, user.ID).Return([]partner.Client{*client}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/invoices", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	invoices := body["invoices"].([]any)
	require.Len(t, invoices, 1)
	first := invoices[0].(map[string]any)
	embedded := first["client"].(map[string]any)
	assert.Equal(t, "Acme Corp", embedded["name"])
}

func TestInvoiceHandler_SetPaid_Toggle(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	client := mustNewClient(t, user.ID, "Acme Corp", 100)
	invoice, err := billing.NewInvoice(user.ID, client.ID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.UTC),
		decimal.NewFromInt(10), decimal.NewFromInt(1000))
	require.NoError(t, err)

	invoiceRepo.On("FindByIDForUser", mock.Anything, user.ID, invoice.ID).Return(invoice, nil)
	invoiceRepo.On("Save", mock.Anything, invoice).Return(nil)

	w := doJSON(t, router, http.MethodPatch, "/api/invoices/"+invoice.ID.String(), map[string]any{
		"isPaid": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invoice updated", body["message"])
	assert.True(t, invoice.IsPaid)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceHandler_SetPaid_MissingFlag(t *testing.T) {
	user := testUser()
	invoiceRepo := new(MockInvoiceRepository)
	clientRepo := new(MockClientRepository)
	entryRepo := new(MockTimeEntryRepository)
	router := newInvoiceRouter(user, invoiceRepo, clientRepo, entryRepo)

	w := doJSON(t, router, http.MethodPatch, "/api/invoices/"+uuid.New().String(), map[string]any{})

	requireErrorBody(t, w, http.StatusBadRequest, "Missing required field: isPaid")
}
