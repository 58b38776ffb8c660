package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockInvoiceRepository creates a GormInvoiceRepository with a mocked SQL connection
func newMockInvoiceRepository(t *testing.T) (*GormInvoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormInvoiceRepository(gormDB), mock, mockDB
}

func TestGormInvoiceRepository_FindByIDForUser(t *testing.T) {
	t.Run("finds invoice within user scope", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		userID := uuid.New()
		clientID := uuid.New()
		periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		periodEnd := time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "user_id", "client_id", "period_start", "period_end", "total_hours", "total_amount", "is_paid"}).
			AddRow(invoiceID, userID, clientID, periodStart, periodEnd, decimal.NewFromFloat(10.5), decimal.NewFromInt(1050), false)

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, invoiceID, 1).
			WillReturnRows(rows)

		invoice, err := repo.FindByIDForUser(context.Background(), userID, invoiceID)

		assert.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, invoiceID, invoice.ID)
		assert.True(t, invoice.TotalHours.Equal(decimal.NewFromFloat(10.5)))
		assert.False(t, invoice.IsPaid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for another user's invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, invoiceID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		invoice, err := repo.FindByIDForUser(context.Background(), userID, invoiceID)

		assert.Nil(t, invoice)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_FindAllForUser(t *testing.T) {
	t.Run("returns invoices newest first", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		clientID := uuid.New()
		periodStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		periodEnd := time.Date(2026, 2, 28, 23, 59, 59, 999000000, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "user_id", "client_id", "period_start", "period_end", "total_hours", "total_amount", "is_paid"}).
			AddRow(uuid.New(), userID, clientID, periodStart, periodEnd, decimal.NewFromInt(8), decimal.NewFromInt(800), true).
			AddRow(uuid.New(), userID, clientID, periodStart, periodEnd, decimal.NewFromInt(4), decimal.NewFromInt(400), false)

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE user_id = \$1 ORDER BY created_at DESC`).
			WithArgs(userID).
			WillReturnRows(rows)

		invoices, err := repo.FindAllForUser(context.Background(), userID)

		assert.NoError(t, err)
		require.Len(t, invoices, 2)
		assert.True(t, invoices[0].IsPaid)
		assert.False(t, invoices[1].IsPaid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
