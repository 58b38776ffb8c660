package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/hourbill/backend/internal/domain/timesheet"
	"github.com/hourbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTimeEntryRepository implements TimeEntryRepository using GORM
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GormTimeEntryRepository
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// FindByIDForUser finds an entry by ID within the user's scope
func (r *GormTimeEntryRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*timesheet.TimeEntry, error) {
	var model models.TimeEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser finds all entries for the user, newest start first
func (r *GormTimeEntryRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]timesheet.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// FindOpenForUser finds entries with no end time, newest start first
func (r *GormTimeEntryRepository) FindOpenForUser(ctx context.Context, userID uuid.UUID) ([]timesheet.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// FindCompletedInRange finds completed entries for a client inside the
// given window, ordered by start time ascending.
func (r *GormTimeEntryRepository) FindCompletedInRange(ctx context.Context, userID, clientID uuid.UUID, from, to time.Time) ([]timesheet.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_id = ? AND end_time IS NOT NULL AND start_time >= ? AND end_time <= ?",
			userID, clientID, from, to).
		Order("start_time ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// Save creates or updates an entry
func (r *GormTimeEntryRepository) Save(ctx context.Context, entry *timesheet.TimeEntry) error {
	model := models.TimeEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

func toDomainEntries(entryModels []models.TimeEntryModel) []timesheet.TimeEntry {
	entries := make([]timesheet.TimeEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries
}

// Ensure GormTimeEntryRepository implements TimeEntryRepository
var _ timesheet.TimeEntryRepository = (*GormTimeEntryRepository)(nil)
