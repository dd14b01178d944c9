package repositories

import (
	"context"
	"errors"
	"time"

	"vetcare-web/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorageRepository stores browser session storage in MySQL
type GormStorageRepository struct {
	db *gorm.DB
}

// NewStorageRepository creates a new MySQL storage repository
func NewStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// Get gets a value by key
func (r *GormStorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.BrowserStorage
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Value, true, nil
}

// Set inserts or overwrites a key
func (r *GormStorageRepository) Set(ctx context.Context, key, value string) error {
	row := models.BrowserStorage{StorageKey: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

// Delete removes the given keys
func (r *GormStorageRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("storage_key IN ?", keys).
		Delete(&models.BrowserStorage{}).Error
}

// DeleteStale deletes entries not updated since cutoff (cleanup job)
func (r *GormStorageRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.BrowserStorage{})
	return result.RowsAffected, result.Error
}
