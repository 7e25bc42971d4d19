package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openland/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetAll(ctx context.Context) ([]domain.SiteSetting, error) {
	var settings []domain.SiteSetting
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

// Upsert inserts the key or overwrites its value.
func (r *SettingsRepository) Upsert(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&domain.SiteSetting{Key: key, Value: value}).Error
}
