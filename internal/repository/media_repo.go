package repository

import (
	"context"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.LandMedia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) CountByLand(ctx context.Context, landID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.LandMedia{}).
		Where("land_id = ?", landID).
		Count(&count).Error
	return count, err
}
