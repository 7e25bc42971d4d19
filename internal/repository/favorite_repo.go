package repository

import (
	"context"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, landID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND land_id = ?", userID, landID).
		Count(&count).Error
	return count > 0, err
}

// Remove deletes one favorite; zero affected rows means the favorite
// never existed.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, landID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND land_id = ?", userID, landID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Land").
		Preload("Land.Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
