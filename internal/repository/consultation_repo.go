package repository

import (
	"context"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *domain.ConsultationRequest) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id int64) (*domain.ConsultationRequest, error) {
	var c domain.ConsultationRequest
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultationRepository) Update(ctx context.Context, c *domain.ConsultationRequest) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ConsultationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ConsultationRequest, error) {
	var list []domain.ConsultationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *ConsultationRepository) ListAll(ctx context.Context) ([]domain.ConsultationRequest, error) {
	var list []domain.ConsultationRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
