package land

import (
	"context"

	"openland/internal/domain"
	"openland/internal/repository"
)

type LandRepository interface {
	Create(ctx context.Context, land *domain.Land) error
	Update(ctx context.Context, land *domain.Land) error
	GetByID(ctx context.Context, id int64) (*domain.Land, error)
	PublicList(ctx context.Context, f repository.PublicFilters) ([]domain.Land, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Land, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type MediaRepository interface {
	Create(ctx context.Context, m *domain.LandMedia) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
}
