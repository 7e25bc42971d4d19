package admin

import (
	"context"

	"openland/internal/domain"
)

type LandRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Land, error)
	GetByIDForAdmin(ctx context.Context, id int64) (*domain.Land, error)
	Update(ctx context.Context, land *domain.Land) error
	Delete(ctx context.Context, id int64) error
	ListPending(ctx context.Context) ([]domain.Land, error)
	AdminSearch(ctx context.Context, search string) ([]domain.Land, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.LandStatus) (int64, error)
}

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
}

// Notifier delivers moderation outcomes to listing owners. All calls
// are best-effort from the service's point of view: a failed delivery
// is logged and never affects the moderation write.
type Notifier interface {
	LandVerified(ctx context.Context, ownerID, landID int64, landTitle string) error
	LandRejected(ctx context.Context, ownerID, landID int64, landTitle, reason string) error
}
