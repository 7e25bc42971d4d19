package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *domain.Favorite) error
	Exists(ctx context.Context, userID, landID int64) (bool, error)
	Remove(ctx context.Context, userID, landID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

type LandRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Land, error)
}

// Service contains all business logic for favorites
type Service struct {
	favorites FavoriteRepository
	lands     LandRepository
}

func NewService(favorites FavoriteRepository, lands LandRepository) *Service {
	return &Service{favorites: favorites, lands: lands}
}

func (s *Service) Add(ctx context.Context, userID, landID int64) (*domain.Favorite, error) {
	if _, err := s.lands.GetByID(ctx, landID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandNotFound
		}
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, userID, landID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	fav := &domain.Favorite{UserID: userID, LandID: landID}
	if err := s.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *Service) Remove(ctx context.Context, userID, landID int64) error {
	err := s.favorites.Remove(ctx, userID, landID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}
