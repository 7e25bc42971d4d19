package land

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"openland/internal/domain"
	"openland/internal/repository"
	"openland/internal/upload"
)

// Service owns the seller side of the listing lifecycle: submission and
// resubmission. Every operation here that mutates a listing leaves it
// in status pending; moderation outcomes are the admin module's job.
type Service struct {
	lands     LandRepository
	users     UserRepository
	media     MediaRepository
	documents DocumentRepository
}

func NewService(
	lands LandRepository,
	users UserRepository,
	media MediaRepository,
	documents DocumentRepository,
) *Service {
	return &Service{
		lands:     lands,
		users:     users,
		media:     media,
		documents: documents,
	}
}

// Create submits a new listing. The listing always starts pending;
// attached files become Media and Document records in submission order.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateLandInput, files []upload.StoredFile) (*domain.Land, error) {
	// Backfill the account phone from the listing contact if the
	// account has none yet.
	if in.Phone != "" {
		u, err := s.users.GetByID(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if u.Phone == "" {
			u.Phone = in.Phone
			if err := s.users.Update(ctx, u); err != nil {
				return nil, err
			}
		}
	}

	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = domain.ServiceSale
	}

	land := &domain.Land{
		OwnerID:      ownerID,
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		AreaM2:       in.AreaM2,
		Type:         in.Type,
		ServiceType:  serviceType,
		Wilaya:       in.Wilaya,
		Baladia:      in.Baladia,
		ContactPhone: in.Phone,
		ContactEmail: in.Email,
		Lat:          in.Lat,
		Lng:          in.Lng,
		Status:       domain.StatusPending,
	}

	if err := s.lands.Create(ctx, land); err != nil {
		return nil, err
	}

	if err := s.attachFiles(ctx, land.ID, files); err != nil {
		return nil, err
	}

	return land, nil
}

// UpdateMine applies an owner's partial update and resubmits the
// listing for review. The status reset to pending is unconditional: it
// happens even for a no-op update, and any attached files are appended
// to the existing collections.
func (s *Service) UpdateMine(ctx context.Context, callerID, landID int64, in UpdateLandInput, files []upload.StoredFile) (*domain.Land, error) {
	land, err := s.lands.GetByID(ctx, landID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if land.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if in.Title != "" {
		land.Title = in.Title
	}
	if in.Description != "" {
		land.Description = in.Description
	}
	if in.Price != nil {
		land.Price = *in.Price
	}
	if in.AreaM2 != nil {
		land.AreaM2 = *in.AreaM2
	}
	if in.Type != "" {
		land.Type = domain.LandType(in.Type)
	}
	if in.ServiceType != "" {
		land.ServiceType = domain.ServiceType(in.ServiceType)
	}
	if in.Wilaya != "" {
		land.Wilaya = in.Wilaya
	}
	if in.Baladia != "" {
		land.Baladia = in.Baladia
	}

	// Any self-edit forces re-review.
	land.Status = domain.StatusPending
	land.RejectionReason = ""

	if err := s.lands.Update(ctx, land); err != nil {
		return nil, err
	}

	if err := s.attachFiles(ctx, land.ID, files); err != nil {
		return nil, err
	}

	return land, nil
}

// PublicList returns only verified listings; see repository.PublicFilters
// for the predicate semantics.
func (s *Service) PublicList(ctx context.Context, f repository.PublicFilters) ([]domain.Land, error) {
	return s.lands.PublicList(ctx, f)
}

// GetPublic returns one listing with media only. Owner identity is not
// part of the public view.
func (s *Service) GetPublic(ctx context.Context, id int64) (*domain.Land, error) {
	land, err := s.lands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return land, nil
}

// ListMine returns the caller's listings in every status.
func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]domain.Land, error) {
	return s.lands.ListByOwner(ctx, ownerID)
}

// attachFiles appends stored files to the listing's collections. Media
// order restarts per submission batch; existing records are untouched.
func (s *Service) attachFiles(ctx context.Context, landID int64, files []upload.StoredFile) error {
	imageOrder, videoOrder := 0, 0
	for _, f := range files {
		switch f.Kind {
		case upload.KindImage:
			m := &domain.LandMedia{
				LandID:    landID,
				URL:       f.URL,
				MediaType: domain.MediaImage,
				SortOrder: imageOrder,
			}
			imageOrder++
			if err := s.media.Create(ctx, m); err != nil {
				return err
			}
		case upload.KindVideo:
			m := &domain.LandMedia{
				LandID:    landID,
				URL:       f.URL,
				MediaType: domain.MediaVideo,
				SortOrder: videoOrder,
			}
			videoOrder++
			if err := s.media.Create(ctx, m); err != nil {
				return err
			}
		case upload.KindDocument:
			d := &domain.Document{
				LandID:  landID,
				URL:     f.URL,
				DocType: domain.DocOwnershipDeed,
			}
			if err := s.documents.Create(ctx, d); err != nil {
				return err
			}
		}
	}
	return nil
}
