package admin

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"openland/internal/domain"
)

// Service owns the moderation side of the listing lifecycle: the
// pending queue, verify/reject decisions, authoritative field edits and
// deletion. Admin edits never change a listing's status; only the
// moderation decision does.
type Service struct {
	lands     LandRepository
	users     UserRepository
	documents DocumentRepository
	notifs    Notifier
}

func NewService(
	lands LandRepository,
	users UserRepository,
	documents DocumentRepository,
	notifs Notifier,
) *Service {
	return &Service{
		lands:     lands,
		users:     users,
		documents: documents,
		notifs:    notifs,
	}
}

// ListPending returns the review queue, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.Land, error) {
	return s.lands.ListPending(ctx)
}

// GetLand returns the full moderation view of one listing: owner
// identity, media and documents.
func (s *Service) GetLand(ctx context.Context, id int64) (*domain.Land, error) {
	land, err := s.lands.GetByIDForAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return land, nil
}

// Moderate applies a verify/reject decision. The decision write and the
// request succeed or fail together; the owner notification afterwards
// is best-effort and a failure there is logged and swallowed.
func (s *Service) Moderate(ctx context.Context, landID int64, statusStr, reason string) (*domain.Land, error) {
	status, ok := domain.ParseModerationStatus(statusStr)
	if !ok {
		return nil, ErrInvalidStatus
	}

	reason = strings.TrimSpace(reason)
	if status == domain.StatusRejected && reason == "" {
		return nil, ErrReasonRequired
	}

	land, err := s.lands.GetByID(ctx, landID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	land.Status = status
	if status == domain.StatusRejected {
		land.RejectionReason = reason
	} else {
		land.RejectionReason = ""
	}

	if err := s.lands.Update(ctx, land); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		var notifErr error
		if status == domain.StatusVerified {
			notifErr = s.notifs.LandVerified(ctx, land.OwnerID, land.ID, land.Title)
		} else {
			notifErr = s.notifs.LandRejected(ctx, land.OwnerID, land.ID, land.Title, reason)
		}
		if notifErr != nil {
			log.Printf("moderation notification failed: land_id=%d status=%s err=%v", land.ID, status, notifErr)
		}
	}

	return land, nil
}

// Search matches a free-text query against title, wilaya and baladia
// over all statuses.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Land, error) {
	return s.lands.AdminSearch(ctx, query)
}

// UpdateLand applies an authoritative admin edit. Unlike an owner edit
// it does not reset the status: admin changes need no re-review.
func (s *Service) UpdateLand(ctx context.Context, landID int64, req UpdateLandRequest) (*domain.Land, error) {
	land, err := s.lands.GetByID(ctx, landID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		land.Title = req.Title
	}
	if req.Description != "" {
		land.Description = req.Description
	}
	if req.Price != nil {
		land.Price = *req.Price
	}
	if req.AreaM2 != nil {
		land.AreaM2 = *req.AreaM2
	}
	if req.Type != "" {
		land.Type = domain.LandType(req.Type)
	}
	if req.ServiceType != "" {
		land.ServiceType = domain.ServiceType(req.ServiceType)
	}
	if req.Wilaya != "" {
		land.Wilaya = req.Wilaya
	}
	if req.Baladia != "" {
		land.Baladia = req.Baladia
	}

	if err := s.lands.Update(ctx, land); err != nil {
		return nil, err
	}
	return land, nil
}

// DeleteLand removes a listing with its media and documents.
func (s *Service) DeleteLand(ctx context.Context, landID int64) error {
	if _, err := s.lands.GetByID(ctx, landID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.lands.Delete(ctx, landID)
}

// VerifyDocument sets the independent verification flag on an ownership
// document.
func (s *Service) VerifyDocument(ctx context.Context, docID int64, isVerified bool) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc.IsVerified = isVerified
	now := time.Now()
	doc.VerifiedAt = &now

	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Stats returns the dashboard counters.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalLands, err := s.lands.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.lands.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	verified, err := s.lands.CountByStatus(ctx, domain.StatusVerified)
	if err != nil {
		return nil, err
	}
	rejected, err := s.lands.CountByStatus(ctx, domain.StatusRejected)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalUsers:    totalUsers,
		TotalLands:    totalLands,
		PendingLands:  pending,
		VerifiedLands: verified,
		RejectedLands: rejected,
	}, nil
}
