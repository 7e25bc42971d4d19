package notification

import (
	"context"
	"fmt"

	"openland/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// Service writes and reads notification records. The producer methods
// (LandVerified, LandRejected, NewMessage, ConsultationResponse) are
// called best-effort by other modules; they only build the record and
// report the write error, the caller decides to swallow it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LandVerified tells the owner their listing passed review and is now
// publicly visible.
func (s *Service) LandVerified(ctx context.Context, ownerID, landID int64, landTitle string) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:        ownerID,
		Type:          domain.NotifLandVerified,
		Title:         "تمت الموافقة على عقارك",
		Message:       fmt.Sprintf("تمت الموافقة على عقارك \"%s\" وأصبح معروضاً للجميع", landTitle),
		RelatedLandID: &landID,
	})
}

// LandRejected tells the owner their listing was rejected, with the
// moderation reason embedded in the message body.
func (s *Service) LandRejected(ctx context.Context, ownerID, landID int64, landTitle, reason string) error {
	msg := fmt.Sprintf("تم رفض عقارك \"%s\".", landTitle)
	if reason != "" {
		msg += " السبب: " + reason
	}
	return s.repo.Create(ctx, &domain.Notification{
		UserID:        ownerID,
		Type:          domain.NotifLandRejected,
		Title:         "تم رفض عقارك",
		Message:       msg,
		RelatedLandID: &landID,
	})
}

// NewMessage tells a user someone wrote to them.
func (s *Service) NewMessage(ctx context.Context, receiverID int64, senderName string, landID *int64) error {
	if senderName == "" {
		senderName = "مستخدم"
	}
	return s.repo.Create(ctx, &domain.Notification{
		UserID:        receiverID,
		Type:          domain.NotifMessage,
		Title:         "رسالة جديدة",
		Message:       "لديك رسالة جديدة من " + senderName,
		RelatedLandID: landID,
	})
}

// ConsultationResponse tells a user their consultation was answered.
func (s *Service) ConsultationResponse(ctx context.Context, userID int64, subject string) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotifConsultationResponse,
		Title:   "رد على استشارتك",
		Message: "تم الرد على استشارتك: " + subject,
	})
}

// ListResult is one page of a user's notifications.
type ListResult struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	TotalPages    int64                 `json:"total_pages"`
	CurrentPage   int                   `json:"current_page"`
	UnreadCount   int64                 `json:"unread_count"`
}

func (s *Service) List(ctx context.Context, userID int64, page, limit int) (*ListResult, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	list, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &ListResult{
		Notifications: list,
		Total:         total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		UnreadCount:   unread,
	}, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}
