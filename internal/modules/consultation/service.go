package consultation

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.ConsultationRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ConsultationRequest, error)
	Update(ctx context.Context, c *domain.ConsultationRequest) error
	ListByUser(ctx context.Context, userID int64) ([]domain.ConsultationRequest, error)
	ListAll(ctx context.Context) ([]domain.ConsultationRequest, error)
}

// Notifier tells the requester their consultation was answered.
// Delivery is best effort.
type Notifier interface {
	ConsultationResponse(ctx context.Context, userID int64, subject string) error
}

// Service contains all business logic for consultation requests
type Service struct {
	consultations ConsultationRepository
	notifier      Notifier
}

func NewService(consultations ConsultationRepository, notifier Notifier) *Service {
	return &Service{consultations: consultations, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateConsultationRequest) (*domain.ConsultationRequest, error) {
	consultation := &domain.ConsultationRequest{
		UserID:      userID,
		Type:        domain.ConsultationType(req.Type),
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.ConsultationPending,
	}
	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.ConsultationRequest, error) {
	return s.consultations.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.ConsultationRequest, error) {
	return s.consultations.ListAll(ctx)
}

// Respond records the administrator's answer. Without an explicit
// status the request is marked completed.
func (s *Service) Respond(ctx context.Context, id int64, req RespondRequest) (*domain.ConsultationRequest, error) {
	consultation, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	consultation.AdminResponse = req.AdminResponse
	if req.Status != "" {
		consultation.Status = domain.ConsultationStatus(req.Status)
	} else {
		consultation.Status = domain.ConsultationCompleted
	}

	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, err
	}

	if err := s.notifier.ConsultationResponse(ctx, consultation.UserID, consultation.Subject); err != nil {
		log.Printf("consultation notification failed: user=%d err=%v", consultation.UserID, err)
	}

	return consultation, nil
}
