package settings

import (
	"context"

	"openland/internal/domain"
)

// Keys for the office contact block shown on the public site.
const (
	KeyOfficePhone    = "office_phone"
	KeyOfficeWhatsApp = "office_whatsapp"
	KeyOfficeEmail    = "office_email"
	KeyOfficeAddress  = "office_address"
)

type SettingsRepository interface {
	GetAll(ctx context.Context) ([]domain.SiteSetting, error)
	Upsert(ctx context.Context, key, value string) error
}

type UpdateSettingsRequest struct {
	OfficePhone    *string `json:"office_phone"`
	OfficeWhatsApp *string `json:"office_whatsapp"`
	OfficeEmail    *string `json:"office_email" binding:"omitempty,email"`
	OfficeAddress  *string `json:"office_address"`
}

// Service contains all business logic for site settings
type Service struct {
	settings SettingsRepository
}

func NewService(settings SettingsRepository) *Service {
	return &Service{settings: settings}
}

// GetAll returns the settings flattened into a key/value map.
func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	list, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(list))
	for _, setting := range list {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

// Update upserts only the keys present in the request.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (map[string]string, error) {
	updates := map[string]*string{
		KeyOfficePhone:    req.OfficePhone,
		KeyOfficeWhatsApp: req.OfficeWhatsApp,
		KeyOfficeEmail:    req.OfficeEmail,
		KeyOfficeAddress:  req.OfficeAddress,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := s.settings.Upsert(ctx, key, *value); err != nil {
			return nil, err
		}
	}
	return s.GetAll(ctx)
}
