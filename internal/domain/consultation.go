package domain

import "time"

type ConsultationType string

const (
	ConsultationLegal        ConsultationType = "legal"
	ConsultationAgricultural ConsultationType = "agricultural"
)

type ConsultationStatus string

const (
	ConsultationPending    ConsultationStatus = "pending"
	ConsultationInProgress ConsultationStatus = "in_progress"
	ConsultationCompleted  ConsultationStatus = "completed"
	ConsultationCancelled  ConsultationStatus = "cancelled"
)

// ConsultationRequest is a question from a user to the office, answered
// by an administrator.
type ConsultationRequest struct {
	ID            int64              `json:"id" gorm:"primaryKey"`
	UserID        int64              `json:"user_id" gorm:"not null;index"`
	Type          ConsultationType   `json:"type" gorm:"not null"`
	Subject       string             `json:"subject" gorm:"not null"`
	Description   string             `json:"description" gorm:"type:text;not null"`
	Status        ConsultationStatus `json:"status" gorm:"default:pending"`
	AdminResponse string             `json:"admin_response,omitempty" gorm:"type:text"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (ConsultationRequest) TableName() string { return "consultation_requests" }
