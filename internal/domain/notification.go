package domain

import "time"

type NotificationType string

const (
	NotifNewMatch             NotificationType = "new_match"
	NotifMessage              NotificationType = "message"
	NotifLandVerified         NotificationType = "land_verified"
	NotifLandRejected         NotificationType = "land_rejected"
	NotifConsultationResponse NotificationType = "consultation_response"
)

// Notification is created only as a side effect of another action
// (moderation decision, message sent, consultation answered). IsRead
// flips false to true once and never back; records are never deleted
// automatically.
type Notification struct {
	ID            int64            `json:"id" gorm:"primaryKey"`
	UserID        int64            `json:"user_id" gorm:"not null;index"`
	Type          NotificationType `json:"type" gorm:"not null"`
	Title         string           `json:"title" gorm:"not null"`
	Message       string           `json:"message" gorm:"type:text;not null"`
	RelatedLandID *int64           `json:"related_land_id,omitempty"`
	IsRead        bool             `json:"is_read" gorm:"default:false"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
