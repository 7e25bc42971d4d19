package message

import (
	"time"

	"openland/internal/domain"
)

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required,gt=0"`
	Content    string `json:"content" binding:"required,min=1,max=2000"`
	LandID     *int64 `json:"land_id" binding:"omitempty,gt=0"`
}

// Conversation is one thread in the inbox, keyed by the other party.
type Conversation struct {
	PartnerID   int64           `json:"partner_id"`
	PartnerName string          `json:"partner_name"`
	LastMessage *domain.Message `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
