package message

import (
	"context"

	"openland/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetConversation(ctx context.Context, userA, userB int64) ([]domain.Message, error)
	MarkConversationRead(ctx context.Context, senderID, readerID int64) error
	ListForUser(ctx context.Context, userID int64) ([]domain.Message, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier delivers the new-message notification. Delivery is best
// effort and never fails the send.
type Notifier interface {
	NewMessage(ctx context.Context, receiverID int64, senderName string, landID *int64) error
}
