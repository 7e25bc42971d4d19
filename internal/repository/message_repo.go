package repository

import (
	"context"

	"gorm.io/gorm"

	"openland/internal/domain"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetConversation returns the full exchange between two users in
// chronological order, with sender/receiver identity and the listing
// the thread is about.
func (r *MessageRepository) GetConversation(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Preload("Sender", func(db *gorm.DB) *gorm.DB { return db.Select("id", "full_name", "email") }).
		Preload("Receiver", func(db *gorm.DB) *gorm.DB { return db.Select("id", "full_name", "email") }).
		Preload("Land", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkConversationRead marks everything the counterpart sent to the
// reader as read.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, senderID, readerID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", senderID, readerID, false).
		Update("is_read", true).Error
}

// ListForUser returns every message the user sent or received, newest
// first; the service groups them into conversations.
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Preload("Sender", func(db *gorm.DB) *gorm.DB { return db.Select("id", "full_name", "email") }).
		Preload("Receiver", func(db *gorm.DB) *gorm.DB { return db.Select("id", "full_name", "email") }).
		Order("created_at DESC").
		Find(&msgs).Error
	return msgs, err
}
