package message

import (
	"context"
	"errors"
	"log"
	"sort"

	"gorm.io/gorm"

	"openland/internal/domain"
)

// Service contains all business logic for direct messaging
type Service struct {
	messages MessageRepository
	users    UserRepository
	notifier Notifier
}

func NewService(messages MessageRepository, users UserRepository, notifier Notifier) *Service {
	return &Service{messages: messages, users: users, notifier: notifier}
}

// Send stores a message and notifies the receiver. The notification is
// best effort; a delivery failure only gets logged.
func (s *Service) Send(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	if req.ReceiverID == senderID {
		return nil, ErrSelfMessage
	}

	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		LandID:     req.LandID,
		Content:    req.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	senderName := "مستخدم"
	if sender, err := s.users.GetByID(ctx, senderID); err == nil && sender.FullName != "" {
		senderName = sender.FullName
	}
	if err := s.notifier.NewMessage(ctx, req.ReceiverID, senderName, req.LandID); err != nil {
		log.Printf("message notification failed: receiver=%d err=%v", req.ReceiverID, err)
	}

	return msg, nil
}

// GetConversation returns the thread with one partner and marks the
// partner's messages as read for the caller.
func (s *Service) GetConversation(ctx context.Context, userID, partnerID int64) ([]domain.Message, error) {
	msgs, err := s.messages.GetConversation(ctx, userID, partnerID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkConversationRead(ctx, partnerID, userID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Conversations groups the user's messages into threads, one entry per
// counterpart, newest activity first.
func (s *Service) Conversations(ctx context.Context, userID int64) ([]Conversation, error) {
	msgs, err := s.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byPartner := make(map[int64]*Conversation)
	for i := range msgs {
		m := msgs[i]

		partnerID := m.SenderID
		partner := m.Sender
		if partnerID == userID {
			partnerID = m.ReceiverID
			partner = m.Receiver
		}

		conv, ok := byPartner[partnerID]
		if !ok {
			conv = &Conversation{PartnerID: partnerID}
			if partner != nil {
				conv.PartnerName = partner.FullName
			}
			byPartner[partnerID] = conv
		}

		// messages arrive newest first, so the first one seen per
		// partner is the last message of that thread
		if conv.LastMessage == nil {
			last := m
			conv.LastMessage = &last
			conv.UpdatedAt = m.CreatedAt
		}
		if m.ReceiverID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}

	conversations := make([]Conversation, 0, len(byPartner))
	for _, conv := range byPartner {
		conversations = append(conversations, *conv)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})
	return conversations, nil
}
