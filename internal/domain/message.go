package domain

import "time"

// Message is a direct message between two users, optionally tied to a
// listing the conversation is about.
type Message struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	SenderID   int64     `json:"sender_id" gorm:"not null;index"`
	ReceiverID int64     `json:"receiver_id" gorm:"not null;index"`
	LandID     *int64    `json:"land_id,omitempty"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`

	Sender   *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver *User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	Land     *Land `json:"land,omitempty" gorm:"foreignKey:LandID"`
}

func (Message) TableName() string { return "messages" }
