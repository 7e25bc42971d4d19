package domain

import "time"

type LandType string

const (
	LandPrivate      LandType = "private"
	LandAgricultural LandType = "agricultural"
	LandWaqf         LandType = "waqf"
	LandConcession   LandType = "concession"
)

type ServiceType string

const (
	ServiceSale ServiceType = "sale"
	ServiceRent ServiceType = "rent"
)

type LandStatus string

const (
	StatusPending  LandStatus = "pending"
	StatusVerified LandStatus = "verified"
	StatusRejected LandStatus = "rejected"
	// StatusSold is never produced by any API operation; it exists for
	// direct data edits only.
	StatusSold LandStatus = "sold"
)

// ParseModerationStatus validates an admin moderation decision. Only the
// two review outcomes are acceptable inputs; anything else is rejected
// before it can touch a listing.
func ParseModerationStatus(s string) (LandStatus, bool) {
	switch LandStatus(s) {
	case StatusVerified:
		return StatusVerified, true
	case StatusRejected:
		return StatusRejected, true
	}
	return "", false
}

// Land is the central moderated entity: a plot offered for sale or rent.
// The status field together with rejection_reason is owned by the
// lifecycle services (modules/land for owner actions, modules/admin for
// moderation); nothing else writes them.
type Land struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	OwnerID      int64       `json:"owner_id" gorm:"not null;index"`
	Title        string      `json:"title" gorm:"not null"`
	Description  string      `json:"description" gorm:"type:text;not null"`
	Price        float64     `json:"price" gorm:"not null"`
	AreaM2       float64     `json:"area_m2" gorm:"not null"`
	Type         LandType    `json:"type" gorm:"not null"`
	ServiceType  ServiceType `json:"service_type" gorm:"default:sale"`
	Wilaya       string      `json:"wilaya" gorm:"not null;index"`
	Baladia      string      `json:"baladia" gorm:"not null"`
	ContactPhone string      `json:"contact_phone,omitempty"`
	ContactEmail string      `json:"contact_email,omitempty"`
	Lat          *float64    `json:"lat,omitempty"`
	Lng          *float64    `json:"lng,omitempty"`
	Status       LandStatus  `json:"status" gorm:"default:pending;index"`
	// RejectionReason is meaningful only while Status == rejected; every
	// transition away from rejected clears it.
	RejectionReason string    `json:"rejection_reason,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Owner     *User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Media     []LandMedia `json:"media,omitempty" gorm:"foreignKey:LandID"`
	Documents []Document  `json:"documents,omitempty" gorm:"foreignKey:LandID"`
}

func (Land) TableName() string { return "lands" }
