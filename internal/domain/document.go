package domain

import "time"

type DocumentType string

const (
	DocOwnershipDeed DocumentType = "ownership_deed"
	DocCadastrePlan  DocumentType = "cadastre_plan"
	DocOther         DocumentType = "other"
)

// Document is an ownership-proof file attached to a listing. Its
// verified flag is independent of the listing status and is set only by
// an administrator.
type Document struct {
	ID         int64        `json:"id" gorm:"primaryKey"`
	LandID     int64        `json:"land_id" gorm:"not null;index"`
	URL        string       `json:"url" gorm:"not null"`
	DocType    DocumentType `json:"doc_type" gorm:"not null"`
	IsVerified bool         `json:"is_verified" gorm:"default:false"`
	VerifiedAt *time.Time   `json:"verified_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
