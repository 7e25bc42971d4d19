package domain

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// LandMedia is a photo or video attached to a listing. Records are
// append-only: created alongside a listing submission or resubmission,
// removed only when the listing itself is deleted.
type LandMedia struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	LandID    int64     `json:"land_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	MediaType MediaType `json:"media_type" gorm:"default:image"`
	SortOrder int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (LandMedia) TableName() string { return "land_media" }
