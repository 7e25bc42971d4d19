package domain

import "time"

type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_land"`
	LandID    int64     `json:"land_id" gorm:"not null;index;uniqueIndex:idx_user_land"`
	CreatedAt time.Time `json:"created_at"`

	Land *Land `json:"land,omitempty" gorm:"foreignKey:LandID"`
}

func (Favorite) TableName() string { return "favorites" }
