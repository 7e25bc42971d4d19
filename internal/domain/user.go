package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleSeller  UserRole = "seller"
	RoleBuyer   UserRole = "buyer"
	RoleVisitor UserRole = "visitor"
)

// ValidRole reports whether r is one of the closed role set.
// Roles arrive from JWT claims and registration payloads as strings,
// so every boundary must pass them through here before trusting them.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBuyer, RoleVisitor:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role" gorm:"default:visitor"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
