package models

import "time"

// User represents a registered account. PasswordHash holds a bcrypt hash and
// is never serialized into API responses.
type User struct {
	ID           int64     `json:"userID" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	FirstName    string    `json:"firstName" gorm:"not null;size:100" validate:"required,max=100"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	IsAdmin      bool      `json:"isAdmin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	OwnedGroups []Group      `json:"owned_groups,omitempty" gorm:"foreignKey:OwnerID"`
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
