package models

import "time"

// Membership represents one user's enrollment in one group. The (user, group)
// pair is the composite primary key; the same pair cannot be enrolled twice.
type Membership struct {
	UserID       int64     `json:"userID" gorm:"primaryKey;autoIncrement:false" validate:"required"`
	GroupID      int64     `json:"groupID" gorm:"primaryKey;autoIncrement:false" validate:"required"`
	StartingDate time.Time `json:"startingDate" gorm:"not null" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "users_in_groups"
}
