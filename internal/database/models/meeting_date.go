package models

import "time"

// MeetingDate represents a scheduled meeting of a group at a place and time.
type MeetingDate struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID   int64     `json:"groupID" gorm:"not null;index" validate:"required"`
	Date      time.Time `json:"date" gorm:"not null" validate:"required"`
	Place     string    `json:"place" gorm:"not null;size:100" validate:"required,max=100"`
	MaxUsers  *int      `json:"maxUsers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

// TableName returns the table name for MeetingDate
func (MeetingDate) TableName() string {
	return "dates"
}
