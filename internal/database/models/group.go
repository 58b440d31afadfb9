package models

import "time"

// Group represents a meetup group owned by a user. MaxUsers is an advisory
// capacity; joins are not rejected when it is reached.
type Group struct {
	ID          int64     `json:"groupID" gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `json:"ownerID" gorm:"not null;index" validate:"required"`
	Title       string    `json:"title" gorm:"not null;size:100" validate:"required,max=100"`
	Description string    `json:"description" gorm:"size:255"`
	MaxUsers    *int      `json:"maxUsers,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Owner        *User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members      []Membership  `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	MeetingDates []MeetingDate `json:"meeting_dates,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
