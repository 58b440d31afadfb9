package repository

import (
	"meetup-groups-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
	CountOwnedGroups(id int64) (int64, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id int64) (*models.Group, error)
	GetAll() ([]models.Group, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByKey(userID, groupID int64) (*models.Membership, error)
	GetAll() ([]models.Membership, error)
	GetByGroupID(groupID int64) ([]models.Membership, error)
	Update(userID, groupID int64, updates map[string]interface{}) error
	Delete(userID, groupID int64) error
}

// MeetingDateRepositoryInterface defines the interface for meeting date repository operations
type MeetingDateRepositoryInterface interface {
	Create(date *models.MeetingDate) error
	GetByID(id int64) (*models.MeetingDate, error)
	GetAll() ([]models.MeetingDate, error)
	GetByGroupID(groupID int64) ([]models.MeetingDate, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
}
