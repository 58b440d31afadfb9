package repository

import (
	"meetup-groups-backend/internal/database/models"

	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id int64) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all groups
func (r *GroupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Order("id").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Update updates a group using a map of updates
func (r *GroupRepository) Update(id int64, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a group. Memberships and dates cascade at the database level.
func (r *GroupRepository) Delete(id int64) error {
	return r.db.Delete(&models.Group{}, "id = ?", id).Error
}
