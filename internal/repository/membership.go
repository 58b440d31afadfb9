package repository

import (
	"meetup-groups-backend/internal/database/models"

	"gorm.io/gorm"
)

// MembershipRepository handles database operations for group memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByKey retrieves a membership by its composite (user, group) key
func (r *MembershipRepository) GetByKey(userID, groupID int64) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND group_id = ?", userID, groupID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetAll retrieves all memberships
func (r *MembershipRepository) GetAll() ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Order("group_id, user_id").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByGroupID retrieves all memberships of a group
func (r *MembershipRepository) GetByGroupID(groupID int64) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("group_id = ?", groupID).Order("user_id").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Update updates a membership using a map of updates
func (r *MembershipRepository) Update(userID, groupID int64, updates map[string]interface{}) error {
	return r.db.Model(&models.Membership{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Updates(updates).Error
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(userID, groupID int64) error {
	return r.db.Delete(&models.Membership{}, "user_id = ? AND group_id = ?", userID, groupID).Error
}
