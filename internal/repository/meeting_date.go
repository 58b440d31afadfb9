package repository

import (
	"meetup-groups-backend/internal/database/models"

	"gorm.io/gorm"
)

// MeetingDateRepository handles database operations for group meeting dates
type MeetingDateRepository struct {
	db *gorm.DB
}

// NewMeetingDateRepository creates a new meeting date repository
func NewMeetingDateRepository(db *gorm.DB) *MeetingDateRepository {
	return &MeetingDateRepository{db: db}
}

// Create creates a new meeting date
func (r *MeetingDateRepository) Create(date *models.MeetingDate) error {
	return r.db.Create(date).Error
}

// GetByID retrieves a meeting date by ID
func (r *MeetingDateRepository) GetByID(id int64) (*models.MeetingDate, error) {
	var date models.MeetingDate
	err := r.db.First(&date, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// GetAll retrieves all meeting dates
func (r *MeetingDateRepository) GetAll() ([]models.MeetingDate, error) {
	var dates []models.MeetingDate
	err := r.db.Order("id").Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// GetByGroupID retrieves all meeting dates of a group
func (r *MeetingDateRepository) GetByGroupID(groupID int64) ([]models.MeetingDate, error) {
	var dates []models.MeetingDate
	err := r.db.Where("group_id = ?", groupID).Order("date").Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// Update updates a meeting date using a map of updates
func (r *MeetingDateRepository) Update(id int64, updates map[string]interface{}) error {
	return r.db.Model(&models.MeetingDate{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a meeting date
func (r *MeetingDateRepository) Delete(id int64) error {
	return r.db.Delete(&models.MeetingDate{}, "id = ?", id).Error
}
