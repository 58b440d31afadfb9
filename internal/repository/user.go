package repository

import (
	"meetup-groups-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user using a map of updates
func (r *UserRepository) Update(id int64, updates map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a user. Memberships cascade at the database level.
func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// CountOwnedGroups counts the groups a user currently owns
func (r *UserRepository) CountOwnedGroups(id int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Group{}).Where("owner_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
