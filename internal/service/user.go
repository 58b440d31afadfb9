package service

import (
	"errors"
	"fmt"
	"time"

	"meetup-groups-backend/internal/auth"
	"meetup-groups-backend/internal/database/models"
	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	passwords *auth.PasswordService
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, passwords *auth.PasswordService, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		passwords: passwords,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user. The admin flag
// is deliberately absent: self-registration never grants admin, admins are
// created through the admin-only endpoint.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=1,max=72"`
}

// UpdateUserRequest represents the request to update a user. Absent fields
// keep their stored values. Password and isAdmin are applied only when the
// caller is an admin.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
	IsAdmin   *bool   `json:"isAdmin,omitempty"`
}

// UserResponse represents the response for user operations. The password
// hash never appears here.
type UserResponse struct {
	UserID    int64     `json:"userID"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// Create registers a new non-admin user
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	return s.create(req, false)
}

// CreateAdmin registers a new admin user
func (s *UserService) CreateAdmin(req *CreateUserRequest) (*UserResponse, error) {
	return s.create(req, true)
}

func (s *UserService) create(req *CreateUserRequest, isAdmin bool) (*UserResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if a user with the same email exists
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int64) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetAll retrieves all users
func (s *UserService) GetAll() (*UserListResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

// Update applies a partial update to a user. Non-admin callers may change
// only their own email and first name; admins may change any field of any
// user.
func (s *UserService) Update(id int64, req *UpdateUserRequest, actor Actor) (*UserResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if actor.UserID != id && !actor.IsAdmin {
		return nil, apperrors.ErrNotAccountOwner
	}

	// Get existing user
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	updates := map[string]interface{}{}

	if req.Email != nil {
		// Check the new email is not taken by another user
		existing, err := s.repo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserExists
		}
		updates["email"] = *req.Email
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}

	// Password and admin flag changes are admin-only; for non-admin callers
	// these fields are ignored rather than rejected
	if actor.IsAdmin {
		if req.Password != nil {
			hash, err := s.passwords.Hash(*req.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			updates["password_hash"] = hash
		}
		if req.IsAdmin != nil {
			updates["is_admin"] = *req.IsAdmin
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	// Get updated user
	updatedUser, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated user: %w", err)
	}

	return s.toResponse(updatedUser), nil
}

// Delete deletes a user. Deletion is rejected while the user still owns
// groups; memberships cascade at the database level.
func (s *UserService) Delete(id int64) error {
	// Check if user exists
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	owned, err := s.repo.CountOwnedGroups(id)
	if err != nil {
		return fmt.Errorf("failed to count owned groups: %w", err)
	}
	if owned > 0 {
		return apperrors.ErrUserOwnsGroups
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
