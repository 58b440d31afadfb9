package service

import (
	"errors"
	"fmt"
	"time"

	"meetup-groups-backend/internal/database/models"
	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	OwnerID     int64  `json:"ownerID" validate:"required"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
	MaxUsers    *int   `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
}

// UpdateGroupRequest represents the request to update a group. Absent fields
// keep their stored values.
type UpdateGroupRequest struct {
	OwnerID     *int64  `json:"ownerID,omitempty"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	MaxUsers    *int    `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	GroupID     int64     `json:"groupID"`
	OwnerID     int64     `json:"ownerID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MaxUsers    *int      `json:"maxUsers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupListResponse represents a list of groups
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total"`
}

// Create creates a new group
func (s *GroupService) Create(req *CreateGroupRequest) (*GroupResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if the owner exists
	if _, err := s.userRepo.GetByID(req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	group := &models.Group{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		MaxUsers:    req.MaxUsers,
	}

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByID retrieves a group by ID
func (s *GroupService) GetByID(id int64) (*GroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetAll retrieves all groups
func (s *GroupService) GetAll() (*GroupListResponse, error) {
	groups, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group)
	}

	return &GroupListResponse{
		Groups: responses,
		Total:  len(responses),
	}, nil
}

// Update applies a partial update to a group
func (s *GroupService) Update(id int64, req *UpdateGroupRequest) (*GroupResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing group
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	updates := map[string]interface{}{}

	if req.OwnerID != nil {
		// New owner must exist
		if _, err := s.userRepo.GetByID(*req.OwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify owner: %w", err)
		}
		updates["owner_id"] = *req.OwnerID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MaxUsers != nil {
		updates["max_users"] = *req.MaxUsers
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update group: %w", err)
		}
	}

	// Get updated group
	updatedGroup, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated group: %w", err)
	}

	return s.toResponse(updatedGroup), nil
}

// Delete deletes a group. Memberships and meeting dates cascade at the
// database level.
func (s *GroupService) Delete(id int64) error {
	// Check if group exists
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

// toResponse converts a group model to response
func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		GroupID:     group.ID,
		OwnerID:     group.OwnerID,
		Title:       group.Title,
		Description: group.Description,
		MaxUsers:    group.MaxUsers,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}
