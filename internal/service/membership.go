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

// MembershipService handles business logic for group memberships
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, userRepo repository.UserRepositoryInterface, groupRepo repository.GroupRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:      repo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
		validator: validator,
	}
}

// CreateMembershipRequest represents the request to enroll a user in a group
type CreateMembershipRequest struct {
	UserID       int64  `json:"userID" validate:"required"`
	GroupID      int64  `json:"groupID" validate:"required"`
	StartingDate string `json:"startingDate" validate:"required"`
}

// UpdateMembershipRequest represents the request to update a membership.
// Only the starting date is mutable; the pair is the identity.
type UpdateMembershipRequest struct {
	StartingDate *string `json:"startingDate,omitempty"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	UserID       int64     `json:"userID"`
	GroupID      int64     `json:"groupID"`
	StartingDate time.Time `json:"startingDate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MembershipListResponse represents a list of memberships
type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"users_in_groups"`
	Total       int                  `json:"total"`
}

// Create enrolls a user in a group. The (user, group) pair must not already
// be enrolled. Group capacity is advisory and not checked here.
func (s *MembershipService) Create(req *CreateMembershipRequest) (*MembershipResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startingDate, err := parseDate(req.StartingDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startingDate", err.Error())
	}

	// Both sides of the pair must exist
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if _, err := s.groupRepo.GetByID(req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}

	// Check the pair is not already enrolled
	existing, err := s.repo.GetByKey(req.UserID, req.GroupID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.Membership{
		UserID:       req.UserID,
		GroupID:      req.GroupID,
		StartingDate: startingDate,
	}

	if err := s.repo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return s.toResponse(membership), nil
}

// GetByKey retrieves a membership by its (user, group) pair
func (s *MembershipService) GetByKey(userID, groupID int64) (*MembershipResponse, error) {
	membership, err := s.repo.GetByKey(userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return s.toResponse(membership), nil
}

// GetAll retrieves all memberships
func (s *MembershipService) GetAll() (*MembershipListResponse, error) {
	memberships, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}

	return s.toListResponse(memberships), nil
}

// GetByGroup retrieves all memberships of a group
func (s *MembershipService) GetByGroup(groupID int64) (*MembershipListResponse, error) {
	// Check if group exists
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}

	memberships, err := s.repo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}

	return s.toListResponse(memberships), nil
}

// Update updates the starting date of a membership
func (s *MembershipService) Update(userID, groupID int64, req *UpdateMembershipRequest) (*MembershipResponse, error) {
	// Get existing membership
	if _, err := s.repo.GetByKey(userID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	updates := map[string]interface{}{}

	if req.StartingDate != nil {
		startingDate, err := parseDate(*req.StartingDate)
		if err != nil {
			return nil, apperrors.NewValidationError("startingDate", err.Error())
		}
		updates["starting_date"] = startingDate
	}

	if len(updates) > 0 {
		if err := s.repo.Update(userID, groupID, updates); err != nil {
			return nil, fmt.Errorf("failed to update membership: %w", err)
		}
	}

	// Get updated membership
	updated, err := s.repo.GetByKey(userID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated membership: %w", err)
	}

	return s.toResponse(updated), nil
}

// Delete removes a membership
func (s *MembershipService) Delete(userID, groupID int64) error {
	// Check if membership exists
	if _, err := s.repo.GetByKey(userID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if err := s.repo.Delete(userID, groupID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	return nil
}

// toResponse converts a membership model to response
func (s *MembershipService) toResponse(membership *models.Membership) *MembershipResponse {
	return &MembershipResponse{
		UserID:       membership.UserID,
		GroupID:      membership.GroupID,
		StartingDate: membership.StartingDate,
		CreatedAt:    membership.CreatedAt,
		UpdatedAt:    membership.UpdatedAt,
	}
}

func (s *MembershipService) toListResponse(memberships []models.Membership) *MembershipListResponse {
	responses := make([]MembershipResponse, len(memberships))
	for i, membership := range memberships {
		responses[i] = *s.toResponse(&membership)
	}

	return &MembershipListResponse{
		Memberships: responses,
		Total:       len(responses),
	}
}
