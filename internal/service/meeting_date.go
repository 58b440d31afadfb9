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

// MeetingDateService handles business logic for group meeting dates
type MeetingDateService struct {
	repo      repository.MeetingDateRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
	validator *validator.Validate
}

// NewMeetingDateService creates a new meeting date service
func NewMeetingDateService(repo repository.MeetingDateRepositoryInterface, groupRepo repository.GroupRepositoryInterface, validator *validator.Validate) *MeetingDateService {
	return &MeetingDateService{
		repo:      repo,
		groupRepo: groupRepo,
		validator: validator,
	}
}

// CreateMeetingDateRequest represents the request to schedule a meeting date
type CreateMeetingDateRequest struct {
	GroupID  int64  `json:"groupID" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Place    string `json:"place" validate:"required,max=100"`
	MaxUsers *int   `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
}

// UpdateMeetingDateRequest represents the request to update a meeting date.
// Absent fields keep their stored values.
type UpdateMeetingDateRequest struct {
	GroupID  *int64  `json:"groupID,omitempty"`
	Date     *string `json:"date,omitempty"`
	Place    *string `json:"place,omitempty" validate:"omitempty,max=100"`
	MaxUsers *int    `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
}

// MeetingDateResponse represents the response for meeting date operations
type MeetingDateResponse struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"groupID"`
	Date      time.Time `json:"date"`
	Place     string    `json:"place"`
	MaxUsers  *int      `json:"maxUsers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeetingDateListResponse represents a list of meeting dates
type MeetingDateListResponse struct {
	Dates []MeetingDateResponse `json:"dates"`
	Total int                   `json:"total"`
}

// Create schedules a new meeting date for a group
func (s *MeetingDateService) Create(req *CreateMeetingDateRequest) (*MeetingDateResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", err.Error())
	}

	// Check if the group exists
	if _, err := s.groupRepo.GetByID(req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}

	meetingDate := &models.MeetingDate{
		GroupID:  req.GroupID,
		Date:     date,
		Place:    req.Place,
		MaxUsers: req.MaxUsers,
	}

	if err := s.repo.Create(meetingDate); err != nil {
		return nil, fmt.Errorf("failed to create date: %w", err)
	}

	return s.toResponse(meetingDate), nil
}

// GetByID retrieves a meeting date by ID
func (s *MeetingDateService) GetByID(id int64) (*MeetingDateResponse, error) {
	meetingDate, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingDateNotFound
		}
		return nil, fmt.Errorf("failed to get date: %w", err)
	}

	return s.toResponse(meetingDate), nil
}

// GetAll retrieves all meeting dates
func (s *MeetingDateService) GetAll() (*MeetingDateListResponse, error) {
	dates, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get dates: %w", err)
	}

	return s.toListResponse(dates), nil
}

// GetByGroup retrieves all meeting dates of a group
func (s *MeetingDateService) GetByGroup(groupID int64) (*MeetingDateListResponse, error) {
	// Check if group exists
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}

	dates, err := s.repo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dates: %w", err)
	}

	return s.toListResponse(dates), nil
}

// Update applies a partial update to a meeting date
func (s *MeetingDateService) Update(id int64, req *UpdateMeetingDateRequest) (*MeetingDateResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing meeting date
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingDateNotFound
		}
		return nil, fmt.Errorf("failed to get date: %w", err)
	}

	updates := map[string]interface{}{}

	if req.GroupID != nil {
		// New group must exist
		if _, err := s.groupRepo.GetByID(*req.GroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to verify group: %w", err)
		}
		updates["group_id"] = *req.GroupID
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", err.Error())
		}
		updates["date"] = date
	}
	if req.Place != nil {
		updates["place"] = *req.Place
	}
	if req.MaxUsers != nil {
		updates["max_users"] = *req.MaxUsers
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update date: %w", err)
		}
	}

	// Get updated meeting date
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated date: %w", err)
	}

	return s.toResponse(updated), nil
}

// Delete removes a meeting date
func (s *MeetingDateService) Delete(id int64) error {
	// Check if meeting date exists
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingDateNotFound
		}
		return fmt.Errorf("failed to get date: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete date: %w", err)
	}

	return nil
}

// toResponse converts a meeting date model to response
func (s *MeetingDateService) toResponse(meetingDate *models.MeetingDate) *MeetingDateResponse {
	return &MeetingDateResponse{
		ID:        meetingDate.ID,
		GroupID:   meetingDate.GroupID,
		Date:      meetingDate.Date,
		Place:     meetingDate.Place,
		MaxUsers:  meetingDate.MaxUsers,
		CreatedAt: meetingDate.CreatedAt,
		UpdatedAt: meetingDate.UpdatedAt,
	}
}

func (s *MeetingDateService) toListResponse(dates []models.MeetingDate) *MeetingDateListResponse {
	responses := make([]MeetingDateResponse, len(dates))
	for i, meetingDate := range dates {
		responses[i] = *s.toResponse(&meetingDate)
	}

	return &MeetingDateListResponse{
		Dates: responses,
		Total: len(responses),
	}
}
