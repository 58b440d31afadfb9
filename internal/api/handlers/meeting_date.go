package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeetingDateHandler handles HTTP requests for meeting dates
type MeetingDateHandler struct {
	service service.MeetingDateServiceInterface
}

// NewMeetingDateHandler creates a new meeting date handler
func NewMeetingDateHandler(service service.MeetingDateServiceInterface) *MeetingDateHandler {
	return &MeetingDateHandler{service: service}
}

// CreateMeetingDate schedules a new meeting date
// @Summary Schedule a meeting date
// @Description Create a new meeting date for an existing group
// @Tags dates
// @Accept json
// @Produce json
// @Param date body service.CreateMeetingDateRequest true "Meeting date data"
// @Success 201 {object} service.MeetingDateResponse "Successfully created meeting date"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dates [post]
func (h *MeetingDateHandler) CreateMeetingDate(c *gin.Context) {
	var req service.CreateMeetingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, date)
}

// GetMeetingDate retrieves a meeting date by ID
// @Summary Get meeting date by ID
// @Description Get a specific meeting date by its numeric ID
// @Tags dates
// @Accept json
// @Produce json
// @Param id path int true "Meeting date ID"
// @Success 200 {object} service.MeetingDateResponse "Successfully retrieved meeting date"
// @Failure 400 {object} map[string]interface{} "Invalid meeting date ID"
// @Failure 404 {object} map[string]interface{} "Meeting date not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dates/{id} [get]
func (h *MeetingDateHandler) GetMeetingDate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date ID"})
		return
	}

	date, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingDateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, date)
}

// ListMeetingDates retrieves all meeting dates
// @Summary List meeting dates
// @Description Get all scheduled meeting dates
// @Tags dates
// @Accept json
// @Produce json
// @Success 200 {object} service.MeetingDateListResponse "Successfully retrieved meeting dates"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dates [get]
func (h *MeetingDateHandler) ListMeetingDates(c *gin.Context) {
	dates, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dates)
}

// GetGroupMeetingDates retrieves the meeting dates of a group
// @Summary List group meeting dates
// @Description Get all meeting dates of a specific group
// @Tags dates
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} service.MeetingDateListResponse "Successfully retrieved meeting dates"
// @Failure 400 {object} map[string]interface{} "Invalid group ID"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /groups/{id}/dates [get]
func (h *MeetingDateHandler) GetGroupMeetingDates(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	dates, err := h.service.GetByGroup(groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dates)
}

// UpdateMeetingDate updates a meeting date
// @Summary Update meeting date
// @Description Update an existing meeting date by ID
// @Tags dates
// @Accept json
// @Produce json
// @Param id path int true "Meeting date ID"
// @Param date body service.UpdateMeetingDateRequest true "Updated meeting date data"
// @Success 200 {object} service.MeetingDateResponse "Successfully updated meeting date"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Meeting date or group not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dates/{id} [put]
func (h *MeetingDateHandler) UpdateMeetingDate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date ID"})
		return
	}

	var req service.UpdateMeetingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := h.service.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, date)
}

// DeleteMeetingDate removes a meeting date
// @Summary Delete meeting date
// @Description Delete a meeting date by ID. Admin callers only.
// @Tags dates
// @Accept json
// @Produce json
// @Param id path int true "Meeting date ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted meeting date"
// @Failure 400 {object} map[string]interface{} "Invalid meeting date ID"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 403 {object} map[string]interface{} "Admins only"
// @Failure 404 {object} map[string]interface{} "Meeting date not found"
// @Security BearerAuth
// @Router /dates/{id} [delete]
func (h *MeetingDateHandler) DeleteMeetingDate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMeetingDateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Date deleted successfully"})
}
