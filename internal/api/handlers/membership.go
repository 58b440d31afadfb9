package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for group memberships
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// membershipKey parses the userID and groupID path parameters
func membershipKey(c *gin.Context) (int64, int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, 0, false
	}
	groupID, err := strconv.ParseInt(c.Param("groupID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return 0, 0, false
	}
	return userID, groupID, true
}

// CreateMembership enrolls a user in a group
// @Summary Enroll a user in a group
// @Description Create a membership for an existing user and group pair
// @Tags memberships
// @Accept json
// @Produce json
// @Param membership body service.CreateMembershipRequest true "Membership data"
// @Success 201 {object} service.MembershipResponse "Successfully created membership"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User or group not found"
// @Failure 409 {object} map[string]interface{} "User already enrolled in group"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users_in_groups [post]
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req service.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMembershipExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// GetMembership retrieves a membership by its user and group pair
// @Summary Get membership
// @Description Get the membership of a specific user in a specific group
// @Tags memberships
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param groupID path int true "Group ID"
// @Success 200 {object} service.MembershipResponse "Successfully retrieved membership"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users_in_groups/{userID}/{groupID} [get]
func (h *MembershipHandler) GetMembership(c *gin.Context) {
	userID, groupID, ok := membershipKey(c)
	if !ok {
		return
	}

	membership, err := h.service.GetByKey(userID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, membership)
}

// ListMemberships retrieves all memberships
// @Summary List memberships
// @Description Get all group memberships
// @Tags memberships
// @Accept json
// @Produce json
// @Success 200 {object} service.MembershipListResponse "Successfully retrieved memberships"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users_in_groups [get]
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	memberships, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// GetGroupMembers retrieves the memberships of a group
// @Summary List group members
// @Description Get all memberships of a specific group
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} service.MembershipListResponse "Successfully retrieved memberships"
// @Failure 400 {object} map[string]interface{} "Invalid group ID"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /groups/{id}/members [get]
func (h *MembershipHandler) GetGroupMembers(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	memberships, err := h.service.GetByGroup(groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// UpdateMembership updates a membership
// @Summary Update membership
// @Description Update the starting date of an existing membership
// @Tags memberships
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param groupID path int true "Group ID"
// @Param membership body service.UpdateMembershipRequest true "Updated membership data"
// @Success 200 {object} service.MembershipResponse "Successfully updated membership"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users_in_groups/{userID}/{groupID} [put]
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	userID, groupID, ok := membershipKey(c)
	if !ok {
		return
	}

	var req service.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.Update(userID, groupID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, membership)
}

// DeleteMembership removes a membership
// @Summary Delete membership
// @Description Remove a user from a group. Admin callers only.
// @Tags memberships
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param groupID path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted membership"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 403 {object} map[string]interface{} "Admins only"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /users_in_groups/{userID}/{groupID} [delete]
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	userID, groupID, ok := membershipKey(c)
	if !ok {
		return
	}

	if err := h.service.Delete(userID, groupID); err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership deleted successfully"})
}
