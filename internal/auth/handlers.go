package auth

import (
	"errors"
	"net/http"

	apperrors "meetup-groups-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates a user and returns an access token
// @Summary Log in
// @Description Verify email/password credentials and issue a signed access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Missing credentials"
// @Failure 401 {object} map[string]interface{} "Bad username or password"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Protected reports the identity of the caller
// @Summary Who am I
// @Description Return the subject of the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Caller identity"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /protected [get]
func (h *AuthHandler) Protected(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrTokenRequired.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged_in_as": userID})
}

// AdminOnly greets an authenticated admin
// @Summary Admin probe
// @Description Return a greeting if the presented token carries the admin claim
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Greeting"
// @Failure 403 {object} map[string]interface{} "Admins only"
// @Security BearerAuth
// @Router /admin-only [get]
func (h *AuthHandler) AdminOnly(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Welcome, admin!"})
}
