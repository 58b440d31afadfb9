package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"meetup-groups-backend/internal/config"
	"meetup-groups-backend/internal/database/models"
	apperrors "meetup-groups-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const issuer = "meetup-groups-backend"

// UserStore defines the user lookup needed by the auth service
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService provides credential verification and JWT handling
type AuthService struct {
	secret    []byte
	expiry    time.Duration
	userStore UserStore
	passwords *PasswordService
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userStore UserStore) *AuthService {
	return &AuthService{
		secret:    []byte(cfg.JWTSecret),
		expiry:    cfg.JWTExpiry,
		userStore: userStore,
		passwords: NewPasswordService(),
	}
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userStore.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperrors.ErrBadCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{AccessToken: token}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword hashes a plaintext password for storage
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	return s.passwords.Hash(plaintext)
}
