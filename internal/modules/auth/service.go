package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"github.com/inkstone-blog/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// invalidCredentials never reveals which factor failed.
const invalidCredentials = "Invalid credentials"

// UserProfile is the client-safe view of a user.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult is the login response payload.
type LoginResult struct {
	AccessToken string      `json:"accessToken"`
	ExpiresIn   int         `json:"expiresIn"`
	User        UserProfile `json:"user"`
}

// Service handles credential verification and token subjects.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies email+password and issues a signed token. Unknown email
// and wrong password produce the identical error.
func (s *Service) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication(invalidCredentials)
		}
		return nil, apperr.Storage(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.Authentication(invalidCredentials)
	}

	token, err := jwt.Sign(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int(jwt.TTL().Seconds()),
		User:        profile(&u),
	}, nil
}

// GetCurrentUser resolves a token subject to the live user record. A token
// can outlive its account; that surfaces as not found.
func (s *Service) GetCurrentUser(userID string) (*UserProfile, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Storage(err)
	}
	p := profile(&u)
	return &p, nil
}

func profile(u *models.UserModel) UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}
