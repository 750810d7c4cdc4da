package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahayak-project/sahayak-backend/internal/identity"
	"github.com/sahayak-project/sahayak-backend/internal/models"
	"github.com/sahayak-project/sahayak-backend/internal/store"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the user object shape returned by the auth endpoints
type userResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	DisplayName string             `json:"displayName"`
	CreatedAt   time.Time          `json:"createdAt"`
	LastLoginAt *time.Time         `json:"lastLoginAt,omitempty"`
	Role        string             `json:"role"`
	Preferences models.Preferences `json:"preferences"`
}

func toUserResponse(user *models.User) userResponse {
	var prefs models.Preferences
	if len(user.Preferences) > 0 {
		_ = json.Unmarshal(user.Preferences, &prefs)
	}
	return userResponse{
		ID:          user.PublicID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
		Role:        user.Role,
		Preferences: prefs,
	}
}

// handleRegister creates a new teacher account. Duplicate emails are
// rejected without touching the existing record.
func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user := &models.User{
		PublicID:    identity.NewID(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        "teacher",
		Preferences: models.EncodePreferences(models.DefaultPreferences()),
	}

	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		s.logger.Error("registration failed", "email", req.Email, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("user registered", "user_id", user.PublicID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    toUserResponse(user),
		"message": "User registered successfully",
	})
}

// handleLogin is mock-only: no password verification. Unseen emails
// auto-provision a demo teacher so the SPA works without registration.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	now := time.Now()

	user, err := s.store.UserByEmail(req.Email)
	switch {
	case err == nil:
		if err := s.store.TouchLastLogin(user, now); err != nil {
			s.logger.Error("login failed", "email", req.Email, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case errors.Is(err, store.ErrUserNotFound):
		user = &models.User{
			PublicID:    identity.NewID(),
			Email:       req.Email,
			DisplayName: "Demo Teacher",
			Role:        "teacher",
			LastLoginAt: &now,
			Preferences: models.EncodePreferences(models.DemoPreferences()),
		}
		if err := s.store.CreateUser(user); err != nil {
			s.logger.Error("demo user provisioning failed", "email", req.Email, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		s.logger.Info("demo user provisioned", "user_id", user.PublicID)
	default:
		s.logger.Error("user lookup failed", "email", req.Email, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    toUserResponse(user),
		"message": "Login successful",
	})
}

// handleLogout is a no-op: there is no session to tear down
func (s *Server) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}
