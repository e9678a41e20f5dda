package user

import (
	userRepo "labtrack/database/repository/user"
	"labtrack/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse contains the authenticated user's public identity and token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService defines business logic for accounts and authentication.
type UserService interface {
	// RegisterPatient creates a patient account and returns its auth token.
	RegisterPatient(user models.User) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh auth token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// RevokeToken invalidates a live bearer token.
	RevokeToken(token string) error
	// GetUserByID retrieves an account by its unique ID.
	GetUserByID(id string) (*models.User, error)
	// ListUsers returns all accounts, optionally filtered by role.
	ListUsers(role string) ([]models.User, error)
	// CreateUser creates an account with any allowed role (admin only path).
	CreateUser(user models.User) (*models.User, error)
	// DeleteUser removes an account. The calling admin cannot delete itself.
	DeleteUser(callerID, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
