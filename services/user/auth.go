package user

import (
	"fmt"
	"strings"
	"time"

	"labtrack/models"
	"labtrack/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// RegisterPatient validates the registration details, hashes the password,
// persists the account with the patient role, and returns a fresh token.
func (s *DefaultUserService) RegisterPatient(user models.User) (*AuthResponse, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CitizenshipID = strings.TrimSpace(user.CitizenshipID)

	if user.Name == "" || user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if user.CitizenshipID == "" {
		return nil, fmt.Errorf("citizenshipId is required for patient accounts")
	}

	if err := s.checkUnique(user.Email, user.CitizenshipID); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain-text password.
	user.Role = models.RolePatient
	user.ID = uuid.New().String()

	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(&user)
}

// AuthenticateUser verifies the credentials and returns a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user for authentication: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return s.issueToken(usr)
}

// RevokeToken drops a live bearer token from the auth cache.
func (s *DefaultUserService) RevokeToken(token string) error {
	return utils.RevokeAuthToken(s.AuthCache, utils.HashToken(token))
}

// GetUserByID retrieves an account by its unique ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

// issueToken generates a JWT for the user and registers its hash in the auth
// cache so it can be revoked before expiry.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := utils.SaveAuthToken(s.AuthCache, usr.ID, utils.HashToken(token), tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to register auth token: %w", err)
	}
	return &AuthResponse{ID: usr.ID, Name: usr.Name, Role: usr.Role, Token: token}, nil
}

// checkUnique rejects duplicate emails and citizenship IDs.
func (s *DefaultUserService) checkUnique(email, citizenshipID string) error {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("email is already registered")
	}

	if citizenshipID != "" {
		existing, err = s.Repo.GetByCitizenshipID(citizenshipID)
		if err != nil {
			return fmt.Errorf("failed to check for existing citizenship id: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("citizenship ID is already in use")
		}
	}
	return nil
}
