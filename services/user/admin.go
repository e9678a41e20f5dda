package user

import (
	"fmt"
	"strings"

	"labtrack/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ListUsers returns all accounts, newest first, optionally filtered by role.
func (s *DefaultUserService) ListUsers(role string) ([]models.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != "" && !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	return s.Repo.GetAll(role)
}

// CreateUser creates an account with any allowed role. Patients must carry a
// citizenship ID; emails and citizenship IDs are unique.
func (s *DefaultUserService) CreateUser(user models.User) (*models.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Role = strings.ToLower(strings.TrimSpace(user.Role))
	user.CitizenshipID = strings.TrimSpace(user.CitizenshipID)

	if user.Name == "" || user.Email == "" || user.Password == "" || user.Role == "" {
		return nil, fmt.Errorf("name, email, password, role are required")
	}
	if !models.ValidRole(user.Role) {
		return nil, fmt.Errorf("invalid role")
	}
	if user.Role == models.RolePatient && user.CitizenshipID == "" {
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
	user.Password = ""
	user.ID = uuid.New().String()

	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account. Admins cannot delete their own account.
func (s *DefaultUserService) DeleteUser(callerID, id string) error {
	if callerID == id {
		return fmt.Errorf("you cannot delete your own admin account")
	}
	return s.Repo.Delete(id)
}
