package userRepo

import "labtrack/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// such user exists.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetByCitizenshipID retrieves a user by citizenship ID. Returns
	// (nil, nil) when no such user exists.
	GetByCitizenshipID(citizenshipID string) (*models.User, error)
	// GetByIDs retrieves the users among the given IDs.
	GetByIDs(ids []string) ([]models.User, error)
	// GetAll retrieves all users, newest first, optionally filtered by role.
	GetAll(role string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
