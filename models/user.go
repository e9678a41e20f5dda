package models

import "time"

// Account roles.
const (
	RolePatient    = "patient"
	RoleTechnician = "technician"
	RoleDoctor     = "doctor"
	RoleAdmin      = "admin"
)

// AllowedRoles lists every role an admin may assign.
var AllowedRoles = []string{RolePatient, RoleTechnician, RoleDoctor, RoleAdmin}

// ValidRole reports whether role is one of the recognized account roles.
func ValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a platform account. CitizenshipID is the external identifier shown
// to lab staff; it is required for patient accounts.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"-" json:"password,omitempty"` // plain text, request scope only
	PasswordHash  string    `bson:"password_hash" json:"-"`
	Role          string    `bson:"role" json:"role"`
	CitizenshipID string    `bson:"citizenship_id,omitempty" json:"citizenshipId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// AuthUser is the authenticated caller resolved from a bearer token.
type AuthUser struct {
	ID   string
	Role string
}
