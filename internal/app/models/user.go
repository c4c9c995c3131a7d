package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Ahmed Mohamed"`                   // Full name
	Email        string    `json:"email" db:"email" example:"user@university.edu"`           // User's email address
	Password     string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Phone        string    `json:"phone" db:"phone" example:"01012345678"`                   // 11-digit phone number
	NationalNo   string    `json:"nationalNo" db:"national_no" example:"29801011234567"`     // 14-digit national identity number
	ProfileImage *string   `json:"profileImage,omitempty" db:"profile_image"`                // URL of the profile image (nullable)
	RoleID       int64     `json:"roleId" db:"role_id" example:"3"`                          // ID of the user's role
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated

	// Relation (populated when needed)
	Role *Role `json:"role,omitempty"`
}

// Role defines a user role based on the 'roles' table. Admin, Faculty and
// Student are seeded at startup; the table exists so the instructor form can
// offer a lookup.
type Role struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
