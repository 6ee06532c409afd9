package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user. All other resources belong to
// exactly one user.
type User struct {
	DefaultModel
	Name     string `json:"name" example:"Jane Doe"`                                    // Display name of the user
	Email    string `json:"email" gorm:"uniqueIndex:user_email" example:"jane@doe.dev"` // Email address, unique across all users
	Password string `json:"-"`                                                         // bcrypt hash of the password, never serialized
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail returns the canonical form emails are stored in.
// Lookups by email must normalize the same way.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
