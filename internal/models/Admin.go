// internal/models/admin.go
package models

import (
	"gorm.io/gorm"
)

// Admin accounts are seeded at first boot and never mutated through the
// exposed surface.
type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never plaintext
}
