// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

// Driver logs in with their contact number. Buses reference drivers through
// Bus.DriverID; there is no back-reference here so a driver delete never
// touches bus rows.
type Driver struct {
	gorm.Model
	Name     string `json:"name"`
	Contact  string `json:"contact"` // login identifier
	Password string `json:"-"`       // bcrypt hash
}
