// internal/models/student.go
package models

import "gorm.io/gorm"

// Student logs in with their roll number. BusID is a weak reference under the
// same no-cascade policy as Bus.RouteID.
type Student struct {
	gorm.Model
	Name       string `json:"name"`
	RollNumber string `json:"roll_number" gorm:"uniqueIndex;not null"` // login identifier
	Password   string `json:"-"`                                      // bcrypt hash
	BusID      *uint  `json:"bus_id"`
}
