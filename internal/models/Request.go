package models

import "gorm.io/gorm"

// Request is a student-raised message to the transport office. The table is
// part of the schema but no exposed operation reads or writes it yet.
type Request struct {
	gorm.Model
	StudentID *uint  `json:"student_id"`
	Message   string `json:"message"`
	Status    string `json:"status" gorm:"default:pending"`
}
