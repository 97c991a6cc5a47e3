package models

import (
	"gorm.io/gorm"
)

// Route describes a service path: an ordered text description of stops and
// the operating timings. Buses reference routes through Bus.RouteID.
type Route struct {
	gorm.Model
	RouteName string `json:"route_name" binding:"required"`
	Stops     string `json:"stops"`   // ordered stop description, e.g. "A → B → C"
	Timings   string `json:"timings"` // e.g. "7:00 AM - 8:30 AM"
}
