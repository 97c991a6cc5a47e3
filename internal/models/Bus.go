// internal/models/bus.go
package models

import "gorm.io/gorm"

// Bus carries weak references to its route and driver: nullable ID columns
// with no database constraint. Deleting a route or driver leaves the bus row
// untouched, so readers must tolerate references to rows that no longer exist.
type Bus struct {
	gorm.Model
	BusNumber string `json:"bus_number" gorm:"uniqueIndex;not null"`
	RouteID   *uint  `json:"route_id"`
	DriverID  *uint  `json:"driver_id"`
	Capacity  int    `json:"capacity"`
}
