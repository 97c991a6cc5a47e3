// Package store is the single owner of relational access. Domain services
// call these methods and never touch query construction themselves, so the
// storage engine can be swapped without touching authorization logic.
package store

import (
	"context"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

// Counts is the admin dashboard summary.
type Counts struct {
	Students int64 `json:"students"`
	Buses    int64 `json:"buses"`
	Drivers  int64 `json:"drivers"`
	Routes   int64 `json:"routes"`
}

// StudentListing is a student row joined with its bus number for the
// administrative listing. BusNumber is empty when the student is unassigned
// or the referenced bus no longer exists.
type StudentListing struct {
	models.Student
	BusNumber string `json:"bus_number"`
}

// BusListing is a bus row joined with its route and driver names. Either
// name is empty when the reference is null or dangling.
type BusListing struct {
	models.Bus
	RouteName  string `json:"route_name"`
	DriverName string `json:"driver_name"`
}

// StudentProfile is the student's own joined view: their bus, its route and
// its driver. Any of the pointers may be nil when the chain breaks at a null
// or dangling reference.
type StudentProfile struct {
	Student models.Student `json:"student"`
	Bus     *models.Bus    `json:"bus,omitempty"`
	Route   *models.Route  `json:"route,omitempty"`
	Driver  *models.Driver `json:"driver,omitempty"`
}

// DriverProfile is the driver's own joined view: the bus assigned to them,
// its route, and the roster of students on that bus ordered by name.
type DriverProfile struct {
	Bus    *models.Bus      `json:"bus,omitempty"`
	Route  *models.Route    `json:"route,omitempty"`
	Roster []models.Student `json:"roster"`
}

// Store is the persistence contract for the portal. Lookups that find no row
// return gorm.ErrRecordNotFound; unique-constraint violations come back
// untranslated for dberrors.IsDuplicateKey to classify.
type Store interface {
	// Admins
	AdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	AdminCount(ctx context.Context) (int64, error)

	// Students
	StudentByID(ctx context.Context, id uint) (*models.Student, error)
	StudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	StudentsByBusID(ctx context.Context, busID uint) ([]models.Student, error)
	ListStudents(ctx context.Context) ([]StudentListing, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	SaveStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id uint) error

	// Drivers
	DriverByID(ctx context.Context, id uint) (*models.Driver, error)
	DriverByContact(ctx context.Context, contact string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CreateDriver(ctx context.Context, driver *models.Driver) error
	SaveDriver(ctx context.Context, driver *models.Driver) error
	DeleteDriver(ctx context.Context, id uint) error

	// Routes
	RouteByID(ctx context.Context, id uint) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	SaveRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uint) error

	// Buses
	BusByID(ctx context.Context, id uint) (*models.Bus, error)
	BusByDriverID(ctx context.Context, driverID uint) (*models.Bus, error)
	ListBuses(ctx context.Context) ([]BusListing, error)
	CreateBus(ctx context.Context, bus *models.Bus) error
	SaveBus(ctx context.Context, bus *models.Bus) error
	DeleteBus(ctx context.Context, id uint) error

	// Joined reads
	StudentProfile(ctx context.Context, studentID uint) (*StudentProfile, error)
	DriverProfile(ctx context.Context, driverID uint) (*DriverProfile, error)

	// Dashboard
	Counts(ctx context.Context) (Counts, error)

	// Sessions
	CreateSession(ctx context.Context, session *models.Session) error
	SessionBySID(ctx context.Context, sid string) (*models.Session, error)
	RevokeSession(ctx context.Context, sid string) error
	PurgeExpiredSessions(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm handle in the Store contract.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}
