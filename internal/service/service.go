// Package service holds the domain operations: role-scoped authentication,
// the admin CRUD surface, the own-profile views and the dashboard counts.
// Authorization above this layer is the route guard's job; services still
// re-check identity scoping where an operation is tied to the caller.
package service

import (
	"golang.org/x/crypto/bcrypt"

	"campus_transport/internal/session"
	"campus_transport/internal/store"
)

// Services bundles every domain operation behind one constructor so the
// entry point wires dependencies in a single place.
type Services struct {
	Auth      *AuthService
	Students  *StudentService
	Buses     *BusService
	Routes    *RouteService
	Drivers   *DriverService
	Profiles  *ProfileService
	Dashboard *DashboardService
}

func New(st store.Store, sessions *session.Manager) *Services {
	return &Services{
		Auth:      &AuthService{store: st, sessions: sessions},
		Students:  &StudentService{store: st},
		Buses:     &BusService{store: st},
		Routes:    &RouteService{store: st},
		Drivers:   &DriverService{store: st},
		Profiles:  &ProfileService{store: st},
		Dashboard: &DashboardService{store: st},
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
