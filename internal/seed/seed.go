// Package seed installs the first-boot fixture data: one admin, five routes,
// five drivers, five buses and two students. The values are illustrative
// fixtures, not contract; a deployment can replace them after first login.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// Bootstrap seeds the store on first run. A store that already has an admin
// row is left untouched, so restarts are no-ops.
func Bootstrap(ctx context.Context, st store.Store) error {
	count, err := st.AdminCount(ctx)
	if err != nil {
		return fmt.Errorf("could not check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	logrus.Info("empty store detected, seeding fixture data")

	adminHash, err := hash("admin123")
	if err != nil {
		return err
	}
	if err := st.CreateAdmin(ctx, &models.Admin{Username: "admin", Password: adminHash}); err != nil {
		return fmt.Errorf("could not seed admin: %w", err)
	}

	routes := []models.Route{
		{RouteName: "Miyapur Route", Stops: "Hyderabad → Miyapur → BHEL → Patancheru → BVRIT", Timings: "7:00 AM - 8:30 AM"},
		{RouteName: "Kukatpally Route", Stops: "Kukatpally → JNTU → Chandanagar → BHEL → BVRIT", Timings: "7:10 AM - 8:40 AM"},
		{RouteName: "Lingampally Route", Stops: "Lingampally → RC Puram → Patancheru → Isnapur → BVRIT", Timings: "7:15 AM - 8:45 AM"},
		{RouteName: "BHEL Route", Stops: "BHEL → Beeramguda → Isnapur → BVRIT", Timings: "7:20 AM - 8:50 AM"},
		{RouteName: "Narsapur Town Route", Stops: "Narsapur → BVRIT", Timings: "7:40 AM - 8:10 AM"},
	}
	for i := range routes {
		if err := st.CreateRoute(ctx, &routes[i]); err != nil {
			return fmt.Errorf("could not seed route %q: %w", routes[i].RouteName, err)
		}
	}

	driverHash, err := hash("driver123")
	if err != nil {
		return err
	}
	drivers := []models.Driver{
		{Name: "Ramesh Kumar", Contact: "9876543210", Password: driverHash},
		{Name: "Mahesh Goud", Contact: "9876543220", Password: driverHash},
		{Name: "Suresh Naik", Contact: "9876543230", Password: driverHash},
		{Name: "Ravi Teja", Contact: "9876543240", Password: driverHash},
		{Name: "Krishna Reddy", Contact: "9876543250", Password: driverHash},
	}
	for i := range drivers {
		if err := st.CreateDriver(ctx, &drivers[i]); err != nil {
			return fmt.Errorf("could not seed driver %q: %w", drivers[i].Name, err)
		}
	}

	buses := []models.Bus{
		{BusNumber: "SA3", RouteID: &routes[0].ID, DriverID: &drivers[0].ID, Capacity: 40},
		{BusNumber: "J9", RouteID: &routes[1].ID, DriverID: &drivers[1].ID, Capacity: 45},
		{BusNumber: "J10", RouteID: &routes[2].ID, DriverID: &drivers[2].ID, Capacity: 40},
		{BusNumber: "BHEL4", RouteID: &routes[3].ID, DriverID: &drivers[3].ID, Capacity: 35},
		{BusNumber: "N1", RouteID: &routes[4].ID, DriverID: &drivers[4].ID, Capacity: 30},
	}
	for i := range buses {
		if err := st.CreateBus(ctx, &buses[i]); err != nil {
			return fmt.Errorf("could not seed bus %q: %w", buses[i].BusNumber, err)
		}
	}

	studentHash, err := hash("student123")
	if err != nil {
		return err
	}
	students := []models.Student{
		{Name: "B SAI RISHIK REDDY", RollNumber: "24211A0538", Password: studentHash, BusID: &buses[1].ID},
		{Name: "A SANDEEP", RollNumber: "24211A0512", Password: studentHash, BusID: &buses[0].ID},
	}
	for i := range students {
		if err := st.CreateStudent(ctx, &students[i]); err != nil {
			return fmt.Errorf("could not seed student %q: %w", students[i].RollNumber, err)
		}
	}

	logrus.Info("fixture data seeded")
	return nil
}

func hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash seed password: %w", err)
	}
	return string(h), nil
}
