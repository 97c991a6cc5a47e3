package service

import (
	"context"
	"testing"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
)

// Seed scenario: roll number 24211A0538 rides bus J9 on the Kukatpally Route
// driven by Mahesh Goud.
func TestStudentProfileJoins(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	student, err := st.StudentByRollNumber(ctx, "24211A0538")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}

	profile, err := svc.Profiles.StudentProfile(ctx, models.Identity{UserID: student.ID, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("StudentProfile() error = %v", err)
	}
	if profile.Bus == nil || profile.Bus.BusNumber != "J9" {
		t.Fatalf("profile bus = %+v, want J9", profile.Bus)
	}
	if profile.Route == nil || profile.Route.RouteName != "Kukatpally Route" {
		t.Errorf("profile route = %+v, want Kukatpally Route", profile.Route)
	}
	if profile.Driver == nil || profile.Driver.Name != "Mahesh Goud" {
		t.Errorf("profile driver = %+v, want Mahesh Goud", profile.Driver)
	}
}

func TestStudentProfileDeniedForOtherRoles(t *testing.T) {
	svc, _ := seededServices(t)
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleAdmin, models.RoleDriver} {
		_, err := svc.Profiles.StudentProfile(ctx, models.Identity{UserID: 1, Role: role})
		if err != apperrors.ErrPermissionDenied {
			t.Errorf("StudentProfile() as %s error = %v, want ErrPermissionDenied", role, err)
		}
	}
	for _, role := range []models.Role{models.RoleAdmin, models.RoleStudent} {
		_, err := svc.Profiles.DriverProfile(ctx, models.Identity{UserID: 1, Role: role})
		if err != apperrors.ErrPermissionDenied {
			t.Errorf("DriverProfile() as %s error = %v, want ErrPermissionDenied", role, err)
		}
	}
}

// Deleting a student's bus leaves the assignment dangling; the profile view
// degrades to "no bus" instead of failing.
func TestStudentProfileToleratesDanglingBus(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	student, err := st.StudentByRollNumber(ctx, "24211A0538")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}
	if err := svc.Buses.Delete(ctx, *student.BusID); err != nil {
		t.Fatalf("Buses.Delete() error = %v", err)
	}

	// The assignment itself survives the delete
	after, err := st.StudentByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("StudentByID() error = %v", err)
	}
	if after.BusID == nil {
		t.Fatal("bus assignment was cleared; expected it to dangle")
	}

	profile, err := svc.Profiles.StudentProfile(ctx, models.Identity{UserID: student.ID, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("StudentProfile() error = %v", err)
	}
	if profile.Bus != nil || profile.Route != nil || profile.Driver != nil {
		t.Errorf("profile shows data through a dangling bus: %+v", profile)
	}
}

// A driver sees exactly their own bus and the students on it, ordered by
// name, never another driver's bus.
func TestDriverProfileScopedToOwnBus(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	mahesh, err := st.DriverByContact(ctx, "9876543220")
	if err != nil {
		t.Fatalf("DriverByContact() error = %v", err)
	}

	profile, err := svc.Profiles.DriverProfile(ctx, models.Identity{UserID: mahesh.ID, Role: models.RoleDriver})
	if err != nil {
		t.Fatalf("DriverProfile() error = %v", err)
	}
	if profile.Bus == nil || profile.Bus.BusNumber != "J9" {
		t.Fatalf("profile bus = %+v, want J9", profile.Bus)
	}
	if profile.Route == nil || profile.Route.RouteName != "Kukatpally Route" {
		t.Errorf("profile route = %+v, want Kukatpally Route", profile.Route)
	}
	if len(profile.Roster) != 1 || profile.Roster[0].RollNumber != "24211A0538" {
		t.Errorf("roster = %+v, want exactly 24211A0538", profile.Roster)
	}

	// Ramesh drives SA3; his roster must not include J9's student
	ramesh, err := st.DriverByContact(ctx, "9876543210")
	if err != nil {
		t.Fatalf("DriverByContact() error = %v", err)
	}
	other, err := svc.Profiles.DriverProfile(ctx, models.Identity{UserID: ramesh.ID, Role: models.RoleDriver})
	if err != nil {
		t.Fatalf("DriverProfile() error = %v", err)
	}
	if other.Bus == nil || other.Bus.BusNumber != "SA3" {
		t.Fatalf("profile bus = %+v, want SA3", other.Bus)
	}
	for _, s := range other.Roster {
		if s.RollNumber == "24211A0538" {
			t.Error("another driver's roster leaked into this profile")
		}
	}
}

func TestDriverProfileRosterOrdering(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	mahesh, err := st.DriverByContact(ctx, "9876543220")
	if err != nil {
		t.Fatalf("DriverByContact() error = %v", err)
	}
	j9, err := st.BusByDriverID(ctx, mahesh.ID)
	if err != nil {
		t.Fatalf("BusByDriverID() error = %v", err)
	}

	// Add a student whose name sorts before the existing one
	if _, err := svc.Students.Create(ctx, StudentInput{
		Name:       "AA FIRST",
		RollNumber: "24211A0700",
		Password:   "pw",
		BusID:      &j9.ID,
	}); err != nil {
		t.Fatalf("Students.Create() error = %v", err)
	}

	profile, err := svc.Profiles.DriverProfile(ctx, models.Identity{UserID: mahesh.ID, Role: models.RoleDriver})
	if err != nil {
		t.Fatalf("DriverProfile() error = %v", err)
	}
	if len(profile.Roster) != 2 {
		t.Fatalf("roster size = %d, want 2", len(profile.Roster))
	}
	if profile.Roster[0].Name != "AA FIRST" || profile.Roster[1].Name != "B SAI RISHIK REDDY" {
		t.Errorf("roster order = [%s, %s]", profile.Roster[0].Name, profile.Roster[1].Name)
	}
}

func TestDriverProfileWithoutBus(t *testing.T) {
	svc, _ := seededServices(t)
	ctx := context.Background()

	driver, err := svc.Drivers.Create(ctx, DriverInput{Name: "Spare Driver", Contact: "9111111111", Password: "pw"})
	if err != nil {
		t.Fatalf("Drivers.Create() error = %v", err)
	}

	profile, err := svc.Profiles.DriverProfile(ctx, models.Identity{UserID: driver.ID, Role: models.RoleDriver})
	if err != nil {
		t.Fatalf("DriverProfile() error = %v", err)
	}
	if profile.Bus != nil {
		t.Errorf("unassigned driver got a bus: %+v", profile.Bus)
	}
	if len(profile.Roster) != 0 {
		t.Errorf("unassigned driver got a roster: %+v", profile.Roster)
	}
}
